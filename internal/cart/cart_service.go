package cart

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	carterrors "steez-storefront/internal/cart/errors"
)

// Service is the line-item store. Every mutation runs load-modify-save under a
// per-session lock so concurrent handlers for the same session never observe a
// half-applied cart.
type Service interface {
	Detail(ctx context.Context, sessionID string) (CartDetailResponse, error)
	AddItem(ctx context.Context, sessionID string, req AddItemRequest) (CartDetailResponse, error)
	ChangeQty(ctx context.Context, sessionID string, index, delta int) (CartDetailResponse, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (CartDetailResponse, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	repo     Repository
	products ProductSource
	validate *validator.Validate
	logger   *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo Repository, products ProductSource) Service {
	return &service{
		repo:     repo,
		products: products,
		validate: validator.New(),
		logger:   zap.L().Named("cart.service"),
		locks:    make(map[string]*sync.Mutex),
	}
}

// sessionLock serializes mutations per cart session. Carts from different
// sessions never contend.
func (s *service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

func (s *service) Detail(ctx context.Context, sessionID string) (CartDetailResponse, error) {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return CartDetailResponse{}, err
	}
	return detailOf(c), nil
}

// AddItem resolves the product snapshot from the catalog, then merges it into
// the cart by identity key. The snapshot (name, price, image, stock table) is
// frozen at this point and never re-fetched.
func (s *service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (CartDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartDetailResponse{}, carterrors.ErrInvalidQty.Wrap(err)
	}

	qty := req.Qty
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return CartDetailResponse{}, carterrors.ErrInvalidQty
	}

	product, err := s.products.Product(ctx, req.ProductID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	item := LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  qty,
		Image:     product.Image,
		Size:      req.Size,
		Sizes:     product.Sizes,
		Stock:     product.Stock,
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	next, err := c.AddOrIncrement(item)
	if err != nil {
		return CartDetailResponse{}, err
	}

	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		return CartDetailResponse{}, err
	}

	s.logger.Debug("item added",
		zap.String("session", sessionID),
		zap.Int64("product_id", product.ID),
		zap.String("size", req.Size),
		zap.Int("qty", qty),
	)

	return detailOf(next), nil
}

func (s *service) ChangeQty(ctx context.Context, sessionID string, index, delta int) (CartDetailResponse, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	next, err := c.ChangeQty(index, delta)
	if err != nil {
		return CartDetailResponse{}, err
	}

	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		return CartDetailResponse{}, err
	}

	return detailOf(next), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, index int) (CartDetailResponse, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	next, err := c.Remove(index)
	if err != nil {
		return CartDetailResponse{}, err
	}

	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		return CartDetailResponse{}, err
	}

	return detailOf(next), nil
}

// Clear empties the cart and removes the persisted document. Used after a
// successful checkout.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	return s.repo.Delete(ctx, sessionID)
}

func detailOf(c Cart) CartDetailResponse {
	return CartDetailResponse{
		Items:    c,
		Count:    len(c),
		Subtotal: c.Subtotal(),
	}
}
