package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"steez-storefront/internal/cart"
	checkouterrors "steez-storefront/internal/checkout/errors"
	"steez-storefront/internal/messaging/kafka/producer"
	"steez-storefront/internal/payment"
	paymenterrors "steez-storefront/internal/payment/errors"
	"steez-storefront/internal/session"
)

// DefaultShippingCost matches the flat rate the storefront has always
// charged; SHIPPING_COST overrides it.
const DefaultShippingCost = 5.0

// Service turns a validated cart into a submitted order. The cart is cleared
// only after the backend accepted the order; every failure path leaves it
// exactly as it was so the user can retry.
type Service interface {
	Checkout(ctx context.Context, sess session.Session, sessionID string, req CheckoutRequest) (CheckoutResponse, error)
}

type service struct {
	cartSvc    cart.Service
	paymentSvc payment.Service
	publisher  producer.Publisher
	baseURL    string
	client     *http.Client
	shipping   float64
	validate   *validator.Validate
	logger     *zap.Logger
}

type Deps struct {
	CartSvc    cart.Service
	PaymentSvc payment.Service
	Publisher  producer.Publisher
	BaseURL    string
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.PaymentSvc == nil {
		panic("payment service cannot be nil")
	}
	if deps.Publisher == nil {
		deps.Publisher = producer.NewNoopPublisher()
	}
	if deps.Logger == nil {
		deps.Logger = zap.L().Named("checkout.service")
	}

	return &service{
		cartSvc:    deps.CartSvc,
		paymentSvc: deps.PaymentSvc,
		publisher:  deps.Publisher,
		baseURL:    deps.BaseURL,
		client:     &http.Client{Timeout: 20 * time.Second},
		shipping:   shippingCostFromEnv(),
		validate:   validator.New(),
		logger:     deps.Logger,
	}
}

func shippingCostFromEnv() float64 {
	if raw := os.Getenv("SHIPPING_COST"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			return v
		}
	}
	return DefaultShippingCost
}

func (s *service) Checkout(ctx context.Context, sess session.Session, sessionID string, req CheckoutRequest) (CheckoutResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CheckoutResponse{}, checkouterrors.ErrMissingFields.Wrap(err)
	}

	detail, err := s.cartSvc.Detail(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, err
	}

	if err := validateItems(detail.Items); err != nil {
		return CheckoutResponse{}, err
	}

	// Card payments are tokenized first; a gateway decline aborts checkout
	// before anything is submitted.
	paymentMethodID := ""
	if req.PaymentMethod == PaymentMethodCard {
		if req.Card == nil {
			return CheckoutResponse{}, paymenterrors.ErrCardDetailsRequired
		}
		token, err := s.paymentSvc.Tokenize(*req.Card)
		if err != nil {
			return CheckoutResponse{}, err
		}
		paymentMethodID = token
	}

	if err := s.submitOrder(ctx, sess, detail.Items, req, paymentMethodID); err != nil {
		// Cart untouched: the user retries, nothing was lost.
		return CheckoutResponse{}, err
	}

	if err := s.cartSvc.Clear(ctx, sessionID); err != nil {
		// The order is already placed; a failed clear must not fail the
		// checkout. Log it and let the next mutation overwrite the key.
		s.logger.Error("cart clear after checkout failed",
			zap.String("session", sessionID),
			zap.Error(err),
		)
	}

	res := CheckoutResponse{
		Subtotal:      detail.Subtotal,
		Shipping:      s.shipping,
		Total:         detail.Subtotal + s.shipping,
		PaymentMethod: req.PaymentMethod,
		ItemCount:     detail.Count,
	}

	if err := s.publisher.PublishOrderPlaced(ctx, producer.OrderPlacedEvent{
		UserID:        sess.UserID,
		ItemCount:     res.ItemCount,
		Subtotal:      res.Subtotal,
		Shipping:      res.Shipping,
		Total:         res.Total,
		PaymentMethod: res.PaymentMethod,
		PlacedAt:      time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("order event publish failed", zap.Error(err))
	}

	return res, nil
}

// validateItems fails closed: every item whose snapshot declares size
// variants must have a chosen size, and the failure names the item.
func validateItems(items []cart.LineItem) error {
	if len(items) == 0 {
		return checkouterrors.ErrEmptyCart
	}
	for _, item := range items {
		if len(item.Sizes) > 0 && item.Size == "" {
			return checkouterrors.ErrSizeMissing.
				WithMessage("Please choose a size for " + item.Name).
				WithDetails(item.Name)
		}
	}
	return nil
}

func (s *service) submitOrder(ctx context.Context, sess session.Session, items []cart.LineItem, req CheckoutRequest, paymentMethodID string) error {
	payload := orderPayload{
		Items:           make([]orderItem, 0, len(items)),
		ShippingAddress: req.ShippingAddress,
		ContactPhone:    req.ContactPhone,
		PaymentMethod:   req.PaymentMethod,
		PaymentMethodID: paymentMethodID,
	}
	for _, item := range items {
		payload.Items = append(payload.Items, orderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return checkouterrors.ErrOrderSubmitFailed.Wrap(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return checkouterrors.ErrOrderSubmitFailed.Wrap(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// Guests and anonymous sessions order without a credential; the backend
	// accepts both.
	if sess.UpstreamToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+sess.UpstreamToken)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Warn("order submission failed", zap.Error(err))
		return checkouterrors.ErrOrderSubmitFailed.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	if msg := backendMessage(raw); msg != "" {
		return checkouterrors.ErrOrderSubmitFailed.WithMessage(msg)
	}
	return checkouterrors.ErrOrderSubmitFailed
}

func backendMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error.Message
}
