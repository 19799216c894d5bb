package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	carterrors "steez-storefront/internal/cart/errors"
)

// Repository persists the cart document between requests: one JSON array per
// session under a stable key, written after every mutation, removed on
// checkout.
type Repository interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, c Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type redisRepository struct {
	client *redis.Client
}

func NewRepository(client *redis.Client) Repository {
	return &redisRepository{client: client}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cartItems:%s", sessionID)
}

func (r *redisRepository) Load(ctx context.Context, sessionID string) (Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Cart{}, nil
	}
	if err != nil {
		return nil, carterrors.ErrCartUnavailable.Wrap(err)
	}

	c, err := decodeCart(data)
	if err != nil {
		return nil, carterrors.ErrCartUnavailable.Wrap(err)
	}
	return c, nil
}

func (r *redisRepository) Save(ctx context.Context, sessionID string, c Cart) error {
	data, err := encodeCart(c)
	if err != nil {
		return carterrors.ErrCartUnavailable.Wrap(err)
	}
	// No TTL: the cart stays until cleared or removed with the session cookie.
	if err := r.client.Set(ctx, cartKey(sessionID), data, 0).Err(); err != nil {
		return carterrors.ErrCartUnavailable.Wrap(err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return carterrors.ErrCartUnavailable.Wrap(err)
	}
	return nil
}

func encodeCart(c Cart) ([]byte, error) {
	if c == nil {
		c = Cart{}
	}
	return json.Marshal(c)
}

func decodeCart(data []byte) (Cart, error) {
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}
