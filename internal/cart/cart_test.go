package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carterrors "steez-storefront/internal/cart/errors"
)

func tee(id int64, qty int) LineItem {
	return LineItem{ProductID: id, Name: "Basic Tee", UnitPrice: 20, Quantity: qty}
}

func sneaker(size string, qty int) LineItem {
	return LineItem{
		ProductID: 7,
		Name:      "Court Sneaker",
		UnitPrice: 59.99,
		Quantity:  qty,
		Size:      size,
		Sizes: []SizeOption{
			{Size: "41", Stock: 3},
			{Size: "42", Stock: 0},
		},
	}
}

func TestAddOrIncrement(t *testing.T) {
	t.Run("appends a new entry", func(t *testing.T) {
		c, err := Cart{}.AddOrIncrement(tee(1, 2))
		require.NoError(t, err)
		require.Len(t, c, 1)
		assert.Equal(t, 2, c[0].Quantity)
	})

	t.Run("merges on same product and size", func(t *testing.T) {
		c, err := Cart{sneaker("41", 1)}.AddOrIncrement(sneaker("41", 2))
		require.NoError(t, err)
		require.Len(t, c, 1)
		assert.Equal(t, 3, c[0].Quantity)
	})

	t.Run("same product in another size is a separate entry", func(t *testing.T) {
		first := sneaker("41", 1)
		second := sneaker("41", 1)
		second.Size = "42"
		second.Sizes = []SizeOption{{Size: "42", Stock: 5}}

		c, err := Cart{first}.AddOrIncrement(second)
		require.NoError(t, err)
		assert.Len(t, c, 2)
	})

	t.Run("rejects a sized product without a chosen size", func(t *testing.T) {
		item := sneaker("", 1)
		_, err := Cart{}.AddOrIncrement(item)
		assert.ErrorIs(t, err, carterrors.ErrSizeRequired)
	})

	t.Run("rejects a size the product does not offer", func(t *testing.T) {
		_, err := Cart{}.AddOrIncrement(sneaker("45", 1))
		assert.ErrorIs(t, err, carterrors.ErrUnknownSize)
	})

	t.Run("rejects quantity beyond the size stock", func(t *testing.T) {
		_, err := Cart{}.AddOrIncrement(sneaker("41", 4))
		assert.ErrorIs(t, err, carterrors.ErrExceedsStock)
	})

	t.Run("rejects a merge that would exceed stock and keeps the cart intact", func(t *testing.T) {
		before := Cart{sneaker("41", 2)}
		_, err := before.AddOrIncrement(sneaker("41", 2))
		assert.ErrorIs(t, err, carterrors.ErrExceedsStock)
		assert.Equal(t, 2, before[0].Quantity)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, err := Cart{}.AddOrIncrement(tee(1, 0))
		assert.ErrorIs(t, err, carterrors.ErrInvalidQty)
	})

	t.Run("unknown stock means no bound", func(t *testing.T) {
		c, err := Cart{}.AddOrIncrement(tee(1, 500))
		require.NoError(t, err)
		assert.Equal(t, 500, c[0].Quantity)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		before := Cart{tee(1, 1)}
		after, err := before.AddOrIncrement(tee(1, 2))
		require.NoError(t, err)
		assert.Equal(t, 1, before[0].Quantity)
		assert.Equal(t, 3, after[0].Quantity)
	})
}

func TestChangeQty(t *testing.T) {
	t.Run("increments within stock", func(t *testing.T) {
		c, err := Cart{sneaker("41", 1)}.ChangeQty(0, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, c[0].Quantity)
	})

	t.Run("rejects an increment beyond stock", func(t *testing.T) {
		before := Cart{sneaker("41", 3)}
		_, err := before.ChangeQty(0, 1)
		assert.ErrorIs(t, err, carterrors.ErrExceedsStock)
		assert.Equal(t, 3, before[0].Quantity)
	})

	t.Run("dropping to zero removes the entry", func(t *testing.T) {
		c, err := Cart{tee(1, 1), tee(2, 2)}.ChangeQty(0, -1)
		require.NoError(t, err)
		require.Len(t, c, 1)
		assert.Equal(t, int64(2), c[0].ProductID)
	})

	t.Run("dropping below zero also removes", func(t *testing.T) {
		c, err := Cart{tee(1, 1)}.ChangeQty(0, -5)
		require.NoError(t, err)
		assert.Empty(t, c)
	})

	t.Run("a zero delta is a no-op", func(t *testing.T) {
		c, err := Cart{tee(1, 2)}.ChangeQty(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, c[0].Quantity)
	})

	t.Run("rejects an index out of range", func(t *testing.T) {
		_, err := Cart{tee(1, 1)}.ChangeQty(3, 1)
		assert.ErrorIs(t, err, carterrors.ErrItemNotFound)
	})
}

func TestRemove(t *testing.T) {
	t.Run("removes the entry and preserves order", func(t *testing.T) {
		c, err := Cart{tee(1, 1), tee(2, 1), tee(3, 1)}.Remove(1)
		require.NoError(t, err)
		require.Len(t, c, 2)
		assert.Equal(t, int64(1), c[0].ProductID)
		assert.Equal(t, int64(3), c[1].ProductID)
	})

	t.Run("rejects a negative index", func(t *testing.T) {
		_, err := Cart{tee(1, 1)}.Remove(-1)
		assert.ErrorIs(t, err, carterrors.ErrItemNotFound)
	})
}

func TestSubtotal(t *testing.T) {
	c := Cart{
		{ProductID: 1, UnitPrice: 10, Quantity: 2},
		{ProductID: 2, UnitPrice: 5, Quantity: 3},
	}
	assert.Equal(t, 35.0, c.Subtotal())

	t.Run("decimal prices stay exact", func(t *testing.T) {
		c := Cart{{ProductID: 1, UnitPrice: 19.99, Quantity: 3}}
		assert.Equal(t, 59.97, c.Subtotal())
	})

	t.Run("empty cart is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Cart{}.Subtotal())
	})
}

func TestResolveStock(t *testing.T) {
	t.Run("chosen size wins over flat stock", func(t *testing.T) {
		item := sneaker("41", 1)
		item.Stock = 99
		stock, ok := ResolveStock(item)
		assert.True(t, ok)
		assert.Equal(t, 3, stock)
	})

	t.Run("flat stock when no size table", func(t *testing.T) {
		stock, ok := ResolveStock(LineItem{Stock: 7})
		assert.True(t, ok)
		assert.Equal(t, 7, stock)
	})

	t.Run("no stock known means unbounded", func(t *testing.T) {
		_, ok := ResolveStock(LineItem{})
		assert.False(t, ok)
	})
}

// Exercises the sequence a shopper actually goes through: add, add again,
// trim one, then remove.
func TestCartLifecycle(t *testing.T) {
	item := LineItem{ProductID: 5, Name: "Hoodie", UnitPrice: 20, Quantity: 1, Size: "M",
		Sizes: []SizeOption{{Size: "M", Stock: 10}}}

	c, err := Cart{}.AddOrIncrement(item)
	require.NoError(t, err)

	item.Quantity = 2
	c, err = c.AddOrIncrement(item)
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, 3, c[0].Quantity)
	assert.Equal(t, 60.0, c.Subtotal())

	c, err = c.ChangeQty(0, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, c[0].Quantity)
	assert.Equal(t, 40.0, c.Subtotal())

	c, err = c.Remove(0)
	require.NoError(t, err)
	assert.Empty(t, c)
}

// Carts written by older builds must still decode, so the persisted field
// names are pinned here.
func TestLineItemWireFormat(t *testing.T) {
	data, err := json.Marshal(Cart{sneaker("41", 2)})
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": 7,
		"name": "Court Sneaker",
		"price": 59.99,
		"qty": 2,
		"size": "41",
		"sizes": [{"size":"41","stock":3},{"size":"42","stock":0}]
	}]`, string(data))

	var back Cart
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Cart{sneaker("41", 2)}, back)
}
