package cart

import (
	"slices"

	"github.com/shopspring/decimal"

	carterrors "steez-storefront/internal/cart/errors"
)

// Cart is the ordered collection of line items for one session. The order is
// insertion order and only matters for display. All mutating operations
// return a fresh slice and leave the receiver untouched, so a failed
// operation can never leave a half-applied cart behind.
type Cart []LineItem

// indexOf locates the entry with the same identity key: product id plus
// chosen size, with absence of size on both sides counting as a match.
func (c Cart) indexOf(productID int64, size string) int {
	for i, item := range c {
		if item.ProductID == productID && item.Size == size {
			return i
		}
	}
	return -1
}

// AddOrIncrement merges the given item into the cart. An existing entry with
// the same identity key has its quantity increased; otherwise the item is
// appended. item.Quantity carries the quantity to add.
//
// Size selection is enforced here at the store boundary: a product that
// declares size variants must come with one of them chosen, and the chosen
// size must be one of the declared variants.
func (c Cart) AddOrIncrement(item LineItem) (Cart, error) {
	if item.Quantity < 1 {
		return nil, carterrors.ErrInvalidQty
	}

	if len(item.Sizes) > 0 {
		if item.Size == "" {
			return nil, carterrors.ErrSizeRequired.WithDetails(item.Name)
		}
		if !slices.ContainsFunc(item.Sizes, func(o SizeOption) bool { return o.Size == item.Size }) {
			return nil, carterrors.ErrUnknownSize.WithDetails(item.Name)
		}
	}

	next := slices.Clone(c)

	if i := next.indexOf(item.ProductID, item.Size); i >= 0 {
		merged := next[i].Quantity + item.Quantity
		if stock, ok := ResolveStock(next[i]); ok && merged > stock {
			return nil, carterrors.ErrExceedsStock.WithDetails(next[i].Name)
		}
		next[i].Quantity = merged
		return next, nil
	}

	if stock, ok := ResolveStock(item); ok && item.Quantity > stock {
		return nil, carterrors.ErrExceedsStock.WithDetails(item.Name)
	}

	return append(next, item), nil
}

// ChangeQty adds delta to the quantity of the entry at index. A resulting
// quantity of zero or less removes the entry; a result beyond the resolved
// stock is rejected and the cart stays as it was.
func (c Cart) ChangeQty(index, delta int) (Cart, error) {
	if index < 0 || index >= len(c) {
		return nil, carterrors.ErrItemNotFound
	}

	qty := c[index].Quantity + delta
	if qty <= 0 {
		return c.Remove(index)
	}

	if stock, ok := ResolveStock(c[index]); ok && qty > stock {
		return nil, carterrors.ErrExceedsStock.WithDetails(c[index].Name)
	}

	next := slices.Clone(c)
	next[index].Quantity = qty
	return next, nil
}

// Remove deletes the entry at index unconditionally.
func (c Cart) Remove(index int) (Cart, error) {
	if index < 0 || index >= len(c) {
		return nil, carterrors.ErrItemNotFound
	}
	next := slices.Clone(c)
	return slices.Delete(next, index, index+1), nil
}

// Subtotal is the sum of quantity times unit price over all entries, computed
// fresh on every call. Decimal arithmetic keeps 19.99*3 style sums exact.
func (c Cart) Subtotal() float64 {
	total := decimal.Zero
	for _, item := range c {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}

// ResolveStock is the single stock-resolution rule shared by add and quantity
// edits: the chosen size's stock when a size table was snapshotted, the flat
// stock field otherwise. Returns false when no stock is known, in which case
// no bound is enforced.
func ResolveStock(item LineItem) (int, bool) {
	if item.Size != "" && len(item.Sizes) > 0 {
		for _, o := range item.Sizes {
			if o.Size == item.Size {
				return o.Stock, true
			}
		}
		return 0, true
	}
	if item.Stock > 0 {
		return item.Stock, true
	}
	return 0, false
}
