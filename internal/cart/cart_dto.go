package cart

import "context"

// SizeOption is one entry of a product's size-to-stock table, snapshotted onto
// the line item so quantity edits can be bounded without another catalog call.
type SizeOption struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

// LineItem is one cart entry. Name, price, image and the stock table are
// snapshots taken at add time and never re-fetched. The JSON tags are the
// persisted wire format; they must stay stable across releases because carts
// written by older builds are still read back.
type LineItem struct {
	ProductID int64        `json:"id"`
	Name      string       `json:"name"`
	UnitPrice float64      `json:"price"`
	Quantity  int          `json:"qty"`
	Image     string       `json:"image,omitempty"`
	Size      string       `json:"size,omitempty"`
	Sizes     []SizeOption `json:"sizes,omitempty"`
	Stock     int          `json:"stock,omitempty"`
}

// ProductInfo is the catalog snapshot the store needs to build a line item.
type ProductInfo struct {
	ID    int64
	Name  string
	Price float64
	Image string
	Stock int
	Sizes []SizeOption
}

// ProductSource supplies product snapshots at add time. Implemented by the
// catalog gateway adapter.
type ProductSource interface {
	Product(ctx context.Context, id int64) (ProductInfo, error)
}

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID int64  `json:"product_id" binding:"required" validate:"required"`
	Size      string `json:"size"`
	Qty       int    `json:"qty" validate:"gte=0"`
}

// ChangeQtyRequest carries the signed quantity adjustment. A zero delta is a
// valid no-op, so the field carries no required binding.
type ChangeQtyRequest struct {
	Delta int `json:"delta"`
}

// ==================== RESPONSE STRUCTS ====================

type CartDetailResponse struct {
	Items    []LineItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
}
