package checkout

import "steez-storefront/internal/payment"

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// ==================== REQUEST STRUCTS ====================

type CheckoutRequest struct {
	ShippingAddress string        `json:"shipping_address" binding:"required" validate:"required"`
	ContactPhone    string        `json:"contact_phone" binding:"required" validate:"required"`
	PaymentMethod   string        `json:"payment_method" binding:"required,oneof=card cash" validate:"required,oneof=card cash"`
	Card            *payment.Card `json:"card,omitempty"`
}

// orderPayload is the wire format the shop backend expects on POST /orders.
type orderPayload struct {
	Items           []orderItem `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
	ContactPhone    string      `json:"contact_phone"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentMethodID string      `json:"payment_method_id,omitempty"`
}

type orderItem struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

// ==================== RESPONSE STRUCTS ====================

type CheckoutResponse struct {
	Subtotal      float64 `json:"subtotal"`
	Shipping      float64 `json:"shipping"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"payment_method"`
	ItemCount     int     `json:"item_count"`
}
