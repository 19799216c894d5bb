package admin

import (
	"encoding/json"

	"steez-storefront/internal/cart"

	adminerrors "steez-storefront/internal/admin/errors"
)

// ProductForm mirrors the multipart form the admin screen submits. Sizes
// arrive as a JSON-encoded array inside the form field.
type ProductForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"required,gte=0"`
	Stock       int     `form:"stock" binding:"gte=0"`
	CategoryID  int64   `form:"category_id"`
	BrandID     int64   `form:"brand_id"`
	Sizes       string  `form:"sizes"`
}

func (f ProductForm) parseSizes() ([]cart.SizeOption, error) {
	if f.Sizes == "" {
		return nil, nil
	}
	var sizes []cart.SizeOption
	if err := json.Unmarshal([]byte(f.Sizes), &sizes); err != nil {
		return nil, adminerrors.ErrInvalidSizes.Wrap(err)
	}
	return sizes, nil
}

// productPayload is the JSON body forwarded to the backend product endpoints.
type productPayload struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Stock       int               `json:"stock"`
	CategoryID  int64             `json:"category_id,omitempty"`
	BrandID     int64             `json:"brand_id,omitempty"`
	Sizes       []cart.SizeOption `json:"sizes,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
