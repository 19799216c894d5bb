package catalog

import (
	"fmt"

	"steez-storefront/internal/cart"
)

// Product is a validated catalog record. The backend serves loosely typed
// JSON; required fields are checked at this boundary instead of being trusted
// downstream.
type Product struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Price        float64           `json:"price"`
	Stock        int               `json:"stock,omitempty"`
	CategoryName string            `json:"category_name,omitempty"`
	BrandName    string            `json:"brand_name,omitempty"`
	ImageURL     string            `json:"image_url,omitempty"`
	Sizes        []cart.SizeOption `json:"sizes,omitempty"`
}

func (p Product) validate() error {
	if p.ID == 0 {
		return fmt.Errorf("product record missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("product %d missing name", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %d has negative price", p.ID)
	}
	for _, o := range p.Sizes {
		if o.Size == "" {
			return fmt.Errorf("product %d has a size variant without a label", p.ID)
		}
	}
	return nil
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Filter narrows the product listing; empty fields mean no filtering.
type Filter struct {
	Category string
	Brand    string
}
