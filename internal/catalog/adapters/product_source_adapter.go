package adapters

import (
	"context"

	"steez-storefront/internal/cart"
	"steez-storefront/internal/catalog"
)

// ProductSourceAdapter lets the cart take product snapshots from the catalog
// gateway without depending on the catalog package.
type ProductSourceAdapter struct {
	gateway catalog.Gateway
}

func NewProductSourceAdapter(g catalog.Gateway) *ProductSourceAdapter {
	return &ProductSourceAdapter{gateway: g}
}

func (a *ProductSourceAdapter) Product(ctx context.Context, id int64) (cart.ProductInfo, error) {
	p, err := a.gateway.Product(ctx, id)
	if err != nil {
		return cart.ProductInfo{}, err
	}

	return cart.ProductInfo{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.ImageURL,
		Stock: p.Stock,
		Sizes: p.Sizes,
	}, nil
}
