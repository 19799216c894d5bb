package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	catalogerrors "steez-storefront/internal/catalog/errors"
)

// Gateway is the read-only view over the shop backend's catalog: products,
// categories and brands. It never mutates anything upstream.
type Gateway interface {
	Products(ctx context.Context, filter Filter) ([]Product, error)
	Product(ctx context.Context, id int64) (Product, error)
	Categories(ctx context.Context) ([]Category, error)
	Brands(ctx context.Context) ([]Brand, error)
}

type httpGateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewGateway(baseURL string) Gateway {
	return &httpGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  zap.L().Named("catalog.gateway"),
	}
}

func (g *httpGateway) Products(ctx context.Context, filter Filter) ([]Product, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Brand != "" {
		q.Set("brand", filter.Brand)
	}

	path := "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var products []Product
	if err := g.getJSON(ctx, path, &products); err != nil {
		return nil, err
	}

	for _, p := range products {
		if err := p.validate(); err != nil {
			g.logger.Warn("rejecting catalog response", zap.Error(err))
			return nil, catalogerrors.ErrMalformedRecord.Wrap(err)
		}
	}
	return products, nil
}

func (g *httpGateway) Product(ctx context.Context, id int64) (Product, error) {
	var product Product
	if err := g.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return Product{}, err
	}
	if err := product.validate(); err != nil {
		return Product{}, catalogerrors.ErrMalformedRecord.Wrap(err)
	}
	return product, nil
}

func (g *httpGateway) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := g.getJSON(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (g *httpGateway) Brands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := g.getJSON(ctx, "/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (g *httpGateway) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return catalogerrors.ErrCatalogUnavailable.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("catalog fetch failed", zap.String("path", path), zap.Error(err))
		return catalogerrors.ErrCatalogUnavailable.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return catalogerrors.ErrProductNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Warn("catalog fetch returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return catalogerrors.ErrCatalogUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return catalogerrors.ErrMalformedRecord.Wrap(err)
	}
	return nil
}
