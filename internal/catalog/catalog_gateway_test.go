package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steez-storefront/internal/cart"
	catalogerrors "steez-storefront/internal/catalog/errors"
)

func TestGatewayProducts(t *testing.T) {
	t.Run("decodes and validates the listing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/products", r.URL.Path)
			w.Write([]byte(`[
				{"id": 1, "name": "Basic Tee", "price": 20, "stock": 10, "category_name": "Tops"},
				{"id": 7, "name": "Court Sneaker", "price": 59.99,
				 "sizes": [{"size":"41","stock":3},{"size":"42","stock":0}]}
			]`))
		}))
		defer srv.Close()

		products, err := NewGateway(srv.URL).Products(context.Background(), Filter{})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Basic Tee", products[0].Name)
		assert.Equal(t, []cart.SizeOption{{Size: "41", Stock: 3}, {Size: "42", Stock: 0}}, products[1].Sizes)
	})

	t.Run("passes category and brand filters through", func(t *testing.T) {
		var query string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		_, err := NewGateway(srv.URL).Products(context.Background(), Filter{Category: "Tops", Brand: "Acme"})
		require.NoError(t, err)
		assert.Equal(t, "brand=Acme&category=Tops", query)
	})

	t.Run("rejects a record missing its name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": 1, "price": 20}]`))
		}))
		defer srv.Close()

		_, err := NewGateway(srv.URL).Products(context.Background(), Filter{})
		assert.ErrorIs(t, err, catalogerrors.ErrMalformedRecord)
	})

	t.Run("rejects non-JSON bodies", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>maintenance</html>`))
		}))
		defer srv.Close()

		_, err := NewGateway(srv.URL).Products(context.Background(), Filter{})
		assert.ErrorIs(t, err, catalogerrors.ErrMalformedRecord)
	})

	t.Run("maps upstream failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewGateway(srv.URL).Products(context.Background(), Filter{})
		assert.ErrorIs(t, err, catalogerrors.ErrCatalogUnavailable)
	})
}

func TestGatewayProduct(t *testing.T) {
	t.Run("fetches a single record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/products/7", r.URL.Path)
			w.Write([]byte(`{"id": 7, "name": "Court Sneaker", "price": 59.99}`))
		}))
		defer srv.Close()

		product, err := NewGateway(srv.URL).Product(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), product.ID)
	})

	t.Run("a 404 is product-not-found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewGateway(srv.URL).Product(context.Background(), 999)
		assert.ErrorIs(t, err, catalogerrors.ErrProductNotFound)
	})
}

func TestGatewayCategoriesAndBrands(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/categories":
			w.Write([]byte(`[{"id":1,"name":"Tops"}]`))
		case "/brands":
			w.Write([]byte(`[{"id":2,"name":"Acme"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	g := NewGateway(srv.URL)

	categories, err := g.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Category{{ID: 1, Name: "Tops"}}, categories)

	brands, err := g.Brands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Brand{{ID: 2, Name: "Acme"}}, brands)
}
