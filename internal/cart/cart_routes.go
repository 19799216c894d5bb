package cart

import (
	"github.com/gin-gonic/gin"

	"steez-storefront/internal/middleware"
)

// RegisterRoutes wires the cart endpoints. Line items are addressed by their
// position in the cart, matching the positional operations of the store.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.CartSession())
	{
		carts.GET("", handler.Detail)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items")
		{
			items.POST("", handler.AddItem)
			items.PATCH("/:index", handler.ChangeQty)
			items.DELETE("/:index", handler.RemoveItem)
		}
	}
}
