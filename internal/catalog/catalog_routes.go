package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.Products)
		products.GET("/:id", handler.Product)
	}

	r.GET("/categories", handler.Categories)
	r.GET("/brands", handler.Brands)
}
