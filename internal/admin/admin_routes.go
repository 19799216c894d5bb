package admin

import (
	"github.com/gin-gonic/gin"

	"steez-storefront/internal/middleware"
	"steez-storefront/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessionSvc session.Service) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(
		middleware.RequireSession(sessionSvc),
		middleware.RequireRole(session.RoleAdmin),
	)
	{
		products := adminGroup.Group("/products")
		{
			products.POST("", handler.CreateProduct)
			products.PUT("/:id", handler.UpdateProduct)
			products.DELETE("/:id", handler.DeleteProduct)
		}

		orders := adminGroup.Group("/orders")
		{
			orders.GET("", handler.Orders)
			orders.PUT("/:id", handler.UpdateOrderStatus)
		}
	}
}
