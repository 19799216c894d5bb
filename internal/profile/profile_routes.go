package profile

import (
	"github.com/gin-gonic/gin"

	"steez-storefront/internal/middleware"
	"steez-storefront/internal/session"
)

// RegisterRoutes wires the account surface. Everything here requires a
// session; the service additionally rejects guests, which carry no upstream
// credential.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessionSvc session.Service) {
	account := r.Group("/profile")
	account.Use(middleware.RequireSession(sessionSvc))
	{
		account.GET("", handler.Profile)
		account.PUT("", handler.UpdateProfile)
		account.GET("/orders", handler.MyOrders)
	}
}
