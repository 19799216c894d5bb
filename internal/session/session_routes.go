package session

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the public identity endpoints. Me is registered by the
// caller behind the session middleware to avoid an import cycle with
// internal/middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, requireSession gin.HandlerFunc) {
	sessions := r.Group("/session")
	{
		sessions.POST("/login", handler.Login)
		sessions.POST("/register", handler.Register)
		sessions.POST("/guest", handler.Guest)
		sessions.GET("/me", requireSession, handler.Me)
	}
}
