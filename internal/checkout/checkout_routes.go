package checkout

import (
	"github.com/gin-gonic/gin"

	"steez-storefront/internal/middleware"
	"steez-storefront/internal/session"
)

// RegisterRoutes wires checkout behind an optional session: registered users
// get their order attached to their account, guests and anonymous visitors
// check out without a credential.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessionSvc session.Service) {
	r.POST("/checkout",
		middleware.CartSession(),
		middleware.OptionalSession(sessionSvc),
		handler.Checkout,
	)
}
