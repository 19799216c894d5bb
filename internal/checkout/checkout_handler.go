package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"steez-storefront/internal/middleware"
	"steez-storefront/internal/pkg/response"
	"steez-storefront/internal/session"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
		logger:  zap.L().Named("checkout.handler"),
	}
}

// Checkout submits the current cart as an order.
// POST /checkout
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid checkout payload", err.Error())
		return
	}

	sess := session.FromContext(c)
	res, err := h.service.Checkout(c.Request.Context(), sess, middleware.CartSessionID(c), req)
	if err != nil {
		h.logger.Warn("checkout failed",
			zap.String("user_id", sess.UserID),
			zap.String("payment_method", req.PaymentMethod),
			zap.Error(err),
		)
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Order placed successfully", res)
}
