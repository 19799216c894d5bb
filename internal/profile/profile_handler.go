package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"steez-storefront/internal/pkg/response"
	"steez-storefront/internal/session"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Profile(c *gin.Context) {
	res, err := h.service.Profile(c.Request.Context(), session.FromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid profile payload", err.Error())
		return
	}

	res, err := h.service.UpdateProfile(c.Request.Context(), session.FromContext(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", res)
}

func (h *Handler) MyOrders(c *gin.Context) {
	res, err := h.service.MyOrders(c.Request.Context(), session.FromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}
