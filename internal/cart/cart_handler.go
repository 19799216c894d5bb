package cart

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	carterrors "steez-storefront/internal/cart/errors"
	"steez-storefront/internal/middleware"
	"steez-storefront/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), middleware.CartSessionID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid cart item payload", err.Error())
		return
	}

	res, err := h.service.AddItem(c.Request.Context(), middleware.CartSessionID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// The count in the response is what the UI uses to pop the cart panel.
	response.Success(c, http.StatusCreated, "Item added to cart", res)
}

func (h *Handler) ChangeQty(c *gin.Context) {
	index, err := itemIndex(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req ChangeQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid quantity payload", err.Error())
		return
	}

	res, err := h.service.ChangeQty(c.Request.Context(), middleware.CartSessionID(c), index, req.Delta)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	index, err := itemIndex(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.RemoveItem(c.Request.Context(), middleware.CartSessionID(c), index)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), middleware.CartSessionID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cart cleared", nil)
}

func itemIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, carterrors.ErrItemNotFound
	}
	return index, nil
}
