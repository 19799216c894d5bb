package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogerrors "steez-storefront/internal/catalog/errors"
	"steez-storefront/internal/pkg/response"
)

type Handler struct {
	gateway Gateway
}

func NewHandler(g Gateway) *Handler {
	return &Handler{gateway: g}
}

func (h *Handler) Products(c *gin.Context) {
	filter := Filter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
	}

	products, err := h.gateway.Products(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", products)
}

func (h *Handler) Product(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		e := catalogerrors.ErrProductNotFound
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	product, err := h.gateway.Product(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", product)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.gateway.Categories(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", categories)
}

func (h *Handler) Brands(c *gin.Context) {
	brands, err := h.gateway.Brands(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", brands)
}
