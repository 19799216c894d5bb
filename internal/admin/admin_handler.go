package admin

import (
	"mime/multipart"
	"net/http"
	"strconv"

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

func (h *Handler) CreateProduct(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product form", err.Error())
		return
	}

	image, imageName := formImage(c)
	if image != nil {
		defer image.Close()
	}

	res, err := h.service.CreateProduct(c.Request.Context(), session.FromContext(c), form, image, imageName)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Product created", res)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product id", nil)
		return
	}

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product form", err.Error())
		return
	}

	image, imageName := formImage(c)
	if image != nil {
		defer image.Close()
	}

	res, err := h.service.UpdateProduct(c.Request.Context(), session.FromContext(c), id, form, image, imageName)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product updated", res)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product id", nil)
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), session.FromContext(c), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product deleted", nil)
}

func (h *Handler) Orders(c *gin.Context) {
	res, err := h.service.Orders(c.Request.Context(), session.FromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid order id", nil)
		return
	}

	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid status payload", err.Error())
		return
	}

	res, err := h.service.UpdateOrderStatus(c.Request.Context(), session.FromContext(c), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order updated", res)
}

func productID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func formImage(c *gin.Context) (multipart.File, string) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, ""
	}
	file, err := header.Open()
	if err != nil {
		return nil, ""
	}
	return file, header.Filename
}
