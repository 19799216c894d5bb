package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"steez-storefront/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid login payload", err.Error())
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", res)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid registration payload", err.Error())
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Registered", res)
}

func (h *Handler) Guest(c *gin.Context) {
	res, err := h.service.GuestLogin()
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Guest session started", res)
}

// Me resolves the session attached by the middleware.
func (h *Handler) Me(c *gin.Context) {
	sess := FromContext(c)
	response.Success(c, http.StatusOK, "", UserResponse{
		ID:    sess.UserID,
		Name:  sess.Name,
		Email: sess.Email,
		Role:  sess.Role,
		Guest: sess.Guest,
	})
}
