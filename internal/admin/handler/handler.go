// Package handler provides HTTP handlers for admin authentication endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminModel "github.com/technoverse/registration-portal/internal/admin/model"
	"github.com/technoverse/registration-portal/internal/admin/service"
)

// Handler handles HTTP requests for admin authentication.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new admin handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Login handles POST /api/admin/login.
func (h *Handler) Login(c *gin.Context) {
	var req adminModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username and password are required"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, adminModel.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		h.logger.Errorw("error during login", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during login."})
		return
	}

	c.JSON(http.StatusOK, adminModel.LoginResponse{Success: true, Token: token})
}
