// Package handler provides HTTP handlers for admin settings endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	settingsModel "github.com/technoverse/registration-portal/internal/settings/model"
	"github.com/technoverse/registration-portal/internal/settings/service"
)

// Handler handles HTTP requests for settings endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new settings handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /api/admin/settings.
// Returns an empty object when no settings record has been persisted.
func (h *Handler) Get(c *gin.Context) {
	stored, err := h.service.GetStored(c.Request.Context())
	if err != nil {
		if errors.Is(err, settingsModel.ErrSettingsNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		h.logger.Errorw("error fetching settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching settings"})
		return
	}

	c.JSON(http.StatusOK, stored)
}

// Update handles PUT /api/admin/settings.
func (h *Handler) Update(c *gin.Context) {
	var req settingsModel.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if _, err := h.service.Update(c.Request.Context(), &req); err != nil {
		h.logger.Errorw("error updating settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings updated successfully!"})
}
