// Package handler provides the HTTP handler for the public stats endpoint.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technoverse/registration-portal/internal/stats/service"
)

// Handler handles HTTP requests for public stats.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new stats handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /api/stats.
func (h *Handler) Get(c *gin.Context) {
	stats, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error fetching stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
