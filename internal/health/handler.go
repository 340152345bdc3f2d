// Package health provides the health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/technoverse/registration-portal/internal/database"
)

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Response represents the health check response.
type Response struct {
	Status      string `json:"status"`
	DBLatencyMs int64  `json:"dbLatencyMs"`
}

// Check handles GET /healthz. The reported latency is the round trip of a
// single database ping.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := database.HealthCheck(ctx, h.db)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		h.logger.Warnw("health check failed", "error", err, "db_latency_ms", latency)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy", DBLatencyMs: latency})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok", DBLatencyMs: latency})
}
