// Package router provides stats module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technoverse/registration-portal/internal/stats/handler"
	"github.com/technoverse/registration-portal/internal/stats/service"
)

// RegisterRoutes registers the public stats route.
func RegisterRoutes(api *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	api.GET("/stats", h.Get)
}
