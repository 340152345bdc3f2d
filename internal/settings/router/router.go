// Package router provides settings module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technoverse/registration-portal/internal/settings/handler"
	"github.com/technoverse/registration-portal/internal/settings/service"
)

// RegisterRoutes registers settings routes on the authenticated admin group.
func RegisterRoutes(admin *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	admin.GET("/settings", h.Get)
	admin.PUT("/settings", h.Update)
}
