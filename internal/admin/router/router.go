// Package router provides admin module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technoverse/registration-portal/internal/admin/handler"
	"github.com/technoverse/registration-portal/internal/admin/service"
)

// RegisterRoutes registers admin authentication routes on the public API group.
func RegisterRoutes(api *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	api.POST("/admin/login", h.Login)
}
