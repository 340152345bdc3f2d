// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technoverse/registration-portal/internal/team/handler"
	"github.com/technoverse/registration-portal/internal/team/service"
)

// RegisterRoutes registers team routes: public registration on the API
// group, review operations on the authenticated admin group.
func RegisterRoutes(api, admin *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	api.POST("/register", h.Register)

	admin.GET("/teams", h.List)
	admin.PUT("/teams/:id/approve", h.Approve)
	admin.DELETE("/teams/:id", h.Delete)
}
