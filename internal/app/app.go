// Package app assembles the HTTP router and all module dependencies.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adminRepository "github.com/technoverse/registration-portal/internal/admin/repository"
	adminRouter "github.com/technoverse/registration-portal/internal/admin/router"
	adminService "github.com/technoverse/registration-portal/internal/admin/service"
	"github.com/technoverse/registration-portal/internal/auth"
	"github.com/technoverse/registration-portal/internal/config"
	"github.com/technoverse/registration-portal/internal/health"
	"github.com/technoverse/registration-portal/internal/middleware"
	settingsRepository "github.com/technoverse/registration-portal/internal/settings/repository"
	settingsRouter "github.com/technoverse/registration-portal/internal/settings/router"
	settingsService "github.com/technoverse/registration-portal/internal/settings/service"
	statsRouter "github.com/technoverse/registration-portal/internal/stats/router"
	statsService "github.com/technoverse/registration-portal/internal/stats/service"
	teamRepository "github.com/technoverse/registration-portal/internal/team/repository"
	teamRouter "github.com/technoverse/registration-portal/internal/team/router"
	teamService "github.com/technoverse/registration-portal/internal/team/service"
)

// App holds the assembled router and the services main needs at startup.
type App struct {
	Router *gin.Engine
	Admins adminService.Service
}

// New wires repositories, services, middleware and routes into a gin engine.
func New(db *gorm.DB, cfg config.Config, logger *zap.SugaredLogger) *App {
	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Metrics())

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	adminRepo := adminRepository.New(db)
	adminSvc := adminService.New(adminRepo, tokens, logger)

	settingsRepo := settingsRepository.New(db)
	settingsSvc := settingsService.New(settingsRepo, logger)

	teamRepo := teamRepository.New(db)
	teamSvc := teamService.New(teamRepo, settingsSvc, logger)

	statsSvc := statsService.New(settingsSvc, teamRepo, logger)

	api := r.Group("/api")
	admin := api.Group("/admin", middleware.RequireAuth(adminSvc, logger))

	adminRouter.RegisterRoutes(api, adminSvc, logger)
	teamRouter.RegisterRoutes(api, admin, teamSvc, logger)
	settingsRouter.RegisterRoutes(admin, settingsSvc, logger)
	statsRouter.RegisterRoutes(api, statsSvc, logger)

	healthHandler := health.New(db, logger)
	r.GET("/healthz", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &App{
		Router: r,
		Admins: adminSvc,
	}
}
