package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/hazardwatch/internal/config"
	"github.com/xyz-asif/hazardwatch/internal/features/reports"
	"github.com/xyz-asif/hazardwatch/internal/features/session"
	"github.com/xyz-asif/hazardwatch/internal/middleware"
	"github.com/xyz-asif/hazardwatch/internal/pkg/jwt"
	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
	"github.com/xyz-asif/hazardwatch/internal/pkg/ratelimit"
)

// Dependencies are the long-lived services built in main.
type Dependencies struct {
	Config  *config.Config
	Reports *reports.Service
	Hub     *reports.Hub
	Gate    *session.Gate
	Limiter *ratelimit.RateLimiter
	Log     *logger.Logger
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	api := router.Group("/api/v1")

	jwtCfg := jwt.DefaultConfig(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)
	session.RegisterRoutes(api, deps.Gate, jwtCfg, deps.Log.Named("session"))

	public := api.Group("")
	if deps.Limiter != nil {
		public.Use(ratelimit.Middleware(deps.Limiter))
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(deps.Gate, cfg.JWTSecret))

	reports.RegisterRoutes(public, admin, deps.Reports, deps.Hub)
}
