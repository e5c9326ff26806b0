package session

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/hazardwatch/internal/middleware"
	"github.com/xyz-asif/hazardwatch/internal/pkg/jwt"
	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
)

func RegisterRoutes(router *gin.RouterGroup, gate *Gate, jwtCfg *jwt.Config, log *logger.Logger) {
	handler := NewHandler(gate, jwtCfg, log)

	auth := router.Group("/auth")
	{
		auth.POST("/login", handler.Login)
		auth.POST("/logout", middleware.RequireAdmin(gate, jwtCfg.Secret), handler.Logout)
		auth.GET("/session", handler.Session)
	}
}
