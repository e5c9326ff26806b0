package reports

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public read endpoints on router and the triage
// endpoints on admin. The caller attaches auth middleware to admin.
func RegisterRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, svc *Service, hub *Hub) {
	handler := NewHandler(svc)

	router.GET("/meta", handler.Meta)
	router.GET("/dashboard", handler.Dashboard)
	router.GET("/map/markers", handler.Markers)

	reports := router.Group("/reports")
	{
		reports.GET("", handler.List)
		reports.GET("/:id", handler.Get)
	}

	if hub != nil {
		router.GET("/ws/reports", hub.HandleWebSocket)
	}

	adminReports := admin.Group("/reports")
	{
		adminReports.GET("", handler.AdminList)
		adminReports.POST("", handler.Create)
		adminReports.PATCH("/:id/status", handler.UpdateStatus)
		adminReports.POST("/:id/verify", handler.Verify)
		adminReports.POST("/:id/archive", handler.Archive)
		adminReports.DELETE("/:id", handler.Delete)
	}
	admin.GET("/stats", handler.AdminStats)
}
