package routes

import (
	"npc_garage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAnalytics = "/analytics"
)

func addAnalyticsRoutes(rg *gin.RouterGroup, h *handlers.AnalyticsHandler) {
	a := rg.Group(PathAnalytics)
	{
		a.GET("/report", h.GetReport)
		a.GET("/report/export", h.ExportReport)
		a.GET("/kpis", h.GetKPIs)
		a.GET("/clients", h.GetClientSegments)
		a.GET("/mechanics", h.GetMechanicPerformance)
		a.GET("/rankings/services", h.GetTopServices)
		a.GET("/rankings/parts", h.GetTopParts)
		a.GET("/revenue/monthly", h.GetMonthlyRevenue)
	}
}
