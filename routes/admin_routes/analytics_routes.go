package admin_routes

import (
	"github.com/Voltline-Commerce/voltline-backend/controllers/admin/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/overview", analytics_controller.GetAnalyticsOverview)
	analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)
	analytics.GET("/top-products", analytics_controller.GetTopProducts)
}
