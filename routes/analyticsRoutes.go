package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AnalyticsRoutes sets up the analytics routes
func AnalyticsRoutes(r *gin.Engine) {
	analytics := r.Group("/api/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/overview", middlewares.RequireRole("admin"), controllers.GetOverview)
		analytics.GET("/departments", middlewares.RequireRole("admin"), controllers.GetDepartmentPerformance)
		analytics.GET("/status-counts", controllers.GetStatusCounts)
		analytics.GET("/categories", controllers.GetCategoryStats)
		analytics.GET("/trend", controllers.GetTrend)
		analytics.GET("/me", controllers.GetMyContributions)
	}
}
