package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes. createGuards are applied to
// the create endpoint after authentication (e.g. the Redis rate
// limiter when Redis is configured).
func IssueRoutes(r *gin.Engine, createGuards ...gin.HandlerFunc) {
	issue := r.Group("/api/issue")
	issue.Use(middlewares.AuthMiddleware())
	{
		create := append([]gin.HandlerFunc{}, createGuards...)
		create = append(create, controllers.CreateIssue)
		issue.POST("/create", create...)

		issue.GET("/list", controllers.ListIssues)
		issue.GET("/:id", controllers.GetIssue)
		issue.POST("/:id/updates", controllers.AddIssueUpdate)
		issue.PATCH("/:id/status", middlewares.RequireRole("admin"), controllers.UpdateIssueStatus)
		issue.PATCH("/:id/assign", middlewares.RequireRole("admin"), controllers.AssignIssue)
		issue.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteIssue)
	}
}
