package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/middlewares"

	"github.com/gin-gonic/gin"
)

// DepartmentRoutes sets up the department routes
func DepartmentRoutes(r *gin.Engine) {
	dept := r.Group("/api/department")
	dept.Use(middlewares.AuthMiddleware())
	{
		dept.GET("/list", controllers.ListDepartments)
		dept.GET("/:id", controllers.GetDepartment)
		dept.GET("/:id/stats", controllers.GetDepartmentStats)
	}
}
