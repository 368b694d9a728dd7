package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/middlewares"

	"github.com/gin-gonic/gin"
)

// NotificationRoutes sets up the notification feed routes
func NotificationRoutes(r *gin.Engine) {
	notification := r.Group("/api/notification")
	notification.Use(middlewares.AuthMiddleware())
	{
		notification.GET("/list", controllers.ListNotifications)
		notification.PATCH("/:id/read", controllers.MarkNotificationRead)
		notification.POST("/read-all", controllers.MarkAllNotificationsRead)
	}
}
