package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
)

func runNotificationRouter(secure *echo.Group, notificationCtrl *controllers.NotificationController) {
	secure.GET("/notifications", notificationCtrl.GetNotifications)
	secure.POST("/notification", notificationCtrl.CreateNotification)
	secure.PATCH("/notification/:id/read", notificationCtrl.MarkAsRead)
	secure.POST("/notifications/read-all", notificationCtrl.MarkAllAsRead)
}
