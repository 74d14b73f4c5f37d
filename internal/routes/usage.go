package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
)

func runUsageRouter(secure *echo.Group, usageCtrl *controllers.UsageController) {
	secure.GET("/usages", usageCtrl.GetUsages)
	secure.POST("/usage/start", usageCtrl.StartUsage)
	secure.POST("/usage/:id/end", usageCtrl.EndUsage)
}
