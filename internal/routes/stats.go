package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
)

func runStatsRouter(secure *echo.Group, statsCtrl *controllers.StatsController) {
	secure.GET("/stats/equipment", statsCtrl.GetEquipmentStats)
	secure.GET("/stats/departments", statsCtrl.GetDepartmentStats)
	secure.POST("/stats/refresh", statsCtrl.RefreshStats)
	secure.POST("/data/refresh", statsCtrl.RefreshData)
}
