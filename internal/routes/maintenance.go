package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
)

func runMaintenanceRouter(secure *echo.Group, maintenanceCtrl *controllers.MaintenanceController) {
	secure.POST("/maintenance/scan", maintenanceCtrl.Scan)
}
