package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
)

func runReportRouter(secure *echo.Group, reportCtrl *controllers.ReportController) {
	secure.GET("/reports/equipment.xlsx", reportCtrl.DownloadEquipmentReport)
}
