package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
)

func runEquipmentRouter(secure *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	secure.GET("/equipments", equipmentCtrl.GetEquipments)
	secure.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	secure.POST("/equipment", equipmentCtrl.CreateEquipment)
	secure.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	secure.PATCH("/equipment/:id/status", equipmentCtrl.ChangeEquipmentStatus)
	secure.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
}
