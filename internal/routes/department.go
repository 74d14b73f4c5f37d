package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
)

func runDepartmentRouter(secure *echo.Group, departmentCtrl *controllers.DepartmentController) {
	secure.GET("/departments", departmentCtrl.GetDepartments)
	secure.GET("/department/:id", departmentCtrl.FindDepartment)
	secure.POST("/department", departmentCtrl.CreateDepartment)
	secure.PUT("/department/:id", departmentCtrl.UpdateDepartment)
	secure.DELETE("/department/:id", departmentCtrl.DeleteDepartment)
}
