package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
)

func runCategoryRouter(secure *echo.Group, categoryCtrl *controllers.CategoryController) {
	secure.GET("/categories", categoryCtrl.GetCategories)
	secure.GET("/category/:id", categoryCtrl.FindCategory)
	secure.POST("/category", categoryCtrl.CreateCategory)
	secure.PUT("/category/:id", categoryCtrl.UpdateCategory)
	secure.DELETE("/category/:id", categoryCtrl.DeleteCategory)
}
