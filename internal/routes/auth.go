package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout, authMW.Auth)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
