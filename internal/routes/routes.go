package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/controllers"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/services"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/config"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/middleware"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/service"
)

// InitRouter wires every service and controller onto the echo instance.
// All routes except /api/auth/login sit behind the JWT middleware.
func InitRouter(e *echo.Echo, inventory *services.InventoryService, cache store.Cache, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	authService, err := services.NewAuthService(&cfg.Auth, jwtSvc, cache, logger)
	if err != nil {
		logger.Fatal("failed to initialize auth service", zap.Error(err))
	}
	maintenanceService := services.NewMaintenanceService(inventory, cfg.Maintenance.WarnDays, services.AdminUserID, logger)
	reportService := services.NewReportService(inventory, logger)

	authCtrl := controllers.NewAuthController(authService, logger)
	departmentCtrl := controllers.NewDepartmentController(inventory, logger)
	categoryCtrl := controllers.NewCategoryController(inventory, logger)
	equipmentCtrl := controllers.NewEquipmentController(inventory, logger)
	usageCtrl := controllers.NewUsageController(inventory, logger)
	notificationCtrl := controllers.NewNotificationController(inventory, logger)
	statsCtrl := controllers.NewStatsController(inventory, logger)
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl, authMW)
	runDepartmentRouter(secureGroup, departmentCtrl)
	runCategoryRouter(secureGroup, categoryCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runUsageRouter(secureGroup, usageCtrl)
	runNotificationRouter(secureGroup, notificationCtrl)
	runStatsRouter(secureGroup, statsCtrl)
	runMaintenanceRouter(secureGroup, maintenanceCtrl)
	runReportRouter(secureGroup, reportCtrl)

	logger.Info("routes registered")
}
