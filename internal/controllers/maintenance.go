package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/services"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/utils"
)

type MaintenanceController struct {
	maintenance *services.MaintenanceService
	logger      *zap.Logger
}

func NewMaintenanceController(maintenance *services.MaintenanceService, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{maintenance: maintenance, logger: logger}
}

func (c *MaintenanceController) Scan(ctx echo.Context) error {
	created, err := c.maintenance.ScanDue(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, map[string]int{"notificationsCreated": created}, "Maintenance scan completed", http.StatusOK)
}
