package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/services"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/utils"
)

type StatsController struct {
	inventory *services.InventoryService
	logger    *zap.Logger
}

func NewStatsController(inventory *services.InventoryService, logger *zap.Logger) *StatsController {
	return &StatsController{inventory: inventory, logger: logger}
}

func (c *StatsController) GetEquipmentStats(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.inventory.EquipmentStats(), "Equipment stats fetched", http.StatusOK)
}

func (c *StatsController) GetDepartmentStats(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.inventory.DepartmentStats(), "Department stats fetched", http.StatusOK)
}

func (c *StatsController) RefreshStats(ctx echo.Context) error {
	if err := c.inventory.RefreshStats(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, c.inventory.EquipmentStats(), "Stats refreshed", http.StatusOK)
}

func (c *StatsController) RefreshData(ctx echo.Context) error {
	if err := c.inventory.RefreshData(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "Data reloaded from store", http.StatusOK)
}
