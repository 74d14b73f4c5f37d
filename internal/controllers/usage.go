package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/services"
	apperrors "github.com/TATAaunt/hospital-surgery-equipment-management/pkg/errors"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/utils"
)

type UsageController struct {
	inventory *services.InventoryService
	logger    *zap.Logger
}

func NewUsageController(inventory *services.InventoryService, logger *zap.Logger) *UsageController {
	return &UsageController{inventory: inventory, logger: logger}
}

func (c *UsageController) GetUsages(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.inventory.Usages(), "Usage records fetched", http.StatusOK)
}

func (c *UsageController) StartUsage(ctx echo.Context) error {
	var payload dto.StartUsageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.StartUsage(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Usage started", http.StatusCreated)
}

func (c *UsageController) EndUsage(ctx echo.Context) error {
	var payload dto.EndUsageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	res, err := c.inventory.EndUsage(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Usage ended", http.StatusOK)
}
