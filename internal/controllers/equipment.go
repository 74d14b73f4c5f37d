package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/services"
	apperrors "github.com/TATAaunt/hospital-surgery-equipment-management/pkg/errors"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/utils"
)

type EquipmentController struct {
	inventory *services.InventoryService
	logger    *zap.Logger
}

func NewEquipmentController(inventory *services.InventoryService, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{inventory: inventory, logger: logger}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.inventory.Equipment(), "Equipment fetched", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id := ctx.Param("id")
	for _, eq := range c.inventory.Equipment() {
		if eq.ID == id {
			return utils.SuccessResponse(ctx, eq, "Equipment found", http.StatusOK)
		}
	}
	return utils.ErrorResponse(ctx, apperrors.ErrNotFound)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.AddEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Equipment created", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.UpdateEquipment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Equipment updated", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	if err := c.inventory.DeleteEquipment(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "Equipment deleted", http.StatusOK)
}

func (c *EquipmentController) ChangeEquipmentStatus(ctx echo.Context) error {
	var payload dto.ChangeEquipmentStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.ChangeEquipmentStatus(ctx.Request().Context(), ctx.Param("id"), entities.EquipmentStatus(payload.Status))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Equipment status changed", http.StatusOK)
}
