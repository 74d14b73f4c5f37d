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

type DepartmentController struct {
	inventory *services.InventoryService
	logger    *zap.Logger
}

func NewDepartmentController(inventory *services.InventoryService, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{inventory: inventory, logger: logger}
}

func (c *DepartmentController) GetDepartments(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.inventory.Departments(), "Departments fetched", http.StatusOK)
}

func (c *DepartmentController) FindDepartment(ctx echo.Context) error {
	id := ctx.Param("id")
	for _, dept := range c.inventory.Departments() {
		if dept.ID == id {
			return utils.SuccessResponse(ctx, dept, "Department found", http.StatusOK)
		}
	}
	return utils.ErrorResponse(ctx, apperrors.ErrNotFound)
}

func (c *DepartmentController) CreateDepartment(ctx echo.Context) error {
	var payload dto.CreateDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.AddDepartment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Department created", http.StatusCreated)
}

func (c *DepartmentController) UpdateDepartment(ctx echo.Context) error {
	var payload dto.UpdateDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.UpdateDepartment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Department updated", http.StatusOK)
}

func (c *DepartmentController) DeleteDepartment(ctx echo.Context) error {
	if err := c.inventory.DeleteDepartment(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "Department deleted", http.StatusOK)
}
