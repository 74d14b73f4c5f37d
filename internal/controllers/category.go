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

type CategoryController struct {
	inventory *services.InventoryService
	logger    *zap.Logger
}

func NewCategoryController(inventory *services.InventoryService, logger *zap.Logger) *CategoryController {
	return &CategoryController{inventory: inventory, logger: logger}
}

func (c *CategoryController) GetCategories(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.inventory.Categories(), "Categories fetched", http.StatusOK)
}

func (c *CategoryController) FindCategory(ctx echo.Context) error {
	id := ctx.Param("id")
	for _, cat := range c.inventory.Categories() {
		if cat.ID == id {
			return utils.SuccessResponse(ctx, cat, "Category found", http.StatusOK)
		}
	}
	return utils.ErrorResponse(ctx, apperrors.ErrNotFound)
}

func (c *CategoryController) CreateCategory(ctx echo.Context) error {
	var payload dto.CreateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.AddCategory(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Category created", http.StatusCreated)
}

func (c *CategoryController) UpdateCategory(ctx echo.Context) error {
	var payload dto.UpdateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.UpdateCategory(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Category updated", http.StatusOK)
}

func (c *CategoryController) DeleteCategory(ctx echo.Context) error {
	if err := c.inventory.DeleteCategory(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "Category deleted", http.StatusOK)
}
