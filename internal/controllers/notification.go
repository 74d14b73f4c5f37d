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

type NotificationController struct {
	inventory *services.InventoryService
	logger    *zap.Logger
}

func NewNotificationController(inventory *services.InventoryService, logger *zap.Logger) *NotificationController {
	return &NotificationController{inventory: inventory, logger: logger}
}

func (c *NotificationController) GetNotifications(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.inventory.Notifications(), "Notifications fetched", http.StatusOK)
}

func (c *NotificationController) CreateNotification(ctx echo.Context) error {
	var payload dto.CreateNotificationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.inventory.AddNotification(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Notification created", http.StatusCreated)
}

func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	res, err := c.inventory.MarkNotificationAsRead(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Notification marked as read", http.StatusOK)
}

func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	if err := c.inventory.MarkAllNotificationsAsRead(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "All notifications marked as read", http.StatusOK)
}
