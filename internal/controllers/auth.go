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

type AuthController struct {
	auth   services.AuthServiceInterface
	logger *zap.Logger
}

func NewAuthController(auth services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, logger: logger}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err))
	}
	res, err := c.auth.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Login succeeded", http.StatusOK)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	if err := c.auth.Logout(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "Logged out", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	user, err := c.auth.CurrentUser(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, user, "Current user", http.StatusOK)
}
