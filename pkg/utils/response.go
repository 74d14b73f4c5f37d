package utils

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/TATAaunt/hospital-surgery-equipment-management/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(ctx echo.Context, err error) error {
	code := apperrors.StatusCode(err)
	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: err.Error(),
	})
}
