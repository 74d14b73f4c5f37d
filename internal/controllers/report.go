package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/services"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/utils"
)

type ReportController struct {
	reports *services.ReportService
	logger  *zap.Logger
}

func NewReportController(reports *services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reports: reports, logger: logger}
}

func (c *ReportController) DownloadEquipmentReport(ctx echo.Context) error {
	f, err := c.reports.EquipmentWorkbook(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="equipment.xlsx"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response())
}
