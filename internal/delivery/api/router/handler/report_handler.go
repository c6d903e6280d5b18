package handler

import (
	"fmt"
	"net/http"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{reportUC: params.ReportUC}
}

// ExportFinance downloads the farm's revenue and expenses as a workbook.
func (h *ReportHandler) ExportFinance(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	from, err := parseDate(c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}
	to, err := parseEndDate(c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	workbook, err := h.reportUC.ExportFinance(c.Request().Context(), actor, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := "finance.xlsx"
	if from != nil && to != nil {
		filename = fmt.Sprintf("finance_%s_%s.xlsx", from.Format(dateLayout), to.Format(dateLayout))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, xlsxContentType, workbook)
}
