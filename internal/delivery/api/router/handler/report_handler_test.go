package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "farmdesk/internal/domain/errors"
	mockUsecase "farmdesk/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReportServer(t *testing.T) (*echo.Echo, *mockUsecase.MockReportUsecase) {
	reportUC := mockUsecase.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC})

	e := newTestEcho(ownerActor)
	e.GET("/reports/finance.xlsx", h.ExportFinance)

	return e, reportUC
}

func TestReportHandler_ExportFinance(t *testing.T) {
	e, reportUC := createTestReportServer(t)
	workbook := []byte("PK\x03\x04workbook")

	reportUC.EXPECT().
		ExportFinance(mock.Anything, ownerActor,
			mock.MatchedBy(func(from *time.Time) bool { return from != nil && from.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) }),
			mock.MatchedBy(func(to *time.Time) bool { return to != nil && to.Equal(time.Date(2024, 12, 31, 23, 59, 59, 999999000, time.UTC)) }),
		).
		Return(workbook, nil)

	rec := doRequest(e, http.MethodGet, "/reports/finance.xlsx?from=2024-01-01&to=2024-12-31", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="finance_2024-01-01_2024-12-31.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, workbook, rec.Body.Bytes())
}

func TestReportHandler_ExportFinance_Unbounded(t *testing.T) {
	e, reportUC := createTestReportServer(t)

	reportUC.EXPECT().
		ExportFinance(mock.Anything, ownerActor, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]byte("PK"), nil)

	rec := doRequest(e, http.MethodGet, "/reports/finance.xlsx", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="finance.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
}

func TestReportHandler_ExportFinance_Errors(t *testing.T) {
	e, reportUC := createTestReportServer(t)

	rec := doRequest(e, http.MethodGet, "/reports/finance.xlsx?to=last-week", "")
	requireErrorResponse(t, rec, http.StatusBadRequest, "INVALID_QUERY")

	reportUC.EXPECT().
		ExportFinance(mock.Anything, ownerActor, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to"))

	rec = doRequest(e, http.MethodGet, "/reports/finance.xlsx?from=2024-02-01&to=2024-01-01", "")
	requireErrorResponse(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Equal(t, "from must not be after to", decodeError(t, rec).Details)
}
