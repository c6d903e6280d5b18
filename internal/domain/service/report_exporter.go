package service

import (
	"time"

	"farmdesk/internal/domain/entity"
)

// FinanceReport is the data behind a finance export.
type FinanceReport struct {
	FarmName string
	From     *time.Time
	To       *time.Time
	Revenue  []*entity.RevenueLog
	Expenses []*entity.ExpenseLog
	// RowLimit is set when a sheet was cut off at that many rows.
	RowLimit int
}

// ReportExporter renders reports into downloadable documents.
type ReportExporter interface {
	// ExportFinance returns an XLSX workbook.
	ExportFinance(report *FinanceReport) ([]byte, error)
}
