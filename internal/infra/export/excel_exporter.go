// Package export renders farm reports as spreadsheets.
package export

import (
	"fmt"
	"strings"
	"time"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/domain/stats"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetRevenue  = "Revenue"
	sheetExpenses = "Expenses"
	dateLayout    = "2006-01-02"
)

type excelExporter struct{}

// NewExcelExporter creates a ReportExporter producing .xlsx workbooks.
func NewExcelExporter() service.ReportExporter {
	return &excelExporter{}
}

// ExportFinance writes a workbook with Summary, Revenue and Expenses sheets.
func (e *excelExporter) ExportFinance(report *service.FinanceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, errors.Wrap(err, "rename summary sheet")
	}

	revenueRows := make([][]any, 0, len(report.Revenue))
	for _, r := range report.Revenue {
		revenueRows = append(revenueRows, []any{r.Date.Format(dateLayout), r.Category, r.Source, r.Amount, r.Currency, r.Notes})
	}
	if err := writeSheet(f, sheetRevenue, []any{"Date", "Category", "Source", "Amount", "Currency", "Notes"}, revenueRows); err != nil {
		return nil, err
	}

	expenseRows := make([][]any, 0, len(report.Expenses))
	for _, x := range report.Expenses {
		expenseRows = append(expenseRows, []any{x.Date.Format(dateLayout), x.Category, x.Vendor, x.Amount, x.Currency, x.Notes})
	}
	if err := writeSheet(f, sheetExpenses, []any{"Date", "Category", "Vendor", "Amount", "Currency", "Notes"}, expenseRows); err != nil {
		return nil, err
	}

	if err := writeSummary(f, report); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}

	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrapf(err, "create %s sheet", sheet)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "write %s header", sheet)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write %s row %d", sheet, i+1)
		}
	}

	return nil
}

func writeSummary(f *excelize.File, report *service.FinanceReport) error {
	byRevenue := stats.SumBy(report.Revenue,
		func(r *entity.RevenueLog) string { return categoryName(r.Category) },
		func(r *entity.RevenueLog) float64 { return r.Amount },
	)
	byExpense := stats.SumBy(report.Expenses,
		func(x *entity.ExpenseLog) string { return categoryName(x.Category) },
		func(x *entity.ExpenseLog) float64 { return x.Amount },
	)

	var totalRevenue, totalExpenses float64
	for _, c := range byRevenue {
		totalRevenue += c.Total
	}
	for _, c := range byExpense {
		totalExpenses += c.Total
	}

	rows := [][]any{
		{"Farm", report.FarmName},
		{"Period", describePeriod(report.From, report.To)},
		{},
		{"Total revenue", totalRevenue},
		{"Total expenses", totalExpenses},
		{"Net", totalRevenue - totalExpenses},
		{},
		{"Revenue by category"},
	}
	for _, c := range byRevenue {
		rows = append(rows, []any{c.Category, c.Total})
	}
	rows = append(rows, []any{}, []any{"Expenses by category"})
	for _, c := range byExpense {
		rows = append(rows, []any{c.Category, c.Total})
	}
	if report.RowLimit > 0 {
		rows = append(rows, []any{}, []any{"Truncated", fmt.Sprintf("Only the first %d rows of each sheet are included; narrow the period for a full export", report.RowLimit)})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return errors.Wrapf(err, "write summary row %d", i+1)
		}
	}

	return nil
}

func categoryName(category string) string {
	if category = strings.TrimSpace(category); category == "" {
		return "other"
	}

	return strings.ToLower(category)
}

func describePeriod(from, to *time.Time) string {
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("%s to %s", from.Format(dateLayout), to.Format(dateLayout))
	case from != nil:
		return "from " + from.Format(dateLayout)
	case to != nil:
		return "until " + to.Format(dateLayout)
	default:
		return "all time"
	}
}
