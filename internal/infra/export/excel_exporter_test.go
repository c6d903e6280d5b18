package export

import (
	"bytes"
	"testing"
	"time"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func on(day int) entity.RecordMeta {
	return entity.RecordMeta{Date: time.Date(2024, time.June, day, 0, 0, 0, 0, time.UTC)}
}

func TestExcelExporter_ExportFinance(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	report := &service.FinanceReport{
		FarmName: "Green Acres",
		From:     &from,
		To:       &to,
		Revenue: []*entity.RevenueLog{
			{RecordMeta: on(3), Amount: 1200, Currency: "USD", Category: "Crops", Source: "Market"},
			{RecordMeta: on(9), Amount: 300, Currency: "USD", Category: "crops"},
		},
		Expenses: []*entity.ExpenseLog{
			{RecordMeta: on(4), Amount: 250.5, Currency: "USD", Category: "Feed", Vendor: "Co-op"},
		},
	}

	data, err := NewExcelExporter().ExportFinance(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetSummary, sheetRevenue, sheetExpenses}, f.GetSheetList())

	revenue, err := f.GetRows(sheetRevenue)
	require.NoError(t, err)
	require.Len(t, revenue, 3)
	assert.Equal(t, []string{"Date", "Category", "Source", "Amount", "Currency", "Notes"}, revenue[0])
	require.GreaterOrEqual(t, len(revenue[1]), 5)
	assert.Equal(t, []string{"2024-06-03", "Crops", "Market", "1200", "USD"}, revenue[1][:5])

	expenses, err := f.GetRows(sheetExpenses)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Co-op", expenses[1][2])

	net, err := f.GetCellValue(sheetSummary, "B6")
	require.NoError(t, err)
	assert.Equal(t, "1249.5", net)

	period, err := f.GetCellValue(sheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01 to 2024-06-30", period)

	crops, err := f.GetCellValue(sheetSummary, "A9")
	require.NoError(t, err)
	assert.Equal(t, "crops", crops)
}

func TestExcelExporter_EmptyReport(t *testing.T) {
	t.Parallel()

	data, err := NewExcelExporter().ExportFinance(&service.FinanceReport{FarmName: "Empty"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	period, err := f.GetCellValue(sheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "all time", period)

	summary, err := f.GetRows(sheetSummary)
	require.NoError(t, err)
	for _, row := range summary {
		assert.NotContains(t, row, "Truncated")
	}

	rows, err := f.GetRows(sheetRevenue)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExcelExporter_TruncatedNote(t *testing.T) {
	t.Parallel()

	report := &service.FinanceReport{
		FarmName: "Big Farm",
		Revenue:  []*entity.RevenueLog{{RecordMeta: on(1), Amount: 10, Category: "eggs"}},
		RowLimit: 5000,
	}

	data, err := NewExcelExporter().ExportFinance(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetSummary)
	require.NoError(t, err)
	last := rows[len(rows)-1]
	require.Len(t, last, 2)
	assert.Equal(t, "Truncated", last[0])
	assert.Contains(t, last[1], "first 5000 rows")
}

func TestDescribePeriod(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "from 2024-01-01", describePeriod(&from, nil))
	assert.Equal(t, "until 2024-01-01", describePeriod(nil, &from))
}
