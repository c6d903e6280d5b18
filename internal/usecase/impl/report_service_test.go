package impl

import (
	"context"
	"testing"
	"time"

	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	mockRepo "farmdesk/internal/mocks/repository"
	mockSvc "farmdesk/internal/mocks/service"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_ExportFinance(t *testing.T) {
	revenueRepo := mockRepo.NewMockRecordRepository[entity.RevenueLog](t)
	expenseRepo := mockRepo.NewMockRecordRepository[entity.ExpenseLog](t)
	farmRepo := mockRepo.NewMockFarmRepository(t)
	exporter := mockSvc.NewMockReportExporter(t)

	srv := NewReportService(ReportServiceParams{
		Records:  repository.RecordRepositories{Revenue: revenueRepo, Expense: expenseRepo},
		FarmRepo: farmRepo,
		Exporter: exporter,
		Logger:   newDiscardLogger(),
	})

	ctx := context.Background()
	actor := &usecase.Actor{UID: "owner", FarmID: uuid.New()}
	from := date(2026, time.January, 1)

	fullPage := make([]*entity.RevenueLog, repository.MaxRecordLimit)
	for i := range fullPage {
		fullPage[i] = &entity.RevenueLog{Amount: 1, Category: "eggs"}
	}

	farmRepo.EXPECT().FindByID(ctx, actor.FarmID).Return(&entity.Farm{ID: actor.FarmID, FarmName: "Green Acres"}, nil)
	revenueRepo.EXPECT().
		List(ctx, actor.FarmID, repository.RecordQuery{From: &from, Limit: repository.MaxRecordLimit}).
		Return(fullPage, nil)
	revenueRepo.EXPECT().
		List(ctx, actor.FarmID, repository.RecordQuery{From: &from, Limit: repository.MaxRecordLimit, Offset: repository.MaxRecordLimit}).
		Return([]*entity.RevenueLog{{Amount: 5, Category: "milk"}}, nil)
	expenseRepo.EXPECT().
		List(ctx, actor.FarmID, repository.RecordQuery{From: &from, Limit: repository.MaxRecordLimit}).
		Return([]*entity.ExpenseLog{}, nil)
	exporter.EXPECT().
		ExportFinance(mock.MatchedBy(func(r *service.FinanceReport) bool {
			return r.FarmName == "Green Acres" && len(r.Revenue) == repository.MaxRecordLimit+1 && len(r.Expenses) == 0 && r.To == nil
		})).
		Return([]byte("xlsx"), nil)

	workbook, err := srv.ExportFinance(ctx, actor, &from, nil)

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), workbook)
}

func TestReportService_ExportFinance_MarksTruncatedExport(t *testing.T) {
	revenueRepo := mockRepo.NewMockRecordRepository[entity.RevenueLog](t)
	expenseRepo := mockRepo.NewMockRecordRepository[entity.ExpenseLog](t)
	farmRepo := mockRepo.NewMockFarmRepository(t)
	exporter := mockSvc.NewMockReportExporter(t)

	srv := NewReportService(ReportServiceParams{
		Records:  repository.RecordRepositories{Revenue: revenueRepo, Expense: expenseRepo},
		FarmRepo: farmRepo,
		Exporter: exporter,
		Logger:   newDiscardLogger(),
	})

	ctx := context.Background()
	actor := &usecase.Actor{UID: "owner", FarmID: uuid.New()}

	fullPage := make([]*entity.ExpenseLog, repository.MaxRecordLimit)
	for i := range fullPage {
		fullPage[i] = &entity.ExpenseLog{Amount: 1, Category: "feed"}
	}
	pageSized := func(q repository.RecordQuery) bool { return q.Limit == repository.MaxRecordLimit }

	farmRepo.EXPECT().FindByID(ctx, actor.FarmID).Return(&entity.Farm{ID: actor.FarmID, FarmName: "Big Farm"}, nil)
	revenueRepo.EXPECT().
		List(ctx, actor.FarmID, repository.RecordQuery{Limit: repository.MaxRecordLimit}).
		Return(nil, nil)
	expenseRepo.EXPECT().
		List(ctx, actor.FarmID, mock.MatchedBy(pageSized)).
		Return(fullPage, nil).
		Times(maxExportRows / repository.MaxRecordLimit)
	expenseRepo.EXPECT().
		List(ctx, actor.FarmID, repository.RecordQuery{Limit: 1, Offset: maxExportRows}).
		Return([]*entity.ExpenseLog{{Amount: 1}}, nil)
	exporter.EXPECT().
		ExportFinance(mock.MatchedBy(func(r *service.FinanceReport) bool {
			return len(r.Expenses) == maxExportRows && r.RowLimit == maxExportRows
		})).
		Return([]byte("xlsx"), nil)

	_, err := srv.ExportFinance(ctx, actor, nil, nil)

	require.NoError(t, err)
}

func TestReportService_ExportFinance_ExactlyAtCapIsComplete(t *testing.T) {
	revenueRepo := mockRepo.NewMockRecordRepository[entity.RevenueLog](t)
	expenseRepo := mockRepo.NewMockRecordRepository[entity.ExpenseLog](t)
	farmRepo := mockRepo.NewMockFarmRepository(t)
	exporter := mockSvc.NewMockReportExporter(t)

	srv := NewReportService(ReportServiceParams{
		Records:  repository.RecordRepositories{Revenue: revenueRepo, Expense: expenseRepo},
		FarmRepo: farmRepo,
		Exporter: exporter,
		Logger:   newDiscardLogger(),
	})

	ctx := context.Background()
	actor := &usecase.Actor{UID: "owner", FarmID: uuid.New()}

	fullPage := make([]*entity.RevenueLog, repository.MaxRecordLimit)
	for i := range fullPage {
		fullPage[i] = &entity.RevenueLog{Amount: 1, Category: "eggs"}
	}

	farmRepo.EXPECT().FindByID(ctx, actor.FarmID).Return(&entity.Farm{ID: actor.FarmID}, nil)
	revenueRepo.EXPECT().
		List(ctx, actor.FarmID, mock.MatchedBy(func(q repository.RecordQuery) bool { return q.Limit == repository.MaxRecordLimit })).
		Return(fullPage, nil).
		Times(maxExportRows / repository.MaxRecordLimit)
	revenueRepo.EXPECT().
		List(ctx, actor.FarmID, repository.RecordQuery{Limit: 1, Offset: maxExportRows}).
		Return(nil, nil)
	expenseRepo.EXPECT().
		List(ctx, actor.FarmID, repository.RecordQuery{Limit: repository.MaxRecordLimit}).
		Return(nil, nil)
	exporter.EXPECT().
		ExportFinance(mock.MatchedBy(func(r *service.FinanceReport) bool {
			return len(r.Revenue) == maxExportRows && r.RowLimit == 0
		})).
		Return([]byte("xlsx"), nil)

	_, err := srv.ExportFinance(ctx, actor, nil, nil)

	require.NoError(t, err)
}

func TestReportService_ExportFinance_InvertedRange(t *testing.T) {
	srv := NewReportService(ReportServiceParams{Logger: newDiscardLogger()})
	from := date(2026, time.May, 1)
	to := date(2026, time.April, 1)

	_, err := srv.ExportFinance(context.Background(), &usecase.Actor{}, &from, &to)

	requireErrorCode(t, err, domainerrors.ErrValidationFailed)
}
