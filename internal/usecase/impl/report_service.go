package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "farmdesk/internal/delivery/context"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxExportRows caps each sheet of an export.
const maxExportRows = 10 * repository.MaxRecordLimit

type reportService struct {
	records  repository.RecordRepositories
	farmRepo repository.FarmRepository
	exporter service.ReportExporter
	logger   *slog.Logger
}

type ReportServiceParams struct {
	fx.In

	Records  repository.RecordRepositories
	FarmRepo repository.FarmRepository
	Exporter service.ReportExporter
	Logger   *slog.Logger
}

func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		records:  params.Records,
		farmRepo: params.FarmRepo,
		exporter: params.Exporter,
		logger:   params.Logger,
	}
}

func (srv *reportService) ExportFinance(ctx context.Context, actor *usecase.Actor, from, to *time.Time) ([]byte, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}

	farm, err := srv.farmRepo.FindByID(ctx, actor.FarmID)
	if errors.Is(err, repository.ErrFarmNotFound) {
		return nil, domainerrors.ErrFarmNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load farm")
	}

	query := repository.RecordQuery{From: from, To: to}
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	revenue, revenueCut, err := listAll(ctx, srv.records.Revenue, actor, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list revenue")
	}
	expenses, expensesCut, err := listAll(ctx, srv.records.Expense, actor, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list expenses")
	}

	report := &service.FinanceReport{
		FarmName: farm.FarmName,
		From:     from,
		To:       to,
		Revenue:  revenue,
		Expenses: expenses,
	}
	if revenueCut || expensesCut {
		report.RowLimit = maxExportRows
		logger.Warn("Finance export truncated",
			slog.String("farmID", actor.FarmID.String()),
			slog.Int("rowLimit", maxExportRows),
			slog.Bool("revenue", revenueCut),
			slog.Bool("expenses", expensesCut),
		)
	}

	workbook, err := srv.exporter.ExportFinance(report)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render finance workbook")
	}

	logger.Info("Finance report exported",
		slog.Int("revenueRows", len(revenue)),
		slog.Int("expenseRows", len(expenses)),
	)

	return workbook, nil
}

// listAll pages through a record listing up to maxExportRows. The flag
// reports whether rows past the cap were left out.
func listAll[E any](ctx context.Context, repo repository.RecordRepository[E], actor *usecase.Actor, query repository.RecordQuery) ([]*E, bool, error) {
	var out []*E
	query.Limit = repository.MaxRecordLimit
	for {
		page, err := repo.List(ctx, actor.FarmID, query)
		if err != nil {
			return nil, false, err
		}
		out = append(out, page...)
		if len(page) < query.Limit {
			return out, false, nil
		}
		query.Offset += len(page)
		if len(out) >= maxExportRows {
			break
		}
	}

	query.Limit = 1
	next, err := repo.List(ctx, actor.FarmID, query)
	if err != nil {
		return nil, false, err
	}

	return out, len(next) > 0, nil
}
