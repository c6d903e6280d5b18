package main

import (
	"context"
	"log/slog"
	"os"

	"farmdesk/config"
	"farmdesk/internal/delivery"
	"farmdesk/internal/delivery/api"
	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/router/handler"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/infra/auth"
	"farmdesk/internal/infra/billing"
	"farmdesk/internal/infra/export"
	"farmdesk/internal/infra/firebase"
	"farmdesk/internal/infra/llm"
	logs "farmdesk/internal/infra/log"
	"farmdesk/internal/infra/persistence/postgres"
	"farmdesk/internal/infra/pubsub"
	"farmdesk/internal/infra/qrcode"
	"farmdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		firebase.NewApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFarmRepository,
			postgres.NewFieldRepository,
			postgres.NewInvitationRepository,
			postgres.NewNotificationRepository,
			postgres.NewRecordRepositories,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.ProvideJWTService,
			newTokenService,
			auth.NewIdentityVerifier,
			pubsub.NewEventPublisher,
			qrcode.ProvideQRCodeService,
			export.NewExcelExporter,
			billing.ProvidePaymentGateway,
			llm.ProvideLanguageModel,
		),
	)
}

// newTokenService exposes the local JWT signer to the dev routes. It stays
// nil when no signing secret is configured.
func newTokenService(jwt *auth.JWTService) service.TokenService {
	if jwt == nil {
		return nil
	}

	return jwt
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewFarmService,
			impl.NewFieldService,
			impl.NewRecordUsecases,
			impl.NewReportService,
			impl.NewInvitationService,
			impl.NewNotificationService,
			impl.NewBillingService,
			impl.NewAdvisorService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewFarmHandler,
			handler.NewFieldHandler,
			handler.NewRecordHandler,
			handler.NewReportHandler,
			handler.NewInvitationHandler,
			handler.NewNotificationHandler,
			handler.NewBillingHandler,
			handler.NewAdvisorHandler,
			handler.NewDevHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
