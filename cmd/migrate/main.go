package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"farmdesk/config"
	logs "farmdesk/internal/infra/log"
	"farmdesk/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	sqlitePath := flag.String("sqlite", "", "Migrate a local SQLite file instead of the configured Postgres database")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: migrate [-sqlite path]\n\n")
		fmt.Fprintf(os.Stderr, "Applies the schema of every persisted table.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		provideDB(*sqlitePath),
		fx.Invoke(runMigration),
	).Run()
}

func provideDB(sqlitePath string) fx.Option {
	if sqlitePath == "" {
		return fx.Provide(postgres.New)
	}

	return fx.Provide(func(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
		return postgres.NewSQLite(sqlitePath, cfg, logger)
	})
}

// runMigration migrates once the store is reachable, then stops the app.
func runMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := postgres.AutoMigrate(context.Background(), params.DB, params.Logger); err != nil {
					params.Logger.Error("Migration failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}
