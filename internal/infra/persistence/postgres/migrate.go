package postgres

import (
	"context"
	"log/slog"

	"farmdesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AutoMigrate creates or alters every table the service persists.
func AutoMigrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	logger.Info("Schema migrated", slog.Int("tables", len(models)))

	return nil
}
