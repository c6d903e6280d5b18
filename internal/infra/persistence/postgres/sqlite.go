package postgres

import (
	"log/slog"

	"farmdesk/config"
	"farmdesk/internal/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// NewSQLite opens a file-backed store for local development. It shares the
// GORM settings of the Postgres client so repositories behave the same.
func NewSQLite(path string, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", path)
	}

	return db, nil
}
