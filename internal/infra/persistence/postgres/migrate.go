package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"time"

	"bumpr/internal/errors"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type schemaMigration struct {
	Version   string    `gorm:"primaryKey;type:varchar(255)"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrate applies every embedded migration that has not been recorded in schema_migrations.
// Each file runs in its own transaction together with its bookkeeping row.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	return migrate(ctx, db, logger, migrationFS)
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger, fsys fs.FS) error {
	db = db.WithContext(ctx)
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL
	)`).Error; err != nil {
		return errors.Wrap(err, "failed to create schema_migrations")
	}

	files, err := migrationFiles(fsys)
	if err != nil {
		return err
	}

	var applied []string
	if err := db.Model(&schemaMigration{}).Pluck("version", &applied).Error; err != nil {
		return errors.Wrap(err, "failed to list applied migrations")
	}
	done := make(map[string]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}

	for _, name := range files {
		version := strings.TrimSuffix(name, ".sql")
		if _, ok := done[version]; ok {
			continue
		}

		body, err := fs.ReadFile(fsys, "migrations/"+name)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", name)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(body)).Error; err != nil {
				return err
			}

			return tx.Create(&schemaMigration{Version: version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return errors.Wrapf(err, "failed to apply migration %s", name)
		}

		if logger != nil {
			logger.InfoContext(ctx, "Applied migration", slog.String("version", version))
		}
	}

	return nil
}

func migrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migrations directory")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}
