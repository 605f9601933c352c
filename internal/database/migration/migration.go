package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pdfsettings/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_pdf_component_settings",
		SQL: `CREATE TABLE IF NOT EXISTS pdf_component_settings (
  app_id           TEXT        PRIMARY KEY,
  exclude_from_pdf JSONB       NULL CHECK (exclude_from_pdf IS NULL OR jsonb_typeof(exclude_from_pdf) = 'array'),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_pdf_component_settings_updated_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pdf_component_settings_updated_at ON pdf_component_settings (updated_at);`,
	},
}

// EnsureMigrated creates the settings schema when the sentinel table is missing.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()
	logging.Info("db_migration_check", "component", "database", "status", "starting", "db_host", dbHost)

	var exists bool
	query := "SELECT to_regclass('public.pdf_component_settings') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logging.Error("db_migration_failed",
			"component", "database",
			"error", err,
			"db_host", dbHost,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logging.Info("db_migration_skip",
			"component", "database",
			"db_host", dbHost,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logging.Error("db_migration_failed",
				"component", "database",
				"migration_step", step.Name,
				"error", err,
				"db_host", dbHost,
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logging.Info("db_migration_step",
			"component", "database",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	logging.Info("db_migration_success",
		"component", "database",
		"db_host", dbHost,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
