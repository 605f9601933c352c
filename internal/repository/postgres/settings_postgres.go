package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pdfsettings/internal/model"
	"pdfsettings/internal/repository"
)

// SettingsPostgres is a PostgreSQL implementation of repository.SettingsRepository.
// The exclusion list lives in a JSONB column: SQL NULL for an unset list, '[]' for an empty one.
type SettingsPostgres struct {
	db *sql.DB
}

// NewSettingsPostgres creates a new SettingsPostgres repository.
func NewSettingsPostgres(db *sql.DB) *SettingsPostgres {
	return &SettingsPostgres{db: db}
}

var _ repository.SettingsRepository = (*SettingsPostgres)(nil)

// IsNoRowsError reports whether err means the requested row does not exist.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func encodeExcludeList(ids []string) (any, error) {
	if ids == nil {
		return nil, nil
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode exclude_from_pdf: %w", err)
	}
	return string(b), nil
}

func scanSettings(row rowScanner) (*model.AppSettings, error) {
	var (
		out     model.AppSettings
		exclude sql.NullString
	)
	if err := row.Scan(&out.AppID, &exclude, &out.UpdatedAt); err != nil {
		return nil, err
	}
	if exclude.Valid {
		ids := []string{}
		if err := json.Unmarshal([]byte(exclude.String), &ids); err != nil {
			return nil, fmt.Errorf("decode exclude_from_pdf: %w", err)
		}
		// json null inside the column still means "unset"
		out.Settings.SetExcludeFromPdf(ids)
	}
	return &out, nil
}

// Upsert writes the record and returns the row as stored.
func (r *SettingsPostgres) Upsert(ctx context.Context, s *model.AppSettings) (*model.AppSettings, error) {
	const q = `
		INSERT INTO pdf_component_settings (app_id, exclude_from_pdf, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (app_id) DO UPDATE
		SET exclude_from_pdf = EXCLUDED.exclude_from_pdf, updated_at = EXCLUDED.updated_at
		RETURNING app_id, exclude_from_pdf, updated_at
	`
	exclude, err := encodeExcludeList(s.Settings.GetExcludeFromPdf())
	if err != nil {
		return nil, err
	}
	return scanSettings(r.db.QueryRowContext(ctx, q, s.AppID, exclude, s.UpdatedAt))
}

// FindByApp fetches the record of a single app.
func (r *SettingsPostgres) FindByApp(ctx context.Context, appID string) (*model.AppSettings, error) {
	const q = `
		SELECT app_id, exclude_from_pdf, updated_at
		FROM pdf_component_settings
		WHERE app_id = $1
	`
	return scanSettings(r.db.QueryRowContext(ctx, q, appID))
}

// List returns records using LIMIT/OFFSET pagination and a total count.
func (r *SettingsPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.AppSettings], error) {
	const qCount = `SELECT COUNT(*) FROM pdf_component_settings`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT app_id, exclude_from_pdf, updated_at
		FROM pdf_component_settings
		ORDER BY app_id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AppSettings, 0)
	for rows.Next() {
		s, err := scanSettings(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.AppSettings]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes the record of one app. A missing row is not an error.
func (r *SettingsPostgres) Delete(ctx context.Context, appID string) error {
	const q = `DELETE FROM pdf_component_settings WHERE app_id = $1`
	_, err := r.db.ExecContext(ctx, q, appID)
	return err
}
