package repository

import (
	"context"

	"pdfsettings/internal/model"
)

// SettingsRepository defines persistence of per-app PDF settings using SQL queries only.
// No business logic here; strictly persistence operations.
type SettingsRepository interface {
	// Upsert inserts or replaces the record for s.AppID and returns the stored row.
	Upsert(ctx context.Context, s *model.AppSettings) (*model.AppSettings, error)

	// FindByApp returns the record of one app. A missing row yields sql.ErrNoRows.
	FindByApp(ctx context.Context, appID string) (*model.AppSettings, error)

	// List returns a page of records ordered by app ID and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.AppSettings], error)

	// Delete removes the record of one app. It returns nil if the row did not exist.
	Delete(ctx context.Context, appID string) error
}
