package cache

import (
	"context"
	"time"

	"pdfsettings/internal/model"
)

// SettingsCache is a read-through cache of settings records keyed by app ID.
// Implementations must be safe for concurrent use.
type SettingsCache interface {
	// Get returns the cached record. A miss is (nil, false, nil).
	Get(ctx context.Context, appID string) (*model.AppSettings, bool, error)
	// Set stores the record under s.AppID unless the cached entry, record or
	// tombstone, is newer than s.UpdatedAt.
	Set(ctx context.Context, s *model.AppSettings) error
	// Invalidate replaces the entry with a tombstone versioned at. Records
	// older than at are refused by Set until the tombstone expires.
	Invalidate(ctx context.Context, appID string, at time.Time) error
}

type noop struct{}

// NewNoop returns a cache that never stores anything.
func NewNoop() SettingsCache { return noop{} }

func (noop) Get(context.Context, string) (*model.AppSettings, bool, error) { return nil, false, nil }
func (noop) Set(context.Context, *model.AppSettings) error { return nil }
func (noop) Invalidate(context.Context, string, time.Time) error { return nil }
