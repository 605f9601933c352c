package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pdfsettings/internal/cache"
	"pdfsettings/internal/logging"
	"pdfsettings/internal/model"
	"pdfsettings/internal/repository"
	"pdfsettings/internal/storage"
)

var (
	ErrAppIDRequired = errors.New("app id is required")
	ErrNotFound      = errors.New("settings not found")
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var tracer = otel.Tracer("pdfsettings/internal/service")

// SettingsListResult is the service-level DTO for paginated settings.
type SettingsListResult struct {
	Items []model.AppSettings `json:"data"`
	Total int                 `json:"total"`
}

// SettingsService defines the use cases around per-app PDF component settings.
type SettingsService interface {
	// Get returns the stored settings of an app, or ErrNotFound.
	Get(ctx context.Context, appID string) (*model.AppSettings, error)

	// Put replaces the settings of an app and publishes the snapshot read by the PDF generator.
	Put(ctx context.Context, appID string, s model.ComponentSettings) (*model.AppSettings, error)

	// List returns settings records using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*SettingsListResult, error)

	// Delete removes the snapshot and the record of an app.
	Delete(ctx context.Context, appID string) error

	// Filter drops the app's excluded component IDs from ids, keeping order.
	Filter(ctx context.Context, appID string, ids []string) ([]string, error)

	// Snapshot streams the published settings object of an app.
	Snapshot(ctx context.Context, appID string) (io.ReadCloser, storage.ObjectInfo, error)

	// SnapshotURL returns a presigned download URL for the published settings object.
	SnapshotURL(ctx context.Context, appID string, expiry time.Duration) (string, error)
}

type settingsService struct {
	store storage.Storage
	repo  repository.SettingsRepository
	cache cache.SettingsCache
	now   func() time.Time
}

// NewSettingsService constructs a SettingsService. A nil cache disables caching.
func NewSettingsService(store storage.Storage, repo repository.SettingsRepository, c cache.SettingsCache) SettingsService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &settingsService{store: store, repo: repo, cache: c, now: time.Now}
}

func startSpan(ctx context.Context, name, appID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.String("app.id", appID)))
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *settingsService) Get(ctx context.Context, appID string) (res *model.AppSettings, err error) {
	ctx, span := startSpan(ctx, "SettingsService.Get", appID)
	defer func() { endSpan(span, err) }()

	if appID == "" {
		return nil, ErrAppIDRequired
	}

	if cached, ok, cerr := s.cache.Get(ctx, appID); cerr != nil {
		logging.Warn("Settings cache read failed", "app_id", appID, "error", cerr)
	} else if ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	res, err = s.repo.FindByApp(ctx, appID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if cerr := s.cache.Set(ctx, res); cerr != nil {
		logging.Warn("Settings cache write failed", "app_id", appID, "error", cerr)
	}
	return res, nil
}

func (s *settingsService) Put(ctx context.Context, appID string, settings model.ComponentSettings) (res *model.AppSettings, err error) {
	ctx, span := startSpan(ctx, "SettingsService.Put", appID)
	defer func() { endSpan(span, err) }()

	if appID == "" {
		return nil, ErrAppIDRequired
	}

	res, err = s.repo.Upsert(ctx, &model.AppSettings{
		AppID:     appID,
		Settings:  settings,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	// Write through so a concurrent Get cannot refill the cache with the row
	// it read before the upsert.
	if cerr := s.cache.Set(ctx, res); cerr != nil {
		logging.Warn("Settings cache write failed", "app_id", appID, "error", cerr)
	}

	// The record is the source of truth; a stale snapshot is repaired by the next Put.
	if perr := s.publish(ctx, res); perr != nil {
		logging.Warn("Settings snapshot publish failed", "app_id", appID, "error", perr)
	}
	return res, nil
}

func (s *settingsService) publish(ctx context.Context, rec *model.AppSettings) error {
	b, err := json.Marshal(rec.Settings)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.store.Put(ctx, storage.SnapshotKey(rec.AppID), bytes.NewReader(b), storage.PutObjectOptions{
		Size:        int64(len(b)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"app-id":     rec.AppID,
			"updated-at": rec.UpdatedAt.Format(time.RFC3339Nano),
		},
	})
	return err
}

func (s *settingsService) invalidate(ctx context.Context, appID string) {
	if err := s.cache.Invalidate(ctx, appID, s.now().UTC()); err != nil {
		logging.Warn("Settings cache invalidate failed", "app_id", appID, "error", err)
	}
}

// List returns paginated settings without exposing repository types.
func (s *settingsService) List(ctx context.Context, limit, offset int) (res *SettingsListResult, err error) {
	ctx, span := tracer.Start(ctx, "SettingsService.List")
	defer func() { endSpan(span, err) }()

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	page, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SettingsListResult{Items: page.Items, Total: page.Total}, nil
}

// Delete removes the snapshot first; if that fails the record is kept so the snapshot stays reachable.
func (s *settingsService) Delete(ctx context.Context, appID string) (err error) {
	ctx, span := startSpan(ctx, "SettingsService.Delete", appID)
	defer func() { endSpan(span, err) }()

	if appID == "" {
		return ErrAppIDRequired
	}
	if _, err = s.repo.FindByApp(ctx, appID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err = s.store.Delete(ctx, storage.SnapshotKey(appID)); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if err = s.repo.Delete(ctx, appID); err != nil {
		return err
	}
	s.invalidate(ctx, appID)
	return nil
}

func (s *settingsService) Filter(ctx context.Context, appID string, ids []string) (res []string, err error) {
	ctx, span := startSpan(ctx, "SettingsService.Filter", appID)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int("components.in", len(ids)))

	rec, err := s.Get(ctx, appID)
	if errors.Is(err, ErrNotFound) {
		return ids, nil
	}
	if err != nil {
		return nil, err
	}
	res = rec.Settings.Filter(ids)
	span.SetAttributes(attribute.Int("components.out", len(res)))
	return res, nil
}

func (s *settingsService) Snapshot(ctx context.Context, appID string) (rc io.ReadCloser, info storage.ObjectInfo, err error) {
	ctx, span := startSpan(ctx, "SettingsService.Snapshot", appID)
	defer func() { endSpan(span, err) }()

	if appID == "" {
		return nil, storage.ObjectInfo{}, ErrAppIDRequired
	}
	rc, info, err = s.store.Get(ctx, storage.SnapshotKey(appID))
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, storage.ObjectInfo{}, ErrNotFound
	}
	return rc, info, err
}

func (s *settingsService) SnapshotURL(ctx context.Context, appID string, expiry time.Duration) (u string, err error) {
	ctx, span := startSpan(ctx, "SettingsService.SnapshotURL", appID)
	defer func() { endSpan(span, err) }()

	if appID == "" {
		return "", ErrAppIDRequired
	}
	u, err = s.store.PresignGet(ctx, storage.SnapshotKey(appID), expiry)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return "", ErrNotFound
	}
	return u, err
}
