package mocks

import (
	"context"
	"io"
	"time"

	"pdfsettings/internal/model"
	"pdfsettings/internal/service"
	"pdfsettings/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context, appID string) (*model.AppSettings, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Put(ctx context.Context, appID string, s model.ComponentSettings) (*model.AppSettings, error) {
	args := m.Called(ctx, appID, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppSettings), args.Error(1)
}

func (m *MockSettingsService) List(ctx context.Context, limit, offset int) (*service.SettingsListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SettingsListResult), args.Error(1)
}

func (m *MockSettingsService) Delete(ctx context.Context, appID string) error {
	args := m.Called(ctx, appID)
	return args.Error(0)
}

func (m *MockSettingsService) Filter(ctx context.Context, appID string, ids []string) ([]string, error) {
	args := m.Called(ctx, appID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSettingsService) Snapshot(ctx context.Context, appID string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockSettingsService) SnapshotURL(ctx context.Context, appID string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, appID, expiry)
	return args.String(0), args.Error(1)
}
