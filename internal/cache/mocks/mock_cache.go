package mocks

import (
	"context"
	"time"

	"pdfsettings/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockSettingsCache struct {
	mock.Mock
}

func (m *MockSettingsCache) Get(ctx context.Context, appID string) (*model.AppSettings, bool, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.AppSettings), args.Bool(1), args.Error(2)
}

func (m *MockSettingsCache) Set(ctx context.Context, s *model.AppSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsCache) Invalidate(ctx context.Context, appID string, at time.Time) error {
	args := m.Called(ctx, appID, at)
	return args.Error(0)
}
