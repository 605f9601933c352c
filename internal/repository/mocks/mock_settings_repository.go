package mocks

import (
	"context"

	"pdfsettings/internal/model"
	"pdfsettings/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, s *model.AppSettings) (*model.AppSettings, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppSettings), args.Error(1)
}

func (m *MockSettingsRepository) FindByApp(ctx context.Context, appID string) (*model.AppSettings, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppSettings), args.Error(1)
}

func (m *MockSettingsRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.AppSettings], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.AppSettings]), args.Error(1)
}

func (m *MockSettingsRepository) Delete(ctx context.Context, appID string) error {
	args := m.Called(ctx, appID)
	return args.Error(0)
}
