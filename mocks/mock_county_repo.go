package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
)

// MockCountyRepo is a mock implementation of port.CountyRepository.
type MockCountyRepo struct {
	mock.Mock
}

func (m *MockCountyRepo) LoadAll(ctx context.Context) ([]domain.County, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.County), args.Error(1)
}

func (m *MockCountyRepo) UpsertBatch(ctx context.Context, counties []domain.County) error {
	args := m.Called(ctx, counties)
	return args.Error(0)
}
