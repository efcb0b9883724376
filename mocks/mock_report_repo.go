package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) ClaimsRegister(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ClaimRegisterRow, int, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClaimRegisterRow), args.Int(1), args.Error(2)
}

func (m *MockReportRepo) ClaimsByStatus(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.StatusSummaryRow, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusSummaryRow), args.Error(1)
}

func (m *MockReportRepo) ClaimsByPeril(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PerilSummaryRow, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PerilSummaryRow), args.Error(1)
}

func (m *MockReportRepo) AnalysisOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) (*domain.AnalysisOverviewRow, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisOverviewRow), args.Error(1)
}
