package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
	"claimguard/internal/service"
)

// MockClaimService is a mock implementation of service.ClaimService.
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) Create(ctx context.Context, tenantID, createdBy uuid.UUID, input service.CreateClaimInput) (*domain.Claim, error) {
	args := m.Called(ctx, tenantID, createdBy, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) GetByID(ctx context.Context, tenantID, claimID uuid.UUID) (*domain.Claim, error) {
	args := m.Called(ctx, tenantID, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) List(ctx context.Context, tenantID uuid.UUID, filters domain.ClaimFilters, offset, limit int) ([]domain.Claim, int, error) {
	args := m.Called(ctx, tenantID, filters, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Claim), args.Int(1), args.Error(2)
}

func (m *MockClaimService) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Claim, int, error) {
	args := m.Called(ctx, tenantID, propertyID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Claim), args.Int(1), args.Error(2)
}

func (m *MockClaimService) Update(ctx context.Context, tenantID, claimID uuid.UUID, input service.UpdateClaimInput) (*domain.Claim, error) {
	args := m.Called(ctx, tenantID, claimID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) ChangeStatus(ctx context.Context, tenantID, claimID, actorID uuid.UUID, role domain.UserRole, to domain.ClaimStatus) (*domain.Claim, error) {
	args := m.Called(ctx, tenantID, claimID, actorID, role, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) Delete(ctx context.Context, tenantID, claimID uuid.UUID, role domain.UserRole) error {
	args := m.Called(ctx, tenantID, claimID, role)
	return args.Error(0)
}
