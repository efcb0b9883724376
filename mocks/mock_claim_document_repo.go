package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
)

// MockClaimDocumentRepo is a mock implementation of port.ClaimDocumentRepository.
type MockClaimDocumentRepo struct {
	mock.Mock
}

func (m *MockClaimDocumentRepo) Create(ctx context.Context, doc *domain.ClaimDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockClaimDocumentRepo) GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, tenantID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimDocument), args.Error(1)
}

func (m *MockClaimDocumentRepo) GetByFileID(ctx context.Context, tenantID, fileID uuid.UUID) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, tenantID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimDocument), args.Error(1)
}

func (m *MockClaimDocumentRepo) ListByClaim(ctx context.Context, tenantID, claimID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error) {
	args := m.Called(ctx, tenantID, claimID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClaimDocument), args.Int(1), args.Error(2)
}

func (m *MockClaimDocumentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClaimDocument), args.Int(1), args.Error(2)
}

func (m *MockClaimDocumentRepo) UpdateAnalysis(ctx context.Context, doc *domain.ClaimDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockClaimDocumentRepo) UpdateReviewStatus(ctx context.Context, doc *domain.ClaimDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockClaimDocumentRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.ClaimDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimDocument), args.Error(1)
}

func (m *MockClaimDocumentRepo) Delete(ctx context.Context, tenantID, docID uuid.UUID) error {
	args := m.Called(ctx, tenantID, docID)
	return args.Error(0)
}
