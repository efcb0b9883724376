package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
	"claimguard/internal/service"
)

// MockDocumentService stands in for service.DocumentService in the
// document handler tests.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateAndAnalyze(ctx context.Context, input *service.CreateDocumentInput) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, input)
	return get[*domain.ClaimDocument](args, 0), args.Error(1)
}

func (m *MockDocumentService) GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, tenantID, docID)
	return get[*domain.ClaimDocument](args, 0), args.Error(1)
}

func (m *MockDocumentService) GetByFileID(ctx context.Context, tenantID, fileID uuid.UUID) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, tenantID, fileID)
	return get[*domain.ClaimDocument](args, 0), args.Error(1)
}

func (m *MockDocumentService) ListByClaim(ctx context.Context, tenantID, claimID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error) {
	args := m.Called(ctx, tenantID, claimID, offset, limit)
	return get[[]domain.ClaimDocument](args, 0), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	return get[[]domain.ClaimDocument](args, 0), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) UpdateReview(ctx context.Context, input *service.UpdateReviewInput) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, input)
	return get[*domain.ClaimDocument](args, 0), args.Error(1)
}

func (m *MockDocumentService) EditFindings(ctx context.Context, input *service.EditFindingsInput) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, input)
	return get[*domain.ClaimDocument](args, 0), args.Error(1)
}

func (m *MockDocumentService) RetryAnalysis(ctx context.Context, tenantID, docID, userID uuid.UUID, role domain.UserRole) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, tenantID, docID, userID, role)
	return get[*domain.ClaimDocument](args, 0), args.Error(1)
}

func (m *MockDocumentService) AnalyzeNow(ctx context.Context, tenantID, docID uuid.UUID, role domain.UserRole) (*domain.ClaimDocument, error) {
	args := m.Called(ctx, tenantID, docID, role)
	return get[*domain.ClaimDocument](args, 0), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, tenantID, docID uuid.UUID, role domain.UserRole) error {
	return m.Called(ctx, tenantID, docID, role).Error(0)
}

func (m *MockDocumentService) AnalyzeDocument(ctx context.Context, doc *domain.ClaimDocument, maxAttempts int) {
	m.Called(ctx, doc, maxAttempts)
}
