package port

import (
	"context"

	"github.com/google/uuid"

	"claimguard/internal/domain"
)

// ClaimDocumentRepository defines the contract for claim document persistence.
type ClaimDocumentRepository interface {
	Create(ctx context.Context, doc *domain.ClaimDocument) error
	GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.ClaimDocument, error)
	GetByFileID(ctx context.Context, tenantID, fileID uuid.UUID) (*domain.ClaimDocument, error)
	ListByClaim(ctx context.Context, tenantID, claimID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error)
	UpdateAnalysis(ctx context.Context, doc *domain.ClaimDocument) error
	UpdateReviewStatus(ctx context.Context, doc *domain.ClaimDocument) error
	// ClaimQueued atomically claims up to limit queued documents whose retry
	// time has passed, marking them processing. Used by the analysis worker.
	ClaimQueued(ctx context.Context, limit int) ([]domain.ClaimDocument, error)
	Delete(ctx context.Context, tenantID, docID uuid.UUID) error
}
