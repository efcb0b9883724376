package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

type claimDocumentRepo struct {
	db *sqlx.DB
}

// NewClaimDocumentRepo creates a new PostgreSQL-backed ClaimDocumentRepository.
func NewClaimDocumentRepo(db *sqlx.DB) port.ClaimDocumentRepository {
	return &claimDocumentRepo{db: db}
}

func (r *claimDocumentRepo) Create(ctx context.Context, doc *domain.ClaimDocument) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	query := `INSERT INTO claim_documents (
		id, tenant_id, claim_id, file_id, name, document_type,
		findings, confidence, divergences, providers,
		analysis_status, analysis_error, analysis_attempts, retry_after, analyzed_at,
		review_status, reviewed_by, reviewed_at, reviewer_notes,
		created_by, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10,
		$11, $12, $13, $14, $15,
		$16, $17, $18, $19,
		$20, $21, $22
	)`

	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.TenantID, doc.ClaimID, doc.FileID, doc.Name, doc.DocumentType,
		doc.Findings, doc.Confidence, doc.Divergences, doc.Providers,
		doc.AnalysisStatus, doc.AnalysisError, doc.AnalysisAttempts, doc.RetryAfter, doc.AnalyzedAt,
		doc.ReviewStatus, doc.ReviewedBy, doc.ReviewedAt, doc.ReviewerNotes,
		doc.CreatedBy, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "file_id") {
			return domain.ErrDocumentAlreadyExists
		}
		return fmt.Errorf("claimDocumentRepo.Create: %w", err)
	}
	return nil
}

func (r *claimDocumentRepo) GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.ClaimDocument, error) {
	var doc domain.ClaimDocument
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM claim_documents WHERE id = $1 AND tenant_id = $2", docID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("claimDocumentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *claimDocumentRepo) GetByFileID(ctx context.Context, tenantID, fileID uuid.UUID) (*domain.ClaimDocument, error) {
	var doc domain.ClaimDocument
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM claim_documents WHERE file_id = $1 AND tenant_id = $2", fileID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("claimDocumentRepo.GetByFileID: %w", err)
	}
	return &doc, nil
}

func (r *claimDocumentRepo) ListByClaim(ctx context.Context, tenantID, claimID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM claim_documents WHERE tenant_id = $1 AND claim_id = $2",
		tenantID, claimID)
	if err != nil {
		return nil, 0, fmt.Errorf("claimDocumentRepo.ListByClaim count: %w", err)
	}

	var docs []domain.ClaimDocument
	err = r.db.SelectContext(ctx, &docs,
		`SELECT * FROM claim_documents WHERE tenant_id = $1 AND claim_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		tenantID, claimID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("claimDocumentRepo.ListByClaim: %w", err)
	}
	return docs, total, nil
}

func (r *claimDocumentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM claim_documents WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("claimDocumentRepo.ListByTenant count: %w", err)
	}

	var docs []domain.ClaimDocument
	err = r.db.SelectContext(ctx, &docs,
		`SELECT * FROM claim_documents WHERE tenant_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("claimDocumentRepo.ListByTenant: %w", err)
	}
	return docs, total, nil
}

func (r *claimDocumentRepo) UpdateAnalysis(ctx context.Context, doc *domain.ClaimDocument) error {
	doc.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE claim_documents SET
			findings = $1, confidence = $2, divergences = $3, providers = $4,
			analysis_status = $5, analysis_error = $6, analysis_attempts = $7,
			retry_after = $8, analyzed_at = $9, updated_at = $10
		 WHERE id = $11 AND tenant_id = $12`,
		doc.Findings, doc.Confidence, doc.Divergences, doc.Providers,
		doc.AnalysisStatus, doc.AnalysisError, doc.AnalysisAttempts,
		doc.RetryAfter, doc.AnalyzedAt, doc.UpdatedAt,
		doc.ID, doc.TenantID)
	if err != nil {
		return fmt.Errorf("claimDocumentRepo.UpdateAnalysis: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *claimDocumentRepo) UpdateReviewStatus(ctx context.Context, doc *domain.ClaimDocument) error {
	doc.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE claim_documents SET
			review_status = $1, reviewed_by = $2, reviewed_at = $3,
			reviewer_notes = $4, updated_at = $5
		 WHERE id = $6 AND tenant_id = $7`,
		doc.ReviewStatus, doc.ReviewedBy, doc.ReviewedAt,
		doc.ReviewerNotes, doc.UpdatedAt,
		doc.ID, doc.TenantID)
	if err != nil {
		return fmt.Errorf("claimDocumentRepo.UpdateReviewStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// ClaimQueued atomically transitions up to limit queued documents to
// processing and returns them. SKIP LOCKED keeps concurrent workers from
// claiming the same rows.
func (r *claimDocumentRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.ClaimDocument, error) {
	var docs []domain.ClaimDocument
	err := r.db.SelectContext(ctx, &docs,
		`UPDATE claim_documents SET
			analysis_status = $1, updated_at = NOW()
		 WHERE id IN (
			SELECT id FROM claim_documents
			WHERE analysis_status = $2
			  AND (retry_after IS NULL OR retry_after <= NOW())
			ORDER BY created_at
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		 )
		 RETURNING *`,
		domain.AnalysisStatusProcessing, domain.AnalysisStatusQueued, limit)
	if err != nil {
		return nil, fmt.Errorf("claimDocumentRepo.ClaimQueued: %w", err)
	}
	return docs, nil
}

func (r *claimDocumentRepo) Delete(ctx context.Context, tenantID, docID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM claim_documents WHERE id = $1 AND tenant_id = $2",
		docID, tenantID)
	if err != nil {
		return fmt.Errorf("claimDocumentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
