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

type claimRepo struct {
	db *sqlx.DB
}

// NewClaimRepo creates a new PostgreSQL-backed ClaimRepository.
func NewClaimRepo(db *sqlx.DB) port.ClaimRepository {
	return &claimRepo{db: db}
}

func (r *claimRepo) Create(ctx context.Context, claim *domain.Claim) error {
	claim.ID = uuid.New()
	now := time.Now().UTC()
	claim.CreatedAt = now
	claim.UpdatedAt = now

	query := `INSERT INTO claims
		(id, tenant_id, property_id, claim_number, peril, status, description,
		 incident_date, assigned_to, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		claim.ID, claim.TenantID, claim.PropertyID, claim.ClaimNumber, claim.Peril,
		claim.Status, claim.Description, claim.IncidentDate, claim.AssignedTo,
		claim.CreatedBy, claim.CreatedAt, claim.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "claim_number") {
			return domain.ErrDuplicateClaimNumber
		}
		return fmt.Errorf("claimRepo.Create: %w", err)
	}
	return nil
}

func (r *claimRepo) GetByID(ctx context.Context, tenantID, claimID uuid.UUID) (*domain.Claim, error) {
	var claim domain.Claim
	err := r.db.GetContext(ctx, &claim,
		"SELECT * FROM claims WHERE id = $1 AND tenant_id = $2", claimID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, fmt.Errorf("claimRepo.GetByID: %w", err)
	}
	return &claim, nil
}

func (r *claimRepo) GetByNumber(ctx context.Context, tenantID uuid.UUID, claimNumber string) (*domain.Claim, error) {
	var claim domain.Claim
	err := r.db.GetContext(ctx, &claim,
		"SELECT * FROM claims WHERE tenant_id = $1 AND claim_number = $2", tenantID, claimNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, fmt.Errorf("claimRepo.GetByNumber: %w", err)
	}
	return &claim, nil
}

func (r *claimRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filters domain.ClaimFilters, offset, limit int) ([]domain.Claim, int, error) {
	clause := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	argN := 2

	if filters.Status != "" {
		clause += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, filters.Status)
		argN++
	}
	if filters.Peril != "" {
		clause += fmt.Sprintf(" AND peril = $%d", argN)
		args = append(args, filters.Peril)
		argN++
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM claims "+clause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("claimRepo.ListByTenant count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM claims %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		clause, argN, argN+1)
	args = append(args, limit, offset)

	var claims []domain.Claim
	err = r.db.SelectContext(ctx, &claims, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("claimRepo.ListByTenant: %w", err)
	}
	return claims, total, nil
}

func (r *claimRepo) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Claim, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM claims WHERE tenant_id = $1 AND property_id = $2",
		tenantID, propertyID)
	if err != nil {
		return nil, 0, fmt.Errorf("claimRepo.ListByProperty count: %w", err)
	}

	var claims []domain.Claim
	err = r.db.SelectContext(ctx, &claims,
		`SELECT * FROM claims WHERE tenant_id = $1 AND property_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		tenantID, propertyID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("claimRepo.ListByProperty: %w", err)
	}
	return claims, total, nil
}

func (r *claimRepo) Update(ctx context.Context, claim *domain.Claim) error {
	claim.UpdatedAt = time.Now().UTC()
	query := `UPDATE claims SET
		peril = $1, status = $2, description = $3, incident_date = $4,
		assigned_to = $5, updated_at = $6
		WHERE id = $7 AND tenant_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		claim.Peril, claim.Status, claim.Description, claim.IncidentDate,
		claim.AssignedTo, claim.UpdatedAt, claim.ID, claim.TenantID)
	if err != nil {
		return fmt.Errorf("claimRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrClaimNotFound
	}
	return nil
}

func (r *claimRepo) Delete(ctx context.Context, tenantID, claimID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM claims WHERE id = $1 AND tenant_id = $2", claimID, tenantID)
	if err != nil {
		return fmt.Errorf("claimRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrClaimNotFound
	}
	return nil
}
