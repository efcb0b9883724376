package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

type propertyRepo struct {
	db *sqlx.DB
}

// NewPropertyRepo creates a new PostgreSQL-backed PropertyRepository.
func NewPropertyRepo(db *sqlx.DB) port.PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, property *domain.Property) error {
	property.ID = uuid.New()
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	query := `INSERT INTO properties
		(id, tenant_id, address, city, county, state, postal_code, parcel_id, year_built,
		 created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		property.ID, property.TenantID, property.Address, property.City, property.County,
		property.State, property.PostalCode, property.ParcelID, property.YearBuilt,
		property.CreatedBy, property.CreatedAt, property.UpdatedAt)
	if err != nil {
		return fmt.Errorf("propertyRepo.Create: %w", err)
	}
	return nil
}

func (r *propertyRepo) GetByID(ctx context.Context, tenantID, propertyID uuid.UUID) (*domain.Property, error) {
	var property domain.Property
	err := r.db.GetContext(ctx, &property,
		"SELECT * FROM properties WHERE id = $1 AND tenant_id = $2", propertyID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("propertyRepo.GetByID: %w", err)
	}
	return &property, nil
}

func (r *propertyRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Property, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM properties WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("propertyRepo.ListByTenant count: %w", err)
	}

	var properties []domain.Property
	err = r.db.SelectContext(ctx, &properties,
		"SELECT * FROM properties WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("propertyRepo.ListByTenant: %w", err)
	}
	return properties, total, nil
}

func (r *propertyRepo) Update(ctx context.Context, property *domain.Property) error {
	property.UpdatedAt = time.Now().UTC()
	query := `UPDATE properties SET
		address = $1, city = $2, county = $3, state = $4, postal_code = $5,
		parcel_id = $6, year_built = $7, updated_at = $8
		WHERE id = $9 AND tenant_id = $10`
	result, err := r.db.ExecContext(ctx, query,
		property.Address, property.City, property.County, property.State, property.PostalCode,
		property.ParcelID, property.YearBuilt, property.UpdatedAt,
		property.ID, property.TenantID)
	if err != nil {
		return fmt.Errorf("propertyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepo) Delete(ctx context.Context, tenantID, propertyID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM properties WHERE id = $1 AND tenant_id = $2", propertyID, tenantID)
	if err != nil {
		return fmt.Errorf("propertyRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}
