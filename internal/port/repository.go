package port

import (
	"context"

	"github.com/google/uuid"

	"claimguard/internal/domain"
)

// TenantRepository defines the contract for tenant persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for user persistence.
// All query methods include tenantID to enforce tenant isolation at the data layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, tenantID, userID uuid.UUID) error
}

// FileMetaRepository defines the contract for file metadata persistence.
// All query methods include tenantID for tenant isolation.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, tenantID, fileID uuid.UUID) (*domain.FileMeta, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.FileMeta, int, error)
	ListByUploader(ctx context.Context, tenantID, userID uuid.UUID, offset, limit int) ([]domain.FileMeta, int, error)
	UpdateStatus(ctx context.Context, tenantID, fileID uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, tenantID, fileID uuid.UUID) error
}

// PropertyRepository defines the contract for insured-property persistence.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, tenantID, propertyID uuid.UUID) (*domain.Property, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Property, int, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, tenantID, propertyID uuid.UUID) error
}

// ClaimRepository defines the contract for claim persistence.
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) error
	GetByID(ctx context.Context, tenantID, claimID uuid.UUID) (*domain.Claim, error)
	GetByNumber(ctx context.Context, tenantID uuid.UUID, claimNumber string) (*domain.Claim, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, filters domain.ClaimFilters, offset, limit int) ([]domain.Claim, int, error)
	ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Claim, int, error)
	Update(ctx context.Context, claim *domain.Claim) error
	Delete(ctx context.Context, tenantID, claimID uuid.UUID) error
}

// CountyRepository provides access to the Florida county reference table.
type CountyRepository interface {
	LoadAll(ctx context.Context) ([]domain.County, error)
	UpsertBatch(ctx context.Context, counties []domain.County) error
}
