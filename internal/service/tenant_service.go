package service

import (
	"context"

	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

// CreateTenantInput is the DTO for creating a tenant.
type CreateTenantInput struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// UpdateTenantInput is the DTO for updating a tenant.
type UpdateTenantInput struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	IsActive *bool   `json:"is_active"`
}

// TenantService manages the adjuster firms and carriers that hold
// claims on the platform. Tenants are provisioned by platform admins
// only; every other resource hangs off a tenant ID.
type TenantService interface {
	Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tenantService struct {
	tenants port.TenantRepository
}

// NewTenantService creates a new TenantService implementation.
func NewTenantService(tenants port.TenantRepository) TenantService {
	return &tenantService{tenants: tenants}
}

// Create provisions an active tenant. Slug uniqueness is enforced by
// the repository, which surfaces ErrDuplicateTenantSlug.
func (s *tenantService) Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	t := &domain.Tenant{
		Name:     input.Name,
		Slug:     input.Slug,
		IsActive: true,
	}
	if err := s.tenants.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tenantService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return s.tenants.GetByID(ctx, id)
}

func (s *tenantService) List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error) {
	return s.tenants.List(ctx, offset, limit)
}

// Update applies a partial patch. Deactivating a tenant locks its
// users out at the next token check without deleting any claim data.
func (s *tenantService) Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error) {
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTenantPatch(t, input)
	if err := s.tenants.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func applyTenantPatch(t *domain.Tenant, input UpdateTenantInput) {
	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Slug != nil {
		t.Slug = *input.Slug
	}
	if input.IsActive != nil {
		t.IsActive = *input.IsActive
	}
}

func (s *tenantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tenants.Delete(ctx, id)
}
