package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

// CreatePropertyInput is the DTO for creating a property.
type CreatePropertyInput struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	County     string `json:"county" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	ParcelID   string `json:"parcel_id"`
	YearBuilt  int    `json:"year_built"`
}

// UpdatePropertyInput is the DTO for updating a property.
type UpdatePropertyInput struct {
	Address    *string `json:"address"`
	City       *string `json:"city"`
	County     *string `json:"county"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	ParcelID   *string `json:"parcel_id"`
	YearBuilt  *int    `json:"year_built"`
}

// PropertyService defines the insured-property management contract.
type PropertyService interface {
	Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreatePropertyInput) (*domain.Property, error)
	GetByID(ctx context.Context, tenantID, propertyID uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Property, int, error)
	Update(ctx context.Context, tenantID, propertyID uuid.UUID, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, tenantID, propertyID uuid.UUID, role domain.UserRole) error
}

type propertyService struct {
	repo       port.PropertyRepository
	countyRepo port.CountyRepository
}

// NewPropertyService creates a new PropertyService implementation.
func NewPropertyService(repo port.PropertyRepository, countyRepo port.CountyRepository) PropertyService {
	return &propertyService{repo: repo, countyRepo: countyRepo}
}

// normalizeCounty matches a free-text county name against the reference table
// and returns the canonical name. Unknown counties pass through unchanged.
func (s *propertyService) normalizeCounty(ctx context.Context, county string) string {
	if s.countyRepo == nil || county == "" {
		return county
	}
	counties, err := s.countyRepo.LoadAll(ctx)
	if err != nil {
		return county
	}
	for _, c := range counties {
		if strings.EqualFold(c.Name, county) {
			return c.Name
		}
	}
	return county
}

func (s *propertyService) Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreatePropertyInput) (*domain.Property, error) {
	property := &domain.Property{
		TenantID:   tenantID,
		Address:    input.Address,
		City:       input.City,
		County:     s.normalizeCounty(ctx, input.County),
		State:      input.State,
		PostalCode: input.PostalCode,
		ParcelID:   input.ParcelID,
		YearBuilt:  input.YearBuilt,
		CreatedBy:  createdBy,
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) GetByID(ctx context.Context, tenantID, propertyID uuid.UUID) (*domain.Property, error) {
	return s.repo.GetByID(ctx, tenantID, propertyID)
}

func (s *propertyService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Property, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *propertyService) Update(ctx context.Context, tenantID, propertyID uuid.UUID, input UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.repo.GetByID(ctx, tenantID, propertyID)
	if err != nil {
		return nil, err
	}

	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.City != nil {
		property.City = *input.City
	}
	if input.County != nil {
		property.County = s.normalizeCounty(ctx, *input.County)
	}
	if input.State != nil {
		property.State = *input.State
	}
	if input.PostalCode != nil {
		property.PostalCode = *input.PostalCode
	}
	if input.ParcelID != nil {
		property.ParcelID = *input.ParcelID
	}
	if input.YearBuilt != nil {
		property.YearBuilt = *input.YearBuilt
	}

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) Delete(ctx context.Context, tenantID, propertyID uuid.UUID, role domain.UserRole) error {
	if role != domain.RoleAdmin {
		return domain.ErrInsufficientRole
	}
	return s.repo.Delete(ctx, tenantID, propertyID)
}
