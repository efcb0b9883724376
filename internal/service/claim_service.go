package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

// CreateClaimInput is the DTO for filing a claim.
type CreateClaimInput struct {
	PropertyID   uuid.UUID     `json:"property_id" binding:"required"`
	ClaimNumber  string        `json:"claim_number" binding:"required"`
	Peril        domain.Peril  `json:"peril" binding:"required"`
	Description  string        `json:"description"`
	IncidentDate *time.Time    `json:"incident_date"`
}

// UpdateClaimInput is the DTO for updating claim details.
type UpdateClaimInput struct {
	Peril        *domain.Peril `json:"peril"`
	Description  *string       `json:"description"`
	IncidentDate *time.Time    `json:"incident_date"`
	AssignedTo   *uuid.UUID    `json:"assigned_to"`
}

// ClaimService defines the claim management contract.
type ClaimService interface {
	Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateClaimInput) (*domain.Claim, error)
	GetByID(ctx context.Context, tenantID, claimID uuid.UUID) (*domain.Claim, error)
	List(ctx context.Context, tenantID uuid.UUID, filters domain.ClaimFilters, offset, limit int) ([]domain.Claim, int, error)
	ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Claim, int, error)
	Update(ctx context.Context, tenantID, claimID uuid.UUID, input UpdateClaimInput) (*domain.Claim, error)
	ChangeStatus(ctx context.Context, tenantID, claimID, actorID uuid.UUID, role domain.UserRole, to domain.ClaimStatus) (*domain.Claim, error)
	Delete(ctx context.Context, tenantID, claimID uuid.UUID, role domain.UserRole) error
}

type claimService struct {
	repo         port.ClaimRepository
	propertyRepo port.PropertyRepository
	userRepo     port.UserRepository
	emails       port.EmailSender
}

// NewClaimService creates a new ClaimService implementation.
func NewClaimService(
	repo port.ClaimRepository,
	propertyRepo port.PropertyRepository,
	userRepo port.UserRepository,
	emails port.EmailSender,
) ClaimService {
	return &claimService{
		repo:         repo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		emails:       emails,
	}
}

func (s *claimService) Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateClaimInput) (*domain.Claim, error) {
	if !domain.ValidPerils[input.Peril] {
		return nil, domain.ErrInvalidPeril
	}

	// Verify the property exists in this tenant
	if _, err := s.propertyRepo.GetByID(ctx, tenantID, input.PropertyID); err != nil {
		return nil, fmt.Errorf("looking up property: %w", err)
	}

	claim := &domain.Claim{
		TenantID:     tenantID,
		PropertyID:   input.PropertyID,
		ClaimNumber:  input.ClaimNumber,
		Peril:        input.Peril,
		Status:       domain.ClaimStatusDraft,
		Description:  input.Description,
		IncidentDate: input.IncidentDate,
		CreatedBy:    createdBy,
	}
	if err := s.repo.Create(ctx, claim); err != nil {
		return nil, err
	}

	log.Printf("claimService.Create: claim %s (%s) filed for property %s", claim.ID, claim.ClaimNumber, input.PropertyID)
	return claim, nil
}

func (s *claimService) GetByID(ctx context.Context, tenantID, claimID uuid.UUID) (*domain.Claim, error) {
	return s.repo.GetByID(ctx, tenantID, claimID)
}

func (s *claimService) List(ctx context.Context, tenantID uuid.UUID, filters domain.ClaimFilters, offset, limit int) ([]domain.Claim, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, filters, offset, limit)
}

func (s *claimService) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Claim, int, error) {
	return s.repo.ListByProperty(ctx, tenantID, propertyID, offset, limit)
}

func (s *claimService) Update(ctx context.Context, tenantID, claimID uuid.UUID, input UpdateClaimInput) (*domain.Claim, error) {
	claim, err := s.repo.GetByID(ctx, tenantID, claimID)
	if err != nil {
		return nil, err
	}

	if input.Peril != nil {
		if !domain.ValidPerils[*input.Peril] {
			return nil, domain.ErrInvalidPeril
		}
		claim.Peril = *input.Peril
	}
	if input.Description != nil {
		claim.Description = *input.Description
	}
	if input.IncidentDate != nil {
		claim.IncidentDate = input.IncidentDate
	}
	if input.AssignedTo != nil {
		// Verify assignee exists in tenant
		if _, err := s.userRepo.GetByID(ctx, tenantID, *input.AssignedTo); err != nil {
			return nil, fmt.Errorf("assignee not found: %w", err)
		}
		claim.AssignedTo = input.AssignedTo
	}

	if err := s.repo.Update(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// ChangeStatus moves a claim through its lifecycle. Approval and denial
// require the adjuster or admin role; the creator is notified by email on
// terminal decisions.
func (s *claimService) ChangeStatus(ctx context.Context, tenantID, claimID, actorID uuid.UUID, role domain.UserRole, to domain.ClaimStatus) (*domain.Claim, error) {
	claim, err := s.repo.GetByID(ctx, tenantID, claimID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(claim.Status, to) {
		return nil, domain.ErrInvalidStatusChange
	}
	if (to == domain.ClaimStatusApproved || to == domain.ClaimStatusDenied) && !canReview(role) {
		return nil, domain.ErrInsufficientRole
	}

	from := claim.Status
	claim.Status = to
	if err := s.repo.Update(ctx, claim); err != nil {
		return nil, err
	}

	log.Printf("claimService.ChangeStatus: claim %s moved %s -> %s by %s", claim.ID, from, to, actorID)
	s.notifyStatusChange(ctx, claim)

	return claim, nil
}

// notifyStatusChange emails the claim creator. Failures are logged but never
// block the status change.
func (s *claimService) notifyStatusChange(ctx context.Context, claim *domain.Claim) {
	if s.emails == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, claim.TenantID, claim.CreatedBy)
	if err != nil {
		log.Printf("claimService.notifyStatusChange: failed to load user %s: %v", claim.CreatedBy, err)
		return
	}
	if err := s.emails.SendClaimStatusEmail(ctx, user.Email, user.FullName, claim.ClaimNumber, string(claim.Status)); err != nil {
		log.Printf("claimService.notifyStatusChange: failed to send email to %s: %v", user.Email, err)
	}
}

func (s *claimService) Delete(ctx context.Context, tenantID, claimID uuid.UUID, role domain.UserRole) error {
	if role != domain.RoleAdmin {
		return domain.ErrInsufficientRole
	}
	return s.repo.Delete(ctx, tenantID, claimID)
}
