package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

// bcryptCost is deliberately above the library default; login is rare
// compared to token verification, so the extra hashing time is fine.
const bcryptCost = 12

// CreateUserInput is the DTO for creating a user.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// UpdateUserInput is the DTO for updating a user.
type UpdateUserInput struct {
	Email    *string          `json:"email"`
	FullName *string          `json:"full_name"`
	Role     *domain.UserRole `json:"role"`
	IsActive *bool            `json:"is_active"`
}

// UserService manages the adjusters, admins and members inside one
// tenant. All lookups are scoped by tenant ID; a user can never be
// addressed from another tenant.
type UserService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, tenantID, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, tenantID, userID uuid.UUID) error
}

type userService struct {
	users port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(users port.UserRepository) UserService {
	return &userService{users: users}
}

// Create registers an active user under the tenant. The role must be
// one of the known platform roles; anything else is rejected before
// the password is even hashed. Email uniqueness is per tenant and
// enforced by the repository as ErrDuplicateEmail.
func (s *userService) Create(ctx context.Context, tenantID uuid.UUID, input CreateUserInput) (*domain.User, error) {
	if !domain.ValidUserRoles[input.Role] {
		return nil, domain.ErrInsufficientRole
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		TenantID:     tenantID,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (s *userService) GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, tenantID, userID)
}

func (s *userService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	return s.users.ListByTenant(ctx, tenantID, offset, limit)
}

// Update applies a partial patch. A role change goes through the same
// whitelist as Create so a bad payload cannot mint an unknown role.
// Passwords are not updatable here.
func (s *userService) Update(ctx context.Context, tenantID, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && !domain.ValidUserRoles[*input.Role] {
		return nil, domain.ErrInsufficientRole
	}
	applyUserPatch(u, input)

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func applyUserPatch(u *domain.User, input UpdateUserInput) {
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.FullName != nil {
		u.FullName = *input.FullName
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
}

func (s *userService) Delete(ctx context.Context, tenantID, userID uuid.UUID) error {
	return s.users.Delete(ctx, tenantID, userID)
}
