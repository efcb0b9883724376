package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
	"claimguard/internal/service"
	"claimguard/mocks"
)

func TestTenantService_Create(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name: "Gulf Coast Adjusters",
		Slug: "gulf-coast",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Gulf Coast Adjusters", tenant.Name)
	assert.Equal(t, "gulf-coast", tenant.Slug)
	assert.True(t, tenant.IsActive)
	repo.AssertExpectations(t)
}

func TestTenantService_Create_DuplicateSlug(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).
		Return(domain.ErrDuplicateTenantSlug)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name: "Gulf Coast Adjusters",
		Slug: "gulf-coast",
	})

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domain.ErrDuplicateTenantSlug)
}

func TestTenantService_Update_Deactivate(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Tenant{ID: id, Name: "Old Name", Slug: "old", IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	inactive := false
	name := "New Name"
	tenant, err := svc.Update(context.Background(), id, service.UpdateTenantInput{
		Name:     &name,
		IsActive: &inactive,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", tenant.Name)
	assert.Equal(t, "old", tenant.Slug)
	assert.False(t, tenant.IsActive)
}

func TestTenantService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	tenant, err := svc.Update(context.Background(), id, service.UpdateTenantInput{})

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update")
}
