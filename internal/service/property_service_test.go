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

func floridaCounties() []domain.County {
	return []domain.County{
		{FIPSCode: "12071", Name: "Lee", Region: "Southwest", Coastal: true, WindBorne: true},
		{FIPSCode: "12086", Name: "Miami-Dade", Region: "Southeast", Coastal: true, WindBorne: true},
		{FIPSCode: "12073", Name: "Leon", Region: "Panhandle"},
	}
}

func TestPropertyService_Create_NormalizesCounty(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	countyRepo := new(mocks.MockCountyRepo)
	svc := service.NewPropertyService(repo, countyRepo)

	countyRepo.On("LoadAll", mock.Anything).Return(floridaCounties(), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	property, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreatePropertyInput{
		Address:    "1200 Estero Blvd",
		City:       "Fort Myers Beach",
		County:     "LEE",
		State:      "FL",
		PostalCode: "33931",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Lee", property.County)
	repo.AssertExpectations(t)
}

func TestPropertyService_Create_UnknownCountyPassesThrough(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	countyRepo := new(mocks.MockCountyRepo)
	svc := service.NewPropertyService(repo, countyRepo)

	countyRepo.On("LoadAll", mock.Anything).Return(floridaCounties(), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	property, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreatePropertyInput{
		Address:    "42 Main St",
		City:       "Somewhere",
		County:     "Atlantis",
		State:      "FL",
		PostalCode: "00000",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Atlantis", property.County)
}

func TestPropertyService_Create_CountyLookupFailureIsNonFatal(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	countyRepo := new(mocks.MockCountyRepo)
	svc := service.NewPropertyService(repo, countyRepo)

	countyRepo.On("LoadAll", mock.Anything).Return(nil, assert.AnError)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	property, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreatePropertyInput{
		Address:    "1 Beach Rd",
		City:       "Naples",
		County:     "Collier",
		State:      "FL",
		PostalCode: "34102",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Collier", property.County)
}

func TestPropertyService_Update_NormalizesCounty(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	countyRepo := new(mocks.MockCountyRepo)
	svc := service.NewPropertyService(repo, countyRepo)

	tenantID := uuid.New()
	propertyID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, propertyID).
		Return(&domain.Property{ID: propertyID, TenantID: tenantID, County: "Lee"}, nil)
	countyRepo.On("LoadAll", mock.Anything).Return(floridaCounties(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	county := "miami-dade"
	property, err := svc.Update(context.Background(), tenantID, propertyID, service.UpdatePropertyInput{
		County: &county,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Miami-Dade", property.County)
}

func TestPropertyService_Delete_AdminOnly(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	svc := service.NewPropertyService(repo, new(mocks.MockCountyRepo))

	tenantID := uuid.New()
	propertyID := uuid.New()

	err := svc.Delete(context.Background(), tenantID, propertyID, domain.RoleMember)
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	repo.AssertNotCalled(t, "Delete")

	repo.On("Delete", mock.Anything, tenantID, propertyID).Return(nil)
	err = svc.Delete(context.Background(), tenantID, propertyID, domain.RoleAdmin)
	assert.NoError(t, err)
}
