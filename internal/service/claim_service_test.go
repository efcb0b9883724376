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

func newClaimService() (service.ClaimService, *mocks.MockClaimRepo, *mocks.MockPropertyRepo, *mocks.MockUserRepo, *mocks.MockEmailSender) {
	claimRepo := new(mocks.MockClaimRepo)
	propertyRepo := new(mocks.MockPropertyRepo)
	userRepo := new(mocks.MockUserRepo)
	emails := new(mocks.MockEmailSender)
	svc := service.NewClaimService(claimRepo, propertyRepo, userRepo, emails)
	return svc, claimRepo, propertyRepo, userRepo, emails
}

func TestClaimService_Create_Success(t *testing.T) {
	svc, claimRepo, propertyRepo, _, _ := newClaimService()

	tenantID := uuid.New()
	propertyID := uuid.New()
	createdBy := uuid.New()

	propertyRepo.On("GetByID", mock.Anything, tenantID, propertyID).
		Return(&domain.Property{ID: propertyID, TenantID: tenantID}, nil)
	claimRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Claim")).Return(nil)

	claim, err := svc.Create(context.Background(), tenantID, createdBy, service.CreateClaimInput{
		PropertyID:  propertyID,
		ClaimNumber: "CLM-2025-0042",
		Peril:       domain.PerilHurricane,
		Description: "Roof damage after landfall",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusDraft, claim.Status)
	assert.Equal(t, "CLM-2025-0042", claim.ClaimNumber)
	assert.Equal(t, createdBy, claim.CreatedBy)

	claimRepo.AssertExpectations(t)
	propertyRepo.AssertExpectations(t)
}

func TestClaimService_Create_InvalidPeril(t *testing.T) {
	svc, claimRepo, propertyRepo, _, _ := newClaimService()

	claim, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateClaimInput{
		PropertyID:  uuid.New(),
		ClaimNumber: "CLM-2025-0043",
		Peril:       domain.Peril("earthquake"),
	})

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domain.ErrInvalidPeril)
	propertyRepo.AssertNotCalled(t, "GetByID")
	claimRepo.AssertNotCalled(t, "Create")
}

func TestClaimService_Create_PropertyNotFound(t *testing.T) {
	svc, claimRepo, propertyRepo, _, _ := newClaimService()

	tenantID := uuid.New()
	propertyID := uuid.New()
	propertyRepo.On("GetByID", mock.Anything, tenantID, propertyID).Return(nil, domain.ErrNotFound)

	claim, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateClaimInput{
		PropertyID:  propertyID,
		ClaimNumber: "CLM-2025-0044",
		Peril:       domain.PerilFlood,
	})

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	claimRepo.AssertNotCalled(t, "Create")
}

func TestClaimService_Update_AssigneeMustExist(t *testing.T) {
	svc, claimRepo, _, userRepo, _ := newClaimService()

	tenantID := uuid.New()
	claimID := uuid.New()
	assignee := uuid.New()

	claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{ID: claimID, TenantID: tenantID, Status: domain.ClaimStatusFiled}, nil)
	userRepo.On("GetByID", mock.Anything, tenantID, assignee).Return(nil, domain.ErrNotFound)

	claim, err := svc.Update(context.Background(), tenantID, claimID, service.UpdateClaimInput{
		AssignedTo: &assignee,
	})

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	claimRepo.AssertNotCalled(t, "Update")
}

func TestClaimService_ChangeStatus_DraftToFiled(t *testing.T) {
	svc, claimRepo, _, userRepo, emails := newClaimService()

	tenantID := uuid.New()
	claimID := uuid.New()
	actorID := uuid.New()
	creator := uuid.New()

	claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{
			ID:          claimID,
			TenantID:    tenantID,
			ClaimNumber: "CLM-2025-0042",
			Status:      domain.ClaimStatusDraft,
			CreatedBy:   creator,
		}, nil)
	claimRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Claim")).Return(nil)
	userRepo.On("GetByID", mock.Anything, tenantID, creator).
		Return(&domain.User{ID: creator, Email: "owner@test.com", FullName: "Owner"}, nil)
	emails.On("SendClaimStatusEmail", mock.Anything, "owner@test.com", "Owner", "CLM-2025-0042", "filed").Return(nil)

	claim, err := svc.ChangeStatus(context.Background(), tenantID, claimID, actorID, domain.RoleMember, domain.ClaimStatusFiled)

	assert.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusFiled, claim.Status)
	emails.AssertExpectations(t)
}

func TestClaimService_ChangeStatus_InvalidTransition(t *testing.T) {
	svc, claimRepo, _, _, _ := newClaimService()

	tenantID := uuid.New()
	claimID := uuid.New()

	claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{ID: claimID, TenantID: tenantID, Status: domain.ClaimStatusDraft}, nil)

	claim, err := svc.ChangeStatus(context.Background(), tenantID, claimID, uuid.New(), domain.RoleAdmin, domain.ClaimStatusApproved)

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange)
	claimRepo.AssertNotCalled(t, "Update")
}

func TestClaimService_ChangeStatus_ApprovalRequiresReviewerRole(t *testing.T) {
	svc, claimRepo, _, _, _ := newClaimService()

	tenantID := uuid.New()
	claimID := uuid.New()

	claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{ID: claimID, TenantID: tenantID, Status: domain.ClaimStatusUnderReview}, nil)

	claim, err := svc.ChangeStatus(context.Background(), tenantID, claimID, uuid.New(), domain.RoleMember, domain.ClaimStatusApproved)

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	claimRepo.AssertNotCalled(t, "Update")
}

func TestClaimService_ChangeStatus_AdjusterCanDeny(t *testing.T) {
	svc, claimRepo, _, userRepo, emails := newClaimService()

	tenantID := uuid.New()
	claimID := uuid.New()
	creator := uuid.New()

	claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{
			ID:          claimID,
			TenantID:    tenantID,
			ClaimNumber: "CLM-2025-0099",
			Status:      domain.ClaimStatusUnderReview,
			CreatedBy:   creator,
		}, nil)
	claimRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Claim")).Return(nil)
	userRepo.On("GetByID", mock.Anything, tenantID, creator).
		Return(&domain.User{ID: creator, Email: "owner@test.com", FullName: "Owner"}, nil)
	emails.On("SendClaimStatusEmail", mock.Anything, "owner@test.com", "Owner", "CLM-2025-0099", "denied").Return(nil)

	claim, err := svc.ChangeStatus(context.Background(), tenantID, claimID, uuid.New(), domain.RoleAdjuster, domain.ClaimStatusDenied)

	assert.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusDenied, claim.Status)
}

func TestClaimService_ChangeStatus_EmailFailureDoesNotBlock(t *testing.T) {
	svc, claimRepo, _, userRepo, emails := newClaimService()

	tenantID := uuid.New()
	claimID := uuid.New()
	creator := uuid.New()

	claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{
			ID:          claimID,
			TenantID:    tenantID,
			ClaimNumber: "CLM-2025-0100",
			Status:      domain.ClaimStatusUnderReview,
			CreatedBy:   creator,
		}, nil)
	claimRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Claim")).Return(nil)
	userRepo.On("GetByID", mock.Anything, tenantID, creator).
		Return(&domain.User{ID: creator, Email: "owner@test.com", FullName: "Owner"}, nil)
	emails.On("SendClaimStatusEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	claim, err := svc.ChangeStatus(context.Background(), tenantID, claimID, uuid.New(), domain.RoleAdmin, domain.ClaimStatusApproved)

	assert.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusApproved, claim.Status)
}

func TestClaimService_Delete_AdminOnly(t *testing.T) {
	svc, claimRepo, _, _, _ := newClaimService()

	tenantID := uuid.New()
	claimID := uuid.New()

	err := svc.Delete(context.Background(), tenantID, claimID, domain.RoleAdjuster)
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	claimRepo.AssertNotCalled(t, "Delete")

	claimRepo.On("Delete", mock.Anything, tenantID, claimID).Return(nil)
	err = svc.Delete(context.Background(), tenantID, claimID, domain.RoleAdmin)
	assert.NoError(t, err)
	claimRepo.AssertExpectations(t)
}
