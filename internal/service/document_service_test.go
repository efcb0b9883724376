package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"claimguard/internal/analysis"
	"claimguard/internal/domain"
	"claimguard/internal/service"
	"claimguard/mocks"
)

type documentServiceFixture struct {
	svc          service.DocumentService
	docRepo      *mocks.MockClaimDocumentRepo
	claimRepo    *mocks.MockClaimRepo
	propertyRepo *mocks.MockPropertyRepo
	fileRepo     *mocks.MockFileMetaRepo
	userRepo     *mocks.MockUserRepo
	analyzer     *mocks.MockConsensusAnalyzer
	storage      *mocks.MockObjectStorage
	emails       *mocks.MockEmailSender
}

func newDocumentService() *documentServiceFixture {
	f := &documentServiceFixture{
		docRepo:      new(mocks.MockClaimDocumentRepo),
		claimRepo:    new(mocks.MockClaimRepo),
		propertyRepo: new(mocks.MockPropertyRepo),
		fileRepo:     new(mocks.MockFileMetaRepo),
		userRepo:     new(mocks.MockUserRepo),
		analyzer:     new(mocks.MockConsensusAnalyzer),
		storage:      new(mocks.MockObjectStorage),
		emails:       new(mocks.MockEmailSender),
	}
	f.svc = service.NewDocumentService(
		f.docRepo, f.claimRepo, f.propertyRepo, f.fileRepo, f.userRepo,
		f.analyzer, f.storage, nil, f.emails,
	)
	return f
}

func completedDocument(tenantID uuid.UUID) *domain.ClaimDocument {
	return &domain.ClaimDocument{
		ID:             uuid.New(),
		TenantID:       tenantID,
		ClaimID:        uuid.New(),
		FileID:         uuid.New(),
		Name:           "roof-estimate.pdf",
		Findings:       json.RawMessage(`{"document_type":"estimate"}`),
		AnalysisStatus: domain.AnalysisStatusCompleted,
		ReviewStatus:   domain.ReviewStatusPending,
		CreatedBy:      uuid.New(),
	}
}

func TestDocumentService_CreateAndAnalyze_CreatesQueuedDocument(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	claimID := uuid.New()
	fileID := uuid.New()

	f.claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{ID: claimID, TenantID: tenantID, Peril: domain.PerilFire}, nil)
	f.fileRepo.On("GetByID", mock.Anything, tenantID, fileID).
		Return(&domain.FileMeta{ID: fileID, TenantID: tenantID, OriginalName: "estimate.pdf"}, nil)
	f.docRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ClaimDocument")).Return(nil)

	// The background goroutine may run before the test returns; let its repo
	// lookup fail so nothing else is exercised.
	f.docRepo.On("GetByID", mock.Anything, tenantID, mock.Anything).Return(nil, domain.ErrNotFound).Maybe()

	doc, err := f.svc.CreateAndAnalyze(context.Background(), &service.CreateDocumentInput{
		TenantID:     tenantID,
		ClaimID:      claimID,
		FileID:       fileID,
		DocumentType: "estimate",
		CreatedBy:    uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AnalysisStatusQueued, doc.AnalysisStatus)
	assert.Equal(t, domain.ReviewStatusPending, doc.ReviewStatus)
	// Name falls back to the uploaded file's original name
	assert.Equal(t, "estimate.pdf", doc.Name)
}

func TestDocumentService_CreateAndAnalyze_ClaimNotFound(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	claimID := uuid.New()
	f.claimRepo.On("GetByID", mock.Anything, tenantID, claimID).Return(nil, domain.ErrNotFound)

	doc, err := f.svc.CreateAndAnalyze(context.Background(), &service.CreateDocumentInput{
		TenantID: tenantID,
		ClaimID:  claimID,
		FileID:   uuid.New(),
	})

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.docRepo.AssertNotCalled(t, "Create")
}

func TestDocumentService_AnalyzeNow_Success(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	claimID := uuid.New()
	propertyID := uuid.New()
	fileID := uuid.New()
	doc := &domain.ClaimDocument{
		ID:             uuid.New(),
		TenantID:       tenantID,
		ClaimID:        claimID,
		FileID:         fileID,
		DocumentType:   "estimate",
		AnalysisStatus: domain.AnalysisStatusFailed,
	}

	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(doc, nil)
	f.docRepo.On("UpdateAnalysis", mock.Anything, doc).Return(nil)
	f.fileRepo.On("GetByID", mock.Anything, tenantID, fileID).
		Return(&domain.FileMeta{
			ID: fileID, TenantID: tenantID,
			S3Bucket: "claimguard-files", S3Key: "tenants/x/file.pdf",
			ContentType: "application/pdf",
		}, nil)
	f.storage.On("Download", mock.Anything, "claimguard-files", "tenants/x/file.pdf").
		Return([]byte("%PDF-1.4"), nil)
	f.claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{ID: claimID, TenantID: tenantID, PropertyID: propertyID, Peril: domain.PerilHurricane}, nil)
	f.propertyRepo.On("GetByID", mock.Anything, tenantID, propertyID).
		Return(&domain.Property{ID: propertyID, County: "Lee", State: "FL"}, nil)
	f.analyzer.On("Analyze", mock.Anything, mock.MatchedBy(func(req analysis.Request) bool {
		return req.ContextFlags["hurricane"] == "true" &&
			req.ContextFlags["county"] == "Lee" &&
			req.DocumentType == "estimate"
	})).Return(&analysis.ConsensusResult{
		Findings:   analysis.Findings{DocumentType: "estimate", Category: "structural"},
		Confidence: 0.9,
		Providers:  []string{"openai", "claude"},
	}, nil)

	result, err := f.svc.AnalyzeNow(context.Background(), tenantID, doc.ID, domain.RoleAdjuster)

	require.NoError(t, err)
	assert.Equal(t, domain.AnalysisStatusCompleted, result.AnalysisStatus)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, 1, result.AnalysisAttempts)
	assert.NotNil(t, result.AnalyzedAt)
	assert.JSONEq(t, `["openai","claude"]`, string(result.Providers))
	f.analyzer.AssertExpectations(t)
}

func TestDocumentService_AnalyzeNow_RequiresReviewerRole(t *testing.T) {
	f := newDocumentService()

	doc, err := f.svc.AnalyzeNow(context.Background(), uuid.New(), uuid.New(), domain.RoleMember)

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
}

func TestDocumentService_AnalyzeNow_NoProviderSucceeded(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	claimID := uuid.New()
	fileID := uuid.New()
	creator := uuid.New()
	doc := &domain.ClaimDocument{
		ID:       uuid.New(),
		TenantID: tenantID,
		ClaimID:  claimID,
		FileID:   fileID,
		Name:     "photo.jpg",
		// At the attempt cap so the failure is terminal, not requeued
		AnalysisAttempts: 4,
		CreatedBy:        creator,
	}

	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(doc, nil)
	f.docRepo.On("UpdateAnalysis", mock.Anything, doc).Return(nil)
	f.fileRepo.On("GetByID", mock.Anything, tenantID, fileID).
		Return(&domain.FileMeta{ID: fileID, S3Bucket: "b", S3Key: "k", ContentType: "image/jpeg"}, nil)
	f.storage.On("Download", mock.Anything, "b", "k").Return([]byte("img"), nil)
	f.claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{ID: claimID, ClaimNumber: "CLM-1", Peril: domain.PerilWind, PropertyID: uuid.New()}, nil)
	f.propertyRepo.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	f.analyzer.On("Analyze", mock.Anything, mock.Anything).
		Return(nil, &analysis.NoSuccessfulProviderError{Attempted: 2})
	f.userRepo.On("GetByID", mock.Anything, tenantID, creator).
		Return(&domain.User{ID: creator, Email: "owner@test.com", FullName: "Owner"}, nil)
	f.emails.On("SendAnalysisFailedEmail", mock.Anything, "owner@test.com", "Owner", "CLM-1", "photo.jpg").Return(nil)

	result, err := f.svc.AnalyzeNow(context.Background(), tenantID, doc.ID, domain.RoleAdmin)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrAnalysisUnavailable)
	assert.Equal(t, domain.AnalysisStatusFailed, doc.AnalysisStatus)
	f.emails.AssertExpectations(t)
}

func TestDocumentService_AnalyzeNow_RateLimitRequeues(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	claimID := uuid.New()
	fileID := uuid.New()
	doc := &domain.ClaimDocument{
		ID:       uuid.New(),
		TenantID: tenantID,
		ClaimID:  claimID,
		FileID:   fileID,
	}

	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(doc, nil)
	f.docRepo.On("UpdateAnalysis", mock.Anything, doc).Return(nil)
	f.fileRepo.On("GetByID", mock.Anything, tenantID, fileID).
		Return(&domain.FileMeta{ID: fileID, S3Bucket: "b", S3Key: "k", ContentType: "application/pdf"}, nil)
	f.storage.On("Download", mock.Anything, "b", "k").Return([]byte("pdf"), nil)
	f.claimRepo.On("GetByID", mock.Anything, tenantID, claimID).
		Return(&domain.Claim{ID: claimID, Peril: domain.PerilHail, PropertyID: uuid.New()}, nil)
	f.propertyRepo.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	f.analyzer.On("Analyze", mock.Anything, mock.Anything).
		Return(nil, analysis.NewRateLimitError("openai", assert.AnError, 120))

	result, err := f.svc.AnalyzeNow(context.Background(), tenantID, doc.ID, domain.RoleAdjuster)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrAnalysisUnavailable)
	assert.Equal(t, domain.AnalysisStatusQueued, doc.AnalysisStatus)
	require.NotNil(t, doc.RetryAfter)
	assert.WithinDuration(t, time.Now().Add(120*time.Second), *doc.RetryAfter, 5*time.Second)
	f.emails.AssertNotCalled(t, "SendAnalysisFailedEmail")
}

func TestDocumentService_UpdateReview_Approve(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	doc := completedDocument(tenantID)
	reviewer := uuid.New()

	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(doc, nil)
	f.docRepo.On("UpdateReviewStatus", mock.Anything, doc).Return(nil)

	result, err := f.svc.UpdateReview(context.Background(), &service.UpdateReviewInput{
		TenantID:   tenantID,
		DocumentID: doc.ID,
		ReviewerID: reviewer,
		Role:       domain.RoleAdjuster,
		Status:     domain.ReviewStatusApproved,
		Notes:      "matches the adjuster estimate",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusApproved, result.ReviewStatus)
	assert.Equal(t, &reviewer, result.ReviewedBy)
	assert.NotNil(t, result.ReviewedAt)
	assert.Equal(t, "matches the adjuster estimate", result.ReviewerNotes)
}

func TestDocumentService_UpdateReview_RequiresCompletedAnalysis(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	doc := completedDocument(tenantID)
	doc.AnalysisStatus = domain.AnalysisStatusProcessing

	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(doc, nil)

	result, err := f.svc.UpdateReview(context.Background(), &service.UpdateReviewInput{
		TenantID:   tenantID,
		DocumentID: doc.ID,
		ReviewerID: uuid.New(),
		Role:       domain.RoleAdmin,
		Status:     domain.ReviewStatusApproved,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrDocumentNotAnalyzed)
}

func TestDocumentService_UpdateReview_MemberForbidden(t *testing.T) {
	f := newDocumentService()

	result, err := f.svc.UpdateReview(context.Background(), &service.UpdateReviewInput{
		TenantID:   uuid.New(),
		DocumentID: uuid.New(),
		Role:       domain.RoleMember,
		Status:     domain.ReviewStatusRejected,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	f.docRepo.AssertNotCalled(t, "GetByID")
}

func TestDocumentService_EditFindings_ResetsReview(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	doc := completedDocument(tenantID)
	reviewedBy := uuid.New()
	reviewedAt := time.Now()
	doc.ReviewStatus = domain.ReviewStatusApproved
	doc.ReviewedBy = &reviewedBy
	doc.ReviewedAt = &reviewedAt
	doc.Confidence = 0.85

	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(doc, nil)
	f.docRepo.On("UpdateAnalysis", mock.Anything, doc).Return(nil)
	f.docRepo.On("UpdateReviewStatus", mock.Anything, doc).Return(nil)

	corrected := json.RawMessage(`{"document_type":"invoice","category":"contents","dates":["2025-09-12"]}`)
	result, err := f.svc.EditFindings(context.Background(), &service.EditFindingsInput{
		TenantID:   tenantID,
		DocumentID: doc.ID,
		UserID:     uuid.New(),
		Role:       domain.RoleAdjuster,
		Findings:   corrected,
	})

	require.NoError(t, err)
	assert.Equal(t, corrected, result.Findings)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, domain.ReviewStatusPending, result.ReviewStatus)
	assert.Nil(t, result.ReviewedBy)
	assert.Nil(t, result.ReviewedAt)
}

func TestDocumentService_EditFindings_RejectsMalformedPayload(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	doc := completedDocument(tenantID)
	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(doc, nil)

	result, err := f.svc.EditFindings(context.Background(), &service.EditFindingsInput{
		TenantID:   tenantID,
		DocumentID: doc.ID,
		Role:       domain.RoleAdmin,
		Findings:   json.RawMessage(`not an object`),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidFindings)
	f.docRepo.AssertNotCalled(t, "UpdateAnalysis")
}

func TestDocumentService_RetryAnalysis_ResetsDocument(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	fileID := uuid.New()
	doc := &domain.ClaimDocument{
		ID:             uuid.New(),
		TenantID:       tenantID,
		FileID:         fileID,
		AnalysisStatus: domain.AnalysisStatusFailed,
		AnalysisError:  "providers unavailable",
		Confidence:     0.4,
	}

	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(doc, nil).Once()
	f.fileRepo.On("GetByID", mock.Anything, tenantID, fileID).
		Return(&domain.FileMeta{ID: fileID}, nil)
	f.docRepo.On("UpdateAnalysis", mock.Anything, doc).Return(nil)

	// The background goroutine may run before the test returns; let its repo
	// lookup fail so nothing else is exercised.
	f.docRepo.On("GetByID", mock.Anything, tenantID, doc.ID).Return(nil, domain.ErrNotFound).Maybe()

	result, err := f.svc.RetryAnalysis(context.Background(), tenantID, doc.ID, uuid.New(), domain.RoleAdjuster)

	require.NoError(t, err)
	assert.Equal(t, domain.AnalysisStatusQueued, result.AnalysisStatus)
	assert.Empty(t, result.AnalysisError)
	assert.Zero(t, result.Confidence)
	assert.JSONEq(t, `{}`, string(result.Findings))
}

func TestDocumentService_Delete_AdminOnly(t *testing.T) {
	f := newDocumentService()

	tenantID := uuid.New()
	docID := uuid.New()

	err := f.svc.Delete(context.Background(), tenantID, docID, domain.RoleAdjuster)
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)

	f.docRepo.On("Delete", mock.Anything, tenantID, docID).Return(nil)
	err = f.svc.Delete(context.Background(), tenantID, docID, domain.RoleAdmin)
	assert.NoError(t, err)
}
