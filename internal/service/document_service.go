package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"claimguard/internal/analysis"
	"claimguard/internal/domain"
	"claimguard/internal/port"
	"claimguard/internal/validator"
)

const defaultMaxAnalysisAttempts = 5

// ConsensusAnalyzer runs multi-provider analysis for one document.
// *analysis.Service is the production implementation.
type ConsensusAnalyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.ConsensusResult, error)
}

// CreateDocumentInput is the DTO for creating a claim document and triggering analysis.
type CreateDocumentInput struct {
	TenantID     uuid.UUID
	ClaimID      uuid.UUID
	FileID       uuid.UUID
	DocumentType string
	Name         string
	CreatedBy    uuid.UUID
	Role         domain.UserRole
}

// UpdateReviewInput is the DTO for updating a document's review status.
type UpdateReviewInput struct {
	TenantID   uuid.UUID
	DocumentID uuid.UUID
	ReviewerID uuid.UUID
	Role       domain.UserRole
	Status     domain.ReviewStatus
	Notes      string
}

// EditFindingsInput is the DTO for manually correcting a document's findings.
type EditFindingsInput struct {
	TenantID   uuid.UUID
	DocumentID uuid.UUID
	UserID     uuid.UUID
	Role       domain.UserRole
	Findings   json.RawMessage
}

// DocumentService defines the claim document management contract.
type DocumentService interface {
	CreateAndAnalyze(ctx context.Context, input *CreateDocumentInput) (*domain.ClaimDocument, error)
	GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.ClaimDocument, error)
	GetByFileID(ctx context.Context, tenantID, fileID uuid.UUID) (*domain.ClaimDocument, error)
	ListByClaim(ctx context.Context, tenantID, claimID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error)
	UpdateReview(ctx context.Context, input *UpdateReviewInput) (*domain.ClaimDocument, error)
	EditFindings(ctx context.Context, input *EditFindingsInput) (*domain.ClaimDocument, error)
	RetryAnalysis(ctx context.Context, tenantID, docID, userID uuid.UUID, role domain.UserRole) (*domain.ClaimDocument, error)
	AnalyzeNow(ctx context.Context, tenantID, docID uuid.UUID, role domain.UserRole) (*domain.ClaimDocument, error)
	Delete(ctx context.Context, tenantID, docID uuid.UUID, role domain.UserRole) error
	AnalyzeDocument(ctx context.Context, doc *domain.ClaimDocument, maxAttempts int)
}

type documentService struct {
	docRepo      port.ClaimDocumentRepository
	claimRepo    port.ClaimRepository
	propertyRepo port.PropertyRepository
	fileRepo     port.FileMetaRepository
	userRepo     port.UserRepository
	analyzer     ConsensusAnalyzer
	storage      port.ObjectStorage
	validator    *validator.Engine
	emails       port.EmailSender
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.ClaimDocumentRepository,
	claimRepo port.ClaimRepository,
	propertyRepo port.PropertyRepository,
	fileRepo port.FileMetaRepository,
	userRepo port.UserRepository,
	analyzer ConsensusAnalyzer,
	storage port.ObjectStorage,
	validationEngine *validator.Engine,
	emails port.EmailSender,
) DocumentService {
	return &documentService{
		docRepo:      docRepo,
		claimRepo:    claimRepo,
		propertyRepo: propertyRepo,
		fileRepo:     fileRepo,
		userRepo:     userRepo,
		analyzer:     analyzer,
		storage:      storage,
		validator:    validationEngine,
		emails:       emails,
	}
}

// canReview reports whether a role may review or correct documents.
func canReview(role domain.UserRole) bool {
	return role == domain.RoleAdmin || role == domain.RoleAdjuster
}

func (s *documentService) CreateAndAnalyze(ctx context.Context, input *CreateDocumentInput) (*domain.ClaimDocument, error) {
	// Verify the claim exists in this tenant
	if _, err := s.claimRepo.GetByID(ctx, input.TenantID, input.ClaimID); err != nil {
		return nil, fmt.Errorf("looking up claim: %w", err)
	}

	// Verify the file exists
	file, err := s.fileRepo.GetByID(ctx, input.TenantID, input.FileID)
	if err != nil {
		return nil, fmt.Errorf("looking up file: %w", err)
	}

	name := input.Name
	if name == "" {
		name = file.OriginalName
	}

	doc := &domain.ClaimDocument{
		ID:             uuid.New(),
		TenantID:       input.TenantID,
		ClaimID:        input.ClaimID,
		FileID:         input.FileID,
		Name:           name,
		DocumentType:   input.DocumentType,
		Findings:       json.RawMessage("{}"),
		Divergences:    json.RawMessage("[]"),
		Providers:      json.RawMessage("[]"),
		AnalysisStatus: domain.AnalysisStatusQueued,
		ReviewStatus:   domain.ReviewStatusPending,
		CreatedBy:      input.CreatedBy,
	}

	log.Printf("documentService.CreateAndAnalyze: creating document %s for file %s (tenant %s)",
		doc.ID, input.FileID, input.TenantID)

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	// Copy before launching goroutine so the caller's value is independent of background work
	result := *doc

	go s.analyzeInBackground(doc.ID, doc.TenantID)

	return &result, nil
}

func (s *documentService) analyzeInBackground(docID, tenantID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Printf("documentService.analyzeInBackground: starting analysis for document %s", docID)

	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		log.Printf("documentService.analyzeInBackground: failed to get document %s: %v", docID, err)
		return
	}
	doc.AnalysisAttempts++
	doc.AnalysisStatus = domain.AnalysisStatusProcessing
	if err := s.docRepo.UpdateAnalysis(ctx, doc); err != nil {
		log.Printf("documentService.analyzeInBackground: failed to set processing status for %s: %v", docID, err)
		return
	}

	s.AnalyzeDocument(ctx, doc, defaultMaxAnalysisAttempts)
}

// contextFlags derives analysis context from the document's claim and property.
// Disaster perils (hurricane, flood) set the flag the selector keys on.
func (s *documentService) contextFlags(ctx context.Context, doc *domain.ClaimDocument) map[string]string {
	flags := map[string]string{}

	claim, err := s.claimRepo.GetByID(ctx, doc.TenantID, doc.ClaimID)
	if err != nil {
		log.Printf("documentService.contextFlags: failed to load claim %s: %v", doc.ClaimID, err)
		return flags
	}
	flags["peril"] = string(claim.Peril)
	if domain.DisasterPerils[claim.Peril] {
		flags[string(claim.Peril)] = "true"
	}

	property, err := s.propertyRepo.GetByID(ctx, doc.TenantID, claim.PropertyID)
	if err != nil {
		log.Printf("documentService.contextFlags: failed to load property %s: %v", claim.PropertyID, err)
		return flags
	}
	if property.County != "" {
		flags["county"] = property.County
	}
	if property.State != "" {
		flags["state"] = property.State
	}
	return flags
}

// AnalyzeDocument performs the core analysis logic: file lookup, S3 download,
// multi-provider consensus analysis, error handling (with rate-limit
// queueing), and result saving. It is called by both analyzeInBackground and
// the queue worker. The doc must already be in processing status with
// AnalysisAttempts incremented.
func (s *documentService) AnalyzeDocument(ctx context.Context, doc *domain.ClaimDocument, maxAttempts int) {
	if err := s.runAnalysis(ctx, doc); err != nil {
		s.handleAnalysisError(ctx, doc, err, maxAttempts)
	}
}

// runAnalysis executes one analysis attempt end to end and persists the
// result on success. Failures are returned to the caller undecorated so the
// rate-limit check can unwrap them.
func (s *documentService) runAnalysis(ctx context.Context, doc *domain.ClaimDocument) error {
	file, err := s.fileRepo.GetByID(ctx, doc.TenantID, doc.FileID)
	if err != nil {
		return fmt.Errorf("looking up file: %w", err)
	}

	fileBytes, err := s.storage.Download(ctx, file.S3Bucket, file.S3Key)
	if err != nil {
		return fmt.Errorf("downloading file: %w", err)
	}

	consensus, err := s.analyzer.Analyze(ctx, analysis.Request{
		FileBytes:    fileBytes,
		ContentType:  file.ContentType,
		DocumentType: doc.DocumentType,
		ContextFlags: s.contextFlags(ctx, doc),
	})
	if err != nil {
		return fmt.Errorf("analyzing document: %w", err)
	}

	findingsJSON, err := json.Marshal(consensus.Findings)
	if err != nil {
		return fmt.Errorf("serializing findings: %w", err)
	}
	divergencesJSON, _ := json.Marshal(consensus.Divergences)
	providersJSON, _ := json.Marshal(consensus.Providers)

	now := time.Now().UTC()
	doc.Findings = findingsJSON
	doc.Confidence = consensus.Confidence
	doc.Divergences = divergencesJSON
	doc.Providers = providersJSON
	doc.AnalysisStatus = domain.AnalysisStatusCompleted
	doc.AnalysisError = ""
	doc.AnalyzedAt = &now
	doc.RetryAfter = nil

	if err := s.docRepo.UpdateAnalysis(ctx, doc); err != nil {
		log.Printf("documentService.runAnalysis: failed to save results for %s: %v", doc.ID, err)
		return nil
	}

	log.Printf("documentService.runAnalysis: document %s analyzed (confidence=%.2f, providers=%d, divergences=%d)",
		doc.ID, consensus.Confidence, len(consensus.Providers), len(consensus.Divergences))

	// Run findings validation after successful analysis; issues are advisory
	if s.validator != nil {
		issues := s.validator.Validate(&consensus.Findings)
		for _, issue := range issues {
			log.Printf("documentService.runAnalysis: findings issue for %s: [%s] %s: %s",
				doc.ID, issue.Severity, issue.FieldPath, issue.Message)
		}
	}
	return nil
}

// handleAnalysisError checks if the error is a rate limit and queues the
// document for retry if under the max attempts threshold. Otherwise, marks
// analysis as permanently failed.
func (s *documentService) handleAnalysisError(ctx context.Context, doc *domain.ClaimDocument, analysisErr error, maxAttempts int) {
	var rlErr *analysis.RateLimitError
	if errors.As(analysisErr, &rlErr) && doc.AnalysisAttempts < maxAttempts {
		retryAt := time.Now().Add(rlErr.RetryAfter)
		doc.AnalysisStatus = domain.AnalysisStatusQueued
		doc.AnalysisError = "providers rate limited, queued for retry"
		doc.RetryAfter = &retryAt
		if err := s.docRepo.UpdateAnalysis(ctx, doc); err != nil {
			log.Printf("documentService.handleAnalysisError: failed to queue document %s: %v", doc.ID, err)
		} else {
			log.Printf("documentService.handleAnalysisError: document %s queued for retry after %s",
				doc.ID, retryAt.Format(time.RFC3339))
		}
		return
	}
	s.failAnalysis(ctx, doc, analysisErr.Error())
}

func (s *documentService) failAnalysis(ctx context.Context, doc *domain.ClaimDocument, errMsg string) {
	log.Printf("documentService.failAnalysis: document %s failed: %s", doc.ID, errMsg)
	doc.AnalysisStatus = domain.AnalysisStatusFailed
	doc.AnalysisError = errMsg
	doc.RetryAfter = nil
	if err := s.docRepo.UpdateAnalysis(ctx, doc); err != nil {
		log.Printf("documentService.failAnalysis: failed to update status for %s: %v", doc.ID, err)
	}
	s.notifyAnalysisFailed(ctx, doc)
}

// notifyAnalysisFailed emails the document creator. Failures are logged but
// never block the analysis pipeline.
func (s *documentService) notifyAnalysisFailed(ctx context.Context, doc *domain.ClaimDocument) {
	if s.emails == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, doc.TenantID, doc.CreatedBy)
	if err != nil {
		log.Printf("documentService.notifyAnalysisFailed: failed to load user %s: %v", doc.CreatedBy, err)
		return
	}
	claimNumber := ""
	if claim, err := s.claimRepo.GetByID(ctx, doc.TenantID, doc.ClaimID); err == nil {
		claimNumber = claim.ClaimNumber
	}
	if err := s.emails.SendAnalysisFailedEmail(ctx, user.Email, user.FullName, claimNumber, doc.Name); err != nil {
		log.Printf("documentService.notifyAnalysisFailed: failed to send email to %s: %v", user.Email, err)
	}
}

func (s *documentService) GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.ClaimDocument, error) {
	return s.docRepo.GetByID(ctx, tenantID, docID)
}

func (s *documentService) GetByFileID(ctx context.Context, tenantID, fileID uuid.UUID) (*domain.ClaimDocument, error) {
	return s.docRepo.GetByFileID(ctx, tenantID, fileID)
}

func (s *documentService) ListByClaim(ctx context.Context, tenantID, claimID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error) {
	return s.docRepo.ListByClaim(ctx, tenantID, claimID, offset, limit)
}

func (s *documentService) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ClaimDocument, int, error) {
	return s.docRepo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *documentService) UpdateReview(ctx context.Context, input *UpdateReviewInput) (*domain.ClaimDocument, error) {
	if !canReview(input.Role) {
		return nil, domain.ErrInsufficientRole
	}

	doc, err := s.docRepo.GetByID(ctx, input.TenantID, input.DocumentID)
	if err != nil {
		return nil, err
	}

	if doc.AnalysisStatus != domain.AnalysisStatusCompleted {
		return nil, domain.ErrDocumentNotAnalyzed
	}

	now := time.Now().UTC()
	doc.ReviewStatus = input.Status
	doc.ReviewedBy = &input.ReviewerID
	doc.ReviewedAt = &now
	doc.ReviewerNotes = input.Notes

	if err := s.docRepo.UpdateReviewStatus(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating review status: %w", err)
	}
	return doc, nil
}

func (s *documentService) EditFindings(ctx context.Context, input *EditFindingsInput) (*domain.ClaimDocument, error) {
	if !canReview(input.Role) {
		return nil, domain.ErrInsufficientRole
	}

	doc, err := s.docRepo.GetByID(ctx, input.TenantID, input.DocumentID)
	if err != nil {
		return nil, err
	}

	if doc.AnalysisStatus != domain.AnalysisStatusCompleted {
		return nil, domain.ErrDocumentNotAnalyzed
	}

	// The edited payload must still parse as findings
	if _, err := analysis.ParseFindings(input.Findings); err != nil {
		return nil, domain.ErrInvalidFindings
	}

	// Human-corrected findings carry full confidence
	doc.Findings = input.Findings
	doc.Confidence = 1.0
	if err := s.docRepo.UpdateAnalysis(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating findings: %w", err)
	}

	// Corrections invalidate any prior review decision
	doc.ReviewStatus = domain.ReviewStatusPending
	doc.ReviewedBy = nil
	doc.ReviewedAt = nil
	doc.ReviewerNotes = ""
	if err := s.docRepo.UpdateReviewStatus(ctx, doc); err != nil {
		return nil, fmt.Errorf("resetting review status: %w", err)
	}

	log.Printf("documentService.EditFindings: document %s findings corrected by %s", doc.ID, input.UserID)
	return doc, nil
}

func (s *documentService) RetryAnalysis(ctx context.Context, tenantID, docID, userID uuid.UUID, role domain.UserRole) (*domain.ClaimDocument, error) {
	if !canReview(role) {
		return nil, domain.ErrInsufficientRole
	}

	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}

	// Verify the file still exists
	if _, err := s.fileRepo.GetByID(ctx, tenantID, doc.FileID); err != nil {
		return nil, fmt.Errorf("looking up file for retry: %w", err)
	}

	doc.AnalysisStatus = domain.AnalysisStatusQueued
	doc.AnalysisError = ""
	doc.Findings = json.RawMessage("{}")
	doc.Confidence = 0
	doc.Divergences = json.RawMessage("[]")
	doc.Providers = json.RawMessage("[]")
	doc.AnalyzedAt = nil
	doc.RetryAfter = nil
	if err := s.docRepo.UpdateAnalysis(ctx, doc); err != nil {
		return nil, fmt.Errorf("resetting document for retry: %w", err)
	}

	log.Printf("documentService.RetryAnalysis: retrying analysis for document %s", docID)

	// Copy before launching goroutine so the caller's value is independent of background work
	result := *doc

	go s.analyzeInBackground(doc.ID, doc.TenantID)

	return &result, nil
}

// AnalyzeNow runs one analysis attempt inline and returns the result. Unlike
// RetryAnalysis it does not go through the background queue, so callers get
// either fresh findings or an error in the same request.
func (s *documentService) AnalyzeNow(ctx context.Context, tenantID, docID uuid.UUID, role domain.UserRole) (*domain.ClaimDocument, error) {
	if !canReview(role) {
		return nil, domain.ErrInsufficientRole
	}

	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}

	doc.AnalysisAttempts++
	doc.AnalysisStatus = domain.AnalysisStatusProcessing
	if err := s.docRepo.UpdateAnalysis(ctx, doc); err != nil {
		return nil, fmt.Errorf("setting processing status: %w", err)
	}

	if err := s.runAnalysis(ctx, doc); err != nil {
		s.handleAnalysisError(ctx, doc, err, defaultMaxAnalysisAttempts)

		var nspErr *analysis.NoSuccessfulProviderError
		var rlErr *analysis.RateLimitError
		if errors.As(err, &nspErr) || errors.As(err, &rlErr) {
			return nil, domain.ErrAnalysisUnavailable
		}
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, tenantID, docID uuid.UUID, role domain.UserRole) error {
	if role != domain.RoleAdmin {
		return domain.ErrInsufficientRole
	}
	return s.docRepo.Delete(ctx, tenantID, docID)
}
