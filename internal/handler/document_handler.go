package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/service"
)

// DocumentHandler handles claim document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Create handles POST /api/v1/documents
// @Summary Create a claim document
// @Description Attach an uploaded file to a claim and trigger multi-provider AI analysis
// @Tags documents
// @Accept json
// @Produce json
// @Param request body CreateDocumentRequest true "Document creation details"
// @Success 201 {object} Response{data=domain.ClaimDocument} "Document created, analysis started"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "File or claim not found"
// @Failure 409 {object} ErrorResponseBody "Document already exists for this file"
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	tenantID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req struct {
		FileID       uuid.UUID `json:"file_id" binding:"required"`
		ClaimID      uuid.UUID `json:"claim_id" binding:"required"`
		DocumentType string    `json:"document_type" binding:"required"`
		Name         string    `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file_id, claim_id, and document_type are required")
		return
	}

	doc, err := h.documentService.CreateAndAnalyze(c.Request.Context(), &service.CreateDocumentInput{
		TenantID:     tenantID,
		ClaimID:      req.ClaimID,
		FileID:       req.FileID,
		DocumentType: req.DocumentType,
		Name:         req.Name,
		CreatedBy:    userID,
		Role:         role,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// GetByID handles GET /api/v1/documents/:id
// @Summary Get document by ID
// @Description Get document details including consensus findings, divergences, and contributing providers
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.ClaimDocument} "Document details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), tenantID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// List handles GET /api/v1/documents
// @Summary List documents
// @Description List documents with an optional claim filter
// @Tags documents
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param claim_id query string false "Filter by claim ID"
// @Success 200 {object} Response{data=[]domain.ClaimDocument,meta=PagMeta} "List of documents"
// @Failure 400 {object} ErrorResponseBody "Invalid claim_id"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	claimIDStr := c.Query("claim_id")
	if claimIDStr != "" {
		claimID, err := uuid.Parse(claimIDStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid claim_id")
			return
		}
		docs, total, err := h.documentService.ListByClaim(c.Request.Context(), tenantID, claimID, offset, limit)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
		return
	}

	docs, total, err := h.documentService.ListByTenant(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Retry handles POST /api/v1/documents/:id/retry
// @Summary Retry document analysis
// @Description Reset a document's analysis state and queue a fresh multi-provider run
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.ClaimDocument} "Analysis re-triggered"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Insufficient role"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/retry [post]
func (h *DocumentHandler) Retry(c *gin.Context) {
	tenantID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.RetryAnalysis(c.Request.Context(), tenantID, docID, userID, role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Analyze handles POST /api/v1/documents/:id/analyze
// @Summary Analyze a document synchronously
// @Description Run one multi-provider analysis inline and return the consensus result in the same request
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.ClaimDocument} "Analysis completed"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Insufficient role"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 502 {object} ErrorResponseBody "No provider returned a usable result"
// @Security BearerAuth
// @Router /documents/{id}/analyze [post]
func (h *DocumentHandler) Analyze(c *gin.Context) {
	tenantID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.AnalyzeNow(c.Request.Context(), tenantID, docID, role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// UpdateReview handles PUT /api/v1/documents/:id/review
// @Summary Review a document
// @Description Approve or reject a document's analyzed findings
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body ReviewDocumentRequest true "Review decision"
// @Success 200 {object} Response{data=domain.ClaimDocument} "Document reviewed"
// @Failure 400 {object} ErrorResponseBody "Invalid request or document not analyzed"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Insufficient role"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/review [put]
func (h *DocumentHandler) UpdateReview(c *gin.Context) {
	tenantID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req struct {
		Status domain.ReviewStatus `json:"status" binding:"required"`
		Notes  string              `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required (approved or rejected)")
		return
	}

	if req.Status != domain.ReviewStatusApproved && req.Status != domain.ReviewStatusRejected {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status must be 'approved' or 'rejected'")
		return
	}

	doc, err := h.documentService.UpdateReview(c.Request.Context(), &service.UpdateReviewInput{
		TenantID:   tenantID,
		DocumentID: docID,
		ReviewerID: userID,
		Role:       role,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// EditFindings handles PUT /api/v1/documents/:id/findings
// @Summary Edit findings
// @Description Manually correct the consensus findings of an analyzed document; sets confidence to 1.0 and resets the review decision
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body EditFindingsRequest true "Corrected findings"
// @Success 200 {object} Response{data=domain.ClaimDocument} "Document updated with corrected findings"
// @Failure 400 {object} ErrorResponseBody "Invalid request, document not analyzed, or invalid findings"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Insufficient role"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/findings [put]
func (h *DocumentHandler) EditFindings(c *gin.Context) {
	tenantID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req struct {
		Findings json.RawMessage `json:"findings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "findings is required")
		return
	}

	doc, err := h.documentService.EditFindings(c.Request.Context(), &service.EditFindingsInput{
		TenantID:   tenantID,
		DocumentID: docID,
		UserID:     userID,
		Role:       role,
		Findings:   req.Findings,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/documents/:id
// @Summary Delete a document
// @Description Delete a document (admin only)
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Document deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	tenantID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), tenantID, docID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document deleted"})
}
