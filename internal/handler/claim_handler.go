package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/service"
)

// ClaimHandler handles claim lifecycle endpoints.
type ClaimHandler struct {
	claimService service.ClaimService
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(claimService service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// Create handles POST /api/v1/claims
// @Summary File a claim
// @Description Create a new claim in draft status against a property
// @Tags claims
// @Accept json
// @Produce json
// @Param request body CreateClaimRequest true "Claim details"
// @Success 201 {object} Response{data=domain.Claim} "Claim created"
// @Failure 400 {object} ErrorResponseBody "Invalid request or peril"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Property not found"
// @Failure 409 {object} ErrorResponseBody "Claim number already exists"
// @Security BearerAuth
// @Router /claims [post]
func (h *ClaimHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req service.CreateClaimInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "property_id, claim_number, and peril are required")
		return
	}

	claim, err := h.claimService.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, claim)
}

// GetByID handles GET /api/v1/claims/:id
// @Summary Get claim by ID
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Success 200 {object} Response{data=domain.Claim} "Claim details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Claim not found"
// @Security BearerAuth
// @Router /claims/{id} [get]
func (h *ClaimHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid claim ID")
		return
	}

	claim, err := h.claimService.GetByID(c.Request.Context(), tenantID, claimID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, claim)
}

// List handles GET /api/v1/claims
// @Summary List claims
// @Description List claims with optional status, peril, and property filters
// @Tags claims
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param status query string false "Filter by claim status"
// @Param peril query string false "Filter by peril"
// @Param property_id query string false "Filter by property ID"
// @Success 200 {object} Response{data=[]domain.Claim,meta=PagMeta} "List of claims"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /claims [get]
func (h *ClaimHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	if propertyIDStr := c.Query("property_id"); propertyIDStr != "" {
		propertyID, err := uuid.Parse(propertyIDStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid property_id")
			return
		}
		claims, total, err := h.claimService.ListByProperty(c.Request.Context(), tenantID, propertyID, offset, limit)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondPaginated(c, claims, PagMeta{Total: total, Offset: offset, Limit: limit})
		return
	}

	filters := domain.ClaimFilters{
		Status: domain.ClaimStatus(c.Query("status")),
		Peril:  domain.Peril(c.Query("peril")),
	}
	if filters.Peril != "" && !domain.ValidPerils[filters.Peril] {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid peril filter")
		return
	}

	claims, total, err := h.claimService.List(c.Request.Context(), tenantID, filters, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, claims, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/claims/:id
// @Summary Update claim details
// @Description Update a claim's peril, description, incident date, or assignee
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Param request body UpdateClaimRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Claim} "Claim updated"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Claim or assignee not found"
// @Security BearerAuth
// @Router /claims/{id} [put]
func (h *ClaimHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid claim ID")
		return
	}

	var req service.UpdateClaimInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body is required")
		return
	}

	claim, err := h.claimService.Update(c.Request.Context(), tenantID, claimID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, claim)
}

// ChangeStatus handles PUT /api/v1/claims/:id/status
// @Summary Change claim status
// @Description Move a claim through its lifecycle; approval and denial require the adjuster or admin role
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Param request body ChangeClaimStatusRequest true "Target status"
// @Success 200 {object} Response{data=domain.Claim} "Status changed"
// @Failure 400 {object} ErrorResponseBody "Invalid request or transition"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Insufficient role"
// @Failure 404 {object} ErrorResponseBody "Claim not found"
// @Security BearerAuth
// @Router /claims/{id}/status [put]
func (h *ClaimHandler) ChangeStatus(c *gin.Context) {
	tenantID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid claim ID")
		return
	}

	var req struct {
		Status domain.ClaimStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	claim, err := h.claimService.ChangeStatus(c.Request.Context(), tenantID, claimID, userID, role, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, claim)
}

// Delete handles DELETE /api/v1/claims/:id
// @Summary Delete a claim
// @Description Delete a claim (admin only)
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Claim deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "Claim not found"
// @Security BearerAuth
// @Router /claims/{id} [delete]
func (h *ClaimHandler) Delete(c *gin.Context) {
	tenantID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid claim ID")
		return
	}

	if err := h.claimService.Delete(c.Request.Context(), tenantID, claimID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "claim deleted"})
}

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
