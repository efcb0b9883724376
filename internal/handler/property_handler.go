package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"claimguard/internal/service"
)

// PropertyHandler handles property endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create handles POST /api/v1/properties
// @Summary Register a property
// @Description Register an insured property; the county is normalized against the reference table
// @Tags properties
// @Accept json
// @Produce json
// @Param request body CreatePropertyRequest true "Property details"
// @Success 201 {object} Response{data=domain.Property} "Property created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req service.CreatePropertyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "address, city, state, and zip are required")
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, property)
}

// GetByID handles GET /api/v1/properties/:id
// @Summary Get property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} Response{data=domain.Property} "Property details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid property ID")
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), tenantID, propertyID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, property)
}

// List handles GET /api/v1/properties
// @Summary List properties
// @Tags properties
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Property,meta=PagMeta} "List of properties"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	properties, total, err := h.propertyService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, properties, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/properties/:id
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param request body UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Property} "Property updated"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid property ID")
		return
	}

	var req service.UpdatePropertyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body is required")
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), tenantID, propertyID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, property)
}

// Delete handles DELETE /api/v1/properties/:id
// @Summary Delete a property
// @Description Delete a property (admin only)
// @Tags properties
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Property deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	tenantID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid property ID")
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), tenantID, propertyID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "property deleted"})
}
