package handler

import (
	"time"

	"github.com/google/uuid"

	"claimguard/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	TenantSlug string `json:"tenant_slug" binding:"required" example:"coastal-adjusters"`
	Email      string `json:"email" binding:"required" example:"admin@coastal.com"`
	Password   string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreatePropertyRequest represents the create property request body.
type CreatePropertyRequest struct {
	Address string `json:"address" binding:"required" example:"120 Gulf Shore Blvd"`
	City    string `json:"city" binding:"required" example:"Naples"`
	State   string `json:"state" binding:"required" example:"FL"`
	Zip     string `json:"zip" binding:"required" example:"34102"`
	County  string `json:"county" example:"Collier"`
}

// UpdatePropertyRequest represents the update property request body.
type UpdatePropertyRequest struct {
	Address *string `json:"address" example:"122 Gulf Shore Blvd"`
	City    *string `json:"city" example:"Naples"`
	State   *string `json:"state" example:"FL"`
	Zip     *string `json:"zip" example:"34102"`
	County  *string `json:"county" example:"Collier"`
}

// CreateClaimRequest represents the create claim request body.
type CreateClaimRequest struct {
	PropertyID   uuid.UUID  `json:"property_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ClaimNumber  string     `json:"claim_number" binding:"required" example:"CLM-2025-0001"`
	Peril        string     `json:"peril" binding:"required" example:"hurricane"`
	Description  string     `json:"description" example:"Roof damage after landfall"`
	IncidentDate *time.Time `json:"incident_date" example:"2025-09-12T00:00:00Z"`
}

// UpdateClaimRequest represents the update claim request body.
type UpdateClaimRequest struct {
	Peril        *string    `json:"peril" example:"wind"`
	Description  *string    `json:"description" example:"Updated after inspection"`
	IncidentDate *time.Time `json:"incident_date" example:"2025-09-12T00:00:00Z"`
	AssignedTo   *uuid.UUID `json:"assigned_to" example:"987fcdeb-51a2-3bc4-d567-890123456789"`
}

// ChangeClaimStatusRequest represents the change claim status request body.
type ChangeClaimStatusRequest struct {
	Status string `json:"status" binding:"required" example:"filed"`
}

// CreateDocumentRequest represents the create document request body.
type CreateDocumentRequest struct {
	FileID       uuid.UUID `json:"file_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ClaimID      uuid.UUID `json:"claim_id" binding:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
	DocumentType string    `json:"document_type" binding:"required" example:"damage_report"`
	Name         string    `json:"name" example:"Roof inspection photos"`
}

// ReviewDocumentRequest represents the review document request body.
type ReviewDocumentRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
	Notes  string `json:"notes" example:"Findings match the inspection report."`
}

// EditFindingsRequest represents the edit findings request body.
type EditFindingsRequest struct {
	Findings ClaimFindings `json:"findings" binding:"required"`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"jane.doe@coastal.com"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" example:"Jane Doe"`
	Role     domain.UserRole `json:"role" binding:"required" example:"adjuster"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    *string          `json:"email" example:"jane.smith@coastal.com"`
	FullName *string          `json:"full_name" example:"Jane Smith"`
	Role     *domain.UserRole `json:"role" example:"adjuster"`
	IsActive *bool            `json:"is_active" example:"true"`
}

// CreateTenantRequest represents the create tenant request body.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required" example:"Coastal Adjusters LLC"`
	Slug string `json:"slug" binding:"required" example:"coastal-adjusters"`
}

// UpdateTenantRequest represents the update tenant request body.
type UpdateTenantRequest struct {
	Name     *string `json:"name" example:"Coastal Adjusters Group"`
	Slug     *string `json:"slug" example:"coastal-group"`
	IsActive *bool   `json:"is_active" example:"false"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-09-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// FileWithDownloadURL represents a file with its download URL.
type FileWithDownloadURL struct {
	File        domain.FileMeta `json:"file"`
	DownloadURL string          `json:"download_url" example:"https://s3.amazonaws.com/claimguard-uploads/...?X-Amz-Signature=..."`
}

// BatchUploadResult represents the result of a single file in batch upload.
type BatchUploadResult struct {
	File    *domain.FileMeta `json:"file"`
	Success bool             `json:"success" example:"true"`
	Error   *string          `json:"error" example:"unsupported file type"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

// --- Findings Schema (for documentation) ---

// ClaimFindings represents the consensus findings structure.
type ClaimFindings struct {
	DocumentType  string                 `json:"document_type" example:"damage_report"`
	Category      string                 `json:"category" example:"structural"`
	SuggestedName string                 `json:"suggested_name" example:"Roof Inspection Report 2025-09-12"`
	Dates         []string               `json:"dates" example:"2025-09-12"`
	Amounts       []FindingAmount        `json:"amounts"`
	Entities      map[string]string      `json:"entities"`
	Damage        *DamageFinding         `json:"damage,omitempty"`
	Anomalies     []string               `json:"anomalies" example:"date inconsistency between pages"`
	Contextual    map[string]interface{} `json:"contextual,omitempty"`
}

// FindingAmount represents a monetary amount extracted from a document.
type FindingAmount struct {
	Value float64 `json:"value" example:"42500.00"`
	Type  string  `json:"type" example:"estimated_repair_cost"`
}

// DamageFinding represents assessed damage extracted from a document.
type DamageFinding struct {
	Severity      string   `json:"severity" example:"severe"`
	Areas         []string `json:"areas" example:"roof,garage"`
	EstimatedCost float64  `json:"estimated_cost" example:"42500.00"`
}
