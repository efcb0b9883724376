package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// errorMapping ties one domain sentinel to its HTTP translation.
type errorMapping struct {
	err    error
	status int
	code   string
	msg    string
}

// domainErrorTable is ordered; the first errors.Is match wins. New
// sentinels in internal/domain need a row here or they fall through
// to INTERNAL_ERROR.
var domainErrorTable = []errorMapping{
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "resource not found"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "forbidden"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"},
	{domain.ErrTenantInactive, http.StatusForbidden, "TENANT_INACTIVE", "tenant is inactive"},
	{domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE", "user is inactive"},
	{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"},
	{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"},
	{domain.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL", "email already exists for this tenant"},
	{domain.ErrDuplicateTenantSlug, http.StatusConflict, "DUPLICATE_SLUG", "tenant slug already exists"},
	{domain.ErrUploadFailed, http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"},
	{domain.ErrPropertyNotFound, http.StatusNotFound, "PROPERTY_NOT_FOUND", "property not found"},
	{domain.ErrClaimNotFound, http.StatusNotFound, "CLAIM_NOT_FOUND", "claim not found"},
	{domain.ErrDuplicateClaimNumber, http.StatusConflict, "DUPLICATE_CLAIM_NUMBER", "claim number already exists for this tenant"},
	{domain.ErrInvalidPeril, http.StatusBadRequest, "INVALID_PERIL", "invalid peril; see documentation for the supported list"},
	{domain.ErrInvalidStatusChange, http.StatusBadRequest, "INVALID_STATUS_CHANGE", "claim cannot move to the requested status"},
	{domain.ErrDocumentNotFound, http.StatusNotFound, "DOCUMENT_NOT_FOUND", "document not found"},
	{domain.ErrDocumentAlreadyExists, http.StatusConflict, "DOCUMENT_ALREADY_EXISTS", "document already exists for this file"},
	{domain.ErrDocumentNotAnalyzed, http.StatusBadRequest, "DOCUMENT_NOT_ANALYZED", "document has not been analyzed yet"},
	{domain.ErrInsufficientRole, http.StatusForbidden, "INSUFFICIENT_ROLE", "insufficient role for this action"},
	{domain.ErrInvalidFindings, http.StatusBadRequest, "INVALID_FINDINGS", "findings do not match expected format"},
	{domain.ErrAnalysisUnavailable, http.StatusBadGateway, "ANALYSIS_UNAVAILABLE", "analysis unavailable, please retry"},
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	for _, m := range domainErrorTable {
		if errors.Is(err, m.err) {
			return m.status, m.code, m.msg
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
}

// extractAuthContext extracts tenant ID, user ID, and role from the request context.
// Returns false if auth context is missing (error response already written).
func extractAuthContext(c *gin.Context) (tenantID, userID uuid.UUID, role domain.UserRole, ok bool) {
	var err error
	tenantID, err = middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return uuid.Nil, uuid.Nil, "", false
	}
	userID, err = middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, uuid.Nil, "", false
	}
	role = domain.UserRole(middleware.GetRole(c))
	return tenantID, userID, role, true
}

// HandleError maps a domain error and sends the appropriate error response.
// 5xx causes are logged with the request ID; the client only ever sees the
// generic message so vendor and infra details stay out of responses.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
