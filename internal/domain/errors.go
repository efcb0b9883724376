package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrTenantInactive        = errors.New("tenant is inactive")
	ErrUserInactive          = errors.New("user is inactive")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrDuplicateEmail        = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug   = errors.New("tenant slug already exists")
	ErrUploadFailed          = errors.New("file upload to storage failed")
	ErrPropertyNotFound      = errors.New("property not found")
	ErrClaimNotFound         = errors.New("claim not found")
	ErrDuplicateClaimNumber  = errors.New("claim number already exists for this tenant")
	ErrInvalidPeril          = errors.New("invalid peril")
	ErrInvalidStatusChange   = errors.New("invalid claim status transition")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrDocumentAlreadyExists = errors.New("document already exists for this file")
	ErrDocumentNotAnalyzed   = errors.New("document has not been analyzed yet")
	ErrInsufficientRole      = errors.New("insufficient role for this action")
	ErrInvalidFindings       = errors.New("findings do not match expected format")
	// ErrAnalysisUnavailable surfaces when no AI provider returned a usable
	// result. It is the only analysis failure users see; vendor errors stay
	// in operator logs.
	ErrAnalysisUnavailable = errors.New("analysis unavailable, please retry")
)
