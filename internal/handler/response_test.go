package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"claimguard/internal/domain"
	"claimguard/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"claim not found", domain.ErrClaimNotFound, http.StatusNotFound, "CLAIM_NOT_FOUND"},
		{"property not found", domain.ErrPropertyNotFound, http.StatusNotFound, "PROPERTY_NOT_FOUND"},
		{"duplicate claim number", domain.ErrDuplicateClaimNumber, http.StatusConflict, "DUPLICATE_CLAIM_NUMBER"},
		{"invalid peril", domain.ErrInvalidPeril, http.StatusBadRequest, "INVALID_PERIL"},
		{"invalid status change", domain.ErrInvalidStatusChange, http.StatusBadRequest, "INVALID_STATUS_CHANGE"},
		{"not analyzed", domain.ErrDocumentNotAnalyzed, http.StatusBadRequest, "DOCUMENT_NOT_ANALYZED"},
		{"analysis unavailable", domain.ErrAnalysisUnavailable, http.StatusBadGateway, "ANALYSIS_UNAVAILABLE"},
		{"tenant inactive", domain.ErrTenantInactive, http.StatusForbidden, "TENANT_INACTIVE"},
		{"duplicate slug", domain.ErrDuplicateTenantSlug, http.StatusConflict, "DUPLICATE_SLUG"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("loading claim: %w", domain.ErrClaimNotFound)
	status, code, _ := handler.MapDomainError(wrapped)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "CLAIM_NOT_FOUND", code)
}

func TestMapDomainError_UnknownFallsBackToInternal(t *testing.T) {
	status, code, msg := handler.MapDomainError(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", code)
	assert.NotContains(t, msg, "pq:")
}
