package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
	"claimguard/internal/handler"
	"claimguard/internal/middleware"
	"claimguard/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authedContext builds a test context carrying tenant and user identity the
// way AuthMiddleware does.
func authedContext(w *httptest.ResponseRecorder, tenantID, userID uuid.UUID, role domain.UserRole) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextKeyTenantID, tenantID)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, string(role))
	return c
}

func TestClaimHandler_Create_Success(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	tenantID := uuid.New()
	userID := uuid.New()
	propertyID := uuid.New()

	mockClaims.On("Create", mock.Anything, tenantID, userID, mock.AnythingOfType("service.CreateClaimInput")).
		Return(&domain.Claim{
			ID:          uuid.New(),
			TenantID:    tenantID,
			PropertyID:  propertyID,
			ClaimNumber: "CLM-2025-0042",
			Peril:       domain.PerilHurricane,
			Status:      domain.ClaimStatusDraft,
		}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"property_id":  propertyID,
		"claim_number": "CLM-2025-0042",
		"peril":        "hurricane",
	})

	w := httptest.NewRecorder()
	c := authedContext(w, tenantID, userID, domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/claims", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockClaims.AssertExpectations(t)
}

func TestClaimHandler_Create_MissingFields(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	body, _ := json.Marshal(map[string]string{"description": "no claim number"})

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), uuid.New(), domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/claims", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockClaims.AssertNotCalled(t, "Create")
}

func TestClaimHandler_Create_InvalidPeril(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	mockClaims.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("service.CreateClaimInput")).
		Return(nil, domain.ErrInvalidPeril)

	body, _ := json.Marshal(map[string]interface{}{
		"property_id":  uuid.New(),
		"claim_number": "CLM-2025-0042",
		"peril":        "earthquake",
	})

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), uuid.New(), domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/claims", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_PERIL", resp.Error.Code)
}

func TestClaimHandler_Create_Unauthenticated(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/claims", http.NoBody)

	h.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockClaims.AssertNotCalled(t, "Create")
}

func TestClaimHandler_GetByID_NotFound(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	tenantID := uuid.New()
	claimID := uuid.New()
	mockClaims.On("GetByID", mock.Anything, tenantID, claimID).Return(nil, domain.ErrClaimNotFound)

	w := httptest.NewRecorder()
	c := authedContext(w, tenantID, uuid.New(), domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/claims/"+claimID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: claimID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClaimHandler_GetByID_InvalidID(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), uuid.New(), domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/claims/not-a-uuid", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockClaims.AssertNotCalled(t, "GetByID")
}

func TestClaimHandler_List_WithFilters(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	tenantID := uuid.New()
	expected := []domain.Claim{
		{ID: uuid.New(), TenantID: tenantID, Peril: domain.PerilFlood, Status: domain.ClaimStatusFiled},
	}

	mockClaims.On("List", mock.Anything, tenantID,
		domain.ClaimFilters{Status: domain.ClaimStatusFiled, Peril: domain.PerilFlood}, 0, 20).
		Return(expected, 1, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, tenantID, uuid.New(), domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/claims?status=filed&peril=flood", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Meta.Total)
	mockClaims.AssertExpectations(t)
}

func TestClaimHandler_List_InvalidPerilFilter(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), uuid.New(), domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/claims?peril=tsunami", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockClaims.AssertNotCalled(t, "List")
}

func TestClaimHandler_List_ByProperty(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	tenantID := uuid.New()
	propertyID := uuid.New()

	mockClaims.On("ListByProperty", mock.Anything, tenantID, propertyID, 0, 20).
		Return([]domain.Claim{}, 0, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, tenantID, uuid.New(), domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/claims?property_id="+propertyID.String(), http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockClaims.AssertExpectations(t)
}

func TestClaimHandler_ChangeStatus_Success(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	tenantID := uuid.New()
	userID := uuid.New()
	claimID := uuid.New()

	mockClaims.On("ChangeStatus", mock.Anything, tenantID, claimID, userID, domain.RoleAdjuster, domain.ClaimStatusApproved).
		Return(&domain.Claim{ID: claimID, TenantID: tenantID, Status: domain.ClaimStatusApproved}, nil)

	body, _ := json.Marshal(map[string]string{"status": "approved"})

	w := httptest.NewRecorder()
	c := authedContext(w, tenantID, userID, domain.RoleAdjuster)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/claims/"+claimID.String()+"/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: claimID.String()}}

	h.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockClaims.AssertExpectations(t)
}

func TestClaimHandler_ChangeStatus_InsufficientRole(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	tenantID := uuid.New()
	claimID := uuid.New()

	mockClaims.On("ChangeStatus", mock.Anything, tenantID, claimID, mock.Anything, domain.RoleMember, domain.ClaimStatusApproved).
		Return(nil, domain.ErrInsufficientRole)

	body, _ := json.Marshal(map[string]string{"status": "approved"})

	w := httptest.NewRecorder()
	c := authedContext(w, tenantID, uuid.New(), domain.RoleMember)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/claims/"+claimID.String()+"/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: claimID.String()}}

	h.ChangeStatus(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestClaimHandler_Delete_Forbidden(t *testing.T) {
	mockClaims := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockClaims)

	tenantID := uuid.New()
	claimID := uuid.New()

	mockClaims.On("Delete", mock.Anything, tenantID, claimID, domain.RoleAdjuster).
		Return(domain.ErrInsufficientRole)

	w := httptest.NewRecorder()
	c := authedContext(w, tenantID, uuid.New(), domain.RoleAdjuster)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/claims/"+claimID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: claimID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
