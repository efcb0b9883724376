package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated organizational tenant.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Property represents an insured property within a tenant.
type Property struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TenantID    uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Address     string    `db:"address" json:"address"`
	City        string    `db:"city" json:"city"`
	County      string    `db:"county" json:"county"`
	State       string    `db:"state" json:"state"`
	PostalCode  string    `db:"postal_code" json:"postal_code"`
	ParcelID    string    `db:"parcel_id" json:"parcel_id"`
	YearBuilt   int       `db:"year_built" json:"year_built"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Claim represents an insurance claim filed against a property.
type Claim struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	TenantID     uuid.UUID   `db:"tenant_id" json:"tenant_id"`
	PropertyID   uuid.UUID   `db:"property_id" json:"property_id"`
	ClaimNumber  string      `db:"claim_number" json:"claim_number"`
	Peril        Peril       `db:"peril" json:"peril"`
	Status       ClaimStatus `db:"status" json:"status"`
	Description  string      `db:"description" json:"description"`
	IncidentDate *time.Time  `db:"incident_date" json:"incident_date"`
	AssignedTo   *uuid.UUID  `db:"assigned_to" json:"assigned_to"`
	CreatedBy    uuid.UUID   `db:"created_by" json:"created_by"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

// ClaimFilters narrows claim listing queries.
type ClaimFilters struct {
	Status ClaimStatus
	Peril  Peril
}

// ClaimDocument represents a claim document and its AI analysis lifecycle.
// Findings, Divergences, and Providers are populated from the consensus
// result once analysis completes.
type ClaimDocument struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	TenantID         uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	ClaimID          uuid.UUID       `db:"claim_id" json:"claim_id"`
	FileID           uuid.UUID       `db:"file_id" json:"file_id"`
	Name             string          `db:"name" json:"name"`
	DocumentType     string          `db:"document_type" json:"document_type"`
	Findings         json.RawMessage `db:"findings" json:"findings"`
	Confidence       float64         `db:"confidence" json:"confidence"`
	Divergences      json.RawMessage `db:"divergences" json:"divergences"`
	Providers        json.RawMessage `db:"providers" json:"providers"`
	AnalysisStatus   AnalysisStatus  `db:"analysis_status" json:"analysis_status"`
	AnalysisError    string          `db:"analysis_error" json:"analysis_error"`
	AnalysisAttempts int             `db:"analysis_attempts" json:"analysis_attempts"`
	RetryAfter       *time.Time      `db:"retry_after" json:"retry_after"`
	AnalyzedAt       *time.Time      `db:"analyzed_at" json:"analyzed_at"`
	ReviewStatus     ReviewStatus    `db:"review_status" json:"review_status"`
	ReviewedBy       *uuid.UUID      `db:"reviewed_by" json:"reviewed_by"`
	ReviewedAt       *time.Time      `db:"reviewed_at" json:"reviewed_at"`
	ReviewerNotes    string          `db:"reviewer_notes" json:"reviewer_notes"`
	CreatedBy        uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// FileMeta stores metadata about an uploaded file.
type FileMeta struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// County is a Florida county reference entry used to validate property
// records and seed jurisdiction context.
type County struct {
	FIPSCode   string `db:"fips_code" json:"fips_code"`
	Name       string `db:"name" json:"name"`
	Region     string `db:"region" json:"region"`
	Coastal    bool   `db:"coastal" json:"coastal"`
	WindBorne  bool   `db:"wind_borne" json:"wind_borne"`
}

// ReportFilters narrows report aggregation queries.
type ReportFilters struct {
	From   *time.Time
	To     *time.Time
	Peril  Peril
	Status ClaimStatus
	Offset int
	Limit  int
}

// ClaimRegisterRow is one row of the tenant claims register report.
type ClaimRegisterRow struct {
	ClaimNumber   string      `db:"claim_number" json:"claim_number"`
	Peril         Peril       `db:"peril" json:"peril"`
	Status        ClaimStatus `db:"status" json:"status"`
	Address       string      `db:"address" json:"address"`
	County        string      `db:"county" json:"county"`
	IncidentDate  *time.Time  `db:"incident_date" json:"incident_date"`
	DocumentCount int         `db:"document_count" json:"document_count"`
	AvgConfidence float64     `db:"avg_confidence" json:"avg_confidence"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
}

// StatusSummaryRow counts claims by status.
type StatusSummaryRow struct {
	Status ClaimStatus `db:"status" json:"status"`
	Count  int         `db:"count" json:"count"`
}

// PerilSummaryRow counts claims by peril.
type PerilSummaryRow struct {
	Peril Peril `db:"peril" json:"peril"`
	Count int   `db:"count" json:"count"`
}

// AnalysisOverviewRow aggregates document analysis outcomes for a tenant.
type AnalysisOverviewRow struct {
	TotalDocuments int     `db:"total_documents" json:"total_documents"`
	Completed      int     `db:"completed" json:"completed"`
	Failed         int     `db:"failed" json:"failed"`
	Queued         int     `db:"queued" json:"queued"`
	AvgConfidence  float64 `db:"avg_confidence" json:"avg_confidence"`
}
