package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleAdjuster UserRole = "adjuster"
	RoleMember   UserRole = "member"
)

// ValidUserRoles lists every accepted role value.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:    true,
	RoleAdjuster: true,
	RoleMember:   true,
}

// FileStatus represents the lifecycle of an uploaded file.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)

// Peril classifies the cause of loss on a claim. Hurricane and flood are the
// disaster perils that steer AI provider selection toward damage specialists.
type Peril string

const (
	PerilHurricane Peril = "hurricane"
	PerilFlood     Peril = "flood"
	PerilWind      Peril = "wind"
	PerilFire      Peril = "fire"
	PerilHail      Peril = "hail"
	PerilOther     Peril = "other"
)

// ValidPerils lists every accepted peril value.
var ValidPerils = map[Peril]bool{
	PerilHurricane: true,
	PerilFlood:     true,
	PerilWind:      true,
	PerilFire:      true,
	PerilHail:      true,
	PerilOther:     true,
}

// DisasterPerils are the perils flagged as disaster context for analysis.
var DisasterPerils = map[Peril]bool{
	PerilHurricane: true,
	PerilFlood:     true,
}

// ClaimStatus is the claim lifecycle state.
type ClaimStatus string

const (
	ClaimStatusDraft       ClaimStatus = "draft"
	ClaimStatusFiled       ClaimStatus = "filed"
	ClaimStatusUnderReview ClaimStatus = "under_review"
	ClaimStatusApproved    ClaimStatus = "approved"
	ClaimStatusDenied      ClaimStatus = "denied"
	ClaimStatusClosed      ClaimStatus = "closed"
)

// claimTransitions defines the allowed claim status transitions.
var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusDraft:       {ClaimStatusFiled},
	ClaimStatusFiled:       {ClaimStatusUnderReview, ClaimStatusClosed},
	ClaimStatusUnderReview: {ClaimStatusApproved, ClaimStatusDenied},
	ClaimStatusApproved:    {ClaimStatusClosed},
	ClaimStatusDenied:      {ClaimStatusUnderReview, ClaimStatusClosed},
}

// CanTransition reports whether a claim may move from one status to another.
func CanTransition(from, to ClaimStatus) bool {
	for _, next := range claimTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AnalysisStatus is the AI analysis lifecycle of a claim document.
type AnalysisStatus string

const (
	AnalysisStatusQueued     AnalysisStatus = "queued"
	AnalysisStatusProcessing AnalysisStatus = "processing"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

// ReviewStatus is the human review state of an analyzed document.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// DocumentType names the recognized claim document categories. Free-form
// values are accepted; policy and legal documents get every provider opinion.
const (
	DocumentTypePolicy         = "policy"
	DocumentTypeLegal          = "legal"
	DocumentTypeEstimate       = "estimate"
	DocumentTypeInvoice        = "invoice"
	DocumentTypePhoto          = "photo"
	DocumentTypeCorrespondence = "correspondence"
)
