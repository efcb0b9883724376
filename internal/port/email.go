package port

import "context"

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendClaimStatusEmail(ctx context.Context, toEmail, toName, claimNumber, status string) error
	SendAnalysisFailedEmail(ctx context.Context, toEmail, toName, claimNumber, documentName string) error
}
