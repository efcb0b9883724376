package noop

import (
	"context"
	"log"

	"claimguard/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendClaimStatusEmail(_ context.Context, toEmail, toName, claimNumber, status string) error {
	log.Printf("[NOOP EMAIL] Claim status update for %s (%s): claim %s is now %s", toName, toEmail, claimNumber, status)
	return nil
}

func (s *noopSender) SendAnalysisFailedEmail(_ context.Context, toEmail, toName, claimNumber, documentName string) error {
	log.Printf("[NOOP EMAIL] Analysis failed for %s (%s): document %q on claim %s", toName, toEmail, documentName, claimNumber)
	return nil
}
