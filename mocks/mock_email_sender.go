package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender stands in for port.EmailSender where the claim
// service tests assert notification calls.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendClaimStatusEmail(ctx context.Context, toEmail, toName, claimNumber, status string) error {
	return m.Called(ctx, toEmail, toName, claimNumber, status).Error(0)
}

func (m *MockEmailSender) SendAnalysisFailedEmail(ctx context.Context, toEmail, toName, claimNumber, documentName string) error {
	return m.Called(ctx, toEmail, toName, claimNumber, documentName).Error(0)
}
