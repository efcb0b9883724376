package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"claimguard/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendClaimStatusEmail(ctx context.Context, toEmail, toName, claimNumber, status string) error {
	subject := fmt.Sprintf("Claim %s is now %s", claimNumber, status)
	htmlBody := buildClaimStatusHTML(toName, claimNumber, status, s.frontendURL)
	textBody := fmt.Sprintf("Hi %s,\n\nYour claim %s has moved to status: %s.\n\nVisit %s to review the details.\n\nClaimGuard Team", toName, claimNumber, status, s.frontendURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendAnalysisFailedEmail(ctx context.Context, toEmail, toName, claimNumber, documentName string) error {
	subject := fmt.Sprintf("Document analysis failed for claim %s", claimNumber)
	htmlBody := buildAnalysisFailedHTML(toName, claimNumber, documentName, s.frontendURL)
	textBody := fmt.Sprintf("Hi %s,\n\nAutomated analysis of the document %q on claim %s could not be completed. You can retry the analysis or review the document manually.\n\nVisit %s for details.\n\nClaimGuard Team", toName, documentName, claimNumber, s.frontendURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildClaimStatusHTML(name, claimNumber, status, frontendURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Claim status update</h2>
  <p>Hi %s,</p>
  <p>Your claim <strong>%s</strong> has moved to status: <strong>%s</strong>.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Claim</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">ClaimGuard - Property Claim Platform</p>
</body>
</html>`, name, claimNumber, status, frontendURL)
}

func buildAnalysisFailedHTML(name, claimNumber, documentName, frontendURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Document analysis failed</h2>
  <p>Hi %s,</p>
  <p>Automated analysis of the document <strong>%s</strong> on claim <strong>%s</strong> could not be completed. You can retry the analysis or review the document manually.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open Dashboard</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">ClaimGuard - Property Claim Platform</p>
</body>
</html>`, name, documentName, claimNumber, frontendURL)
}
