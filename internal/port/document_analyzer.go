package port

import (
	"context"
	"encoding/json"
)

// AnalyzeInput carries one document to a single AI analysis provider.
type AnalyzeInput struct {
	FileBytes    []byte
	ContentType  string
	DocumentType string
	ContextFlags map[string]string
}

// AnalyzeOutput is a provider's raw reply. RawFindings is the structured
// JSON object the provider returned; decoding it into the findings schema is
// the invoker's job so malformed bodies are handled in one place.
type AnalyzeOutput struct {
	RawFindings json.RawMessage
	ModelUsed   string
	PromptUsed  string
}

// DocumentAnalyzer abstracts one AI vision/text analysis backend.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error)
}
