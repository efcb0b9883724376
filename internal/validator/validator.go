package validator

import "claimguard/internal/analysis"

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding-level validation problem.
type Issue struct {
	RuleKey   string   `json:"rule_key"`
	FieldPath string   `json:"field_path"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
}

// Validator is the interface for a single built-in validation rule.
type Validator interface {
	Validate(f *analysis.Findings) []Issue
	RuleKey() string
}
