package validator

import (
	"fmt"
	"time"

	"claimguard/internal/analysis"
)

// requiredFieldsRule checks that the core classification fields are present.
type requiredFieldsRule struct{}

func (requiredFieldsRule) RuleKey() string { return "required_fields" }

func (requiredFieldsRule) Validate(f *analysis.Findings) []Issue {
	var issues []Issue
	if f.DocumentType == "" {
		issues = append(issues, Issue{
			RuleKey:   "required_fields",
			FieldPath: "document_type",
			Severity:  SeverityError,
			Message:   "document type is empty",
		})
	}
	if f.Category == "" {
		issues = append(issues, Issue{
			RuleKey:   "required_fields",
			FieldPath: "category",
			Severity:  SeverityWarning,
			Message:   "category is empty",
		})
	}
	return issues
}

// dateFormatRule checks that extracted dates are ISO formatted and not in the future.
type dateFormatRule struct{}

func (dateFormatRule) RuleKey() string { return "date_format" }

func (dateFormatRule) Validate(f *analysis.Findings) []Issue {
	var issues []Issue
	now := time.Now().UTC()
	for i, d := range f.Dates {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			issues = append(issues, Issue{
				RuleKey:   "date_format",
				FieldPath: fmt.Sprintf("dates[%d]", i),
				Severity:  SeverityError,
				Message:   fmt.Sprintf("date %q is not in YYYY-MM-DD format", d),
			})
			continue
		}
		if parsed.After(now) {
			issues = append(issues, Issue{
				RuleKey:   "date_format",
				FieldPath: fmt.Sprintf("dates[%d]", i),
				Severity:  SeverityWarning,
				Message:   fmt.Sprintf("date %q is in the future", d),
			})
		}
	}
	return issues
}

// amountsRule checks that monetary amounts are labeled and non-negative.
type amountsRule struct{}

func (amountsRule) RuleKey() string { return "amounts" }

func (amountsRule) Validate(f *analysis.Findings) []Issue {
	var issues []Issue
	for i, a := range f.Amounts {
		if a.Value < 0 {
			issues = append(issues, Issue{
				RuleKey:   "amounts",
				FieldPath: fmt.Sprintf("amounts[%d].value", i),
				Severity:  SeverityError,
				Message:   fmt.Sprintf("amount %.2f is negative", a.Value),
			})
		}
		if a.Type == "" {
			issues = append(issues, Issue{
				RuleKey:   "amounts",
				FieldPath: fmt.Sprintf("amounts[%d].type", i),
				Severity:  SeverityWarning,
				Message:   "amount has no type label",
			})
		}
	}
	return issues
}

// damageSeverities are the accepted damage assessment severity levels.
var damageSeverities = map[string]bool{
	"minor":      true,
	"moderate":   true,
	"severe":     true,
	"total_loss": true,
}

// damageRule checks damage assessment consistency.
type damageRule struct{}

func (damageRule) RuleKey() string { return "damage_assessment" }

func (damageRule) Validate(f *analysis.Findings) []Issue {
	if f.Damage == nil {
		return nil
	}
	var issues []Issue
	if !damageSeverities[f.Damage.Severity] {
		issues = append(issues, Issue{
			RuleKey:   "damage_assessment",
			FieldPath: "damage_assessment.severity",
			Severity:  SeverityError,
			Message:   fmt.Sprintf("severity %q is not one of minor/moderate/severe/total_loss", f.Damage.Severity),
		})
	}
	if f.Damage.EstimatedCost != nil && *f.Damage.EstimatedCost < 0 {
		issues = append(issues, Issue{
			RuleKey:   "damage_assessment",
			FieldPath: "damage_assessment.estimated_cost",
			Severity:  SeverityError,
			Message:   fmt.Sprintf("estimated cost %.2f is negative", *f.Damage.EstimatedCost),
		})
	}
	return issues
}

// confidenceRule checks the self-reported confidence is in range.
type confidenceRule struct{}

func (confidenceRule) RuleKey() string { return "confidence_range" }

func (confidenceRule) Validate(f *analysis.Findings) []Issue {
	if f.Confidence < 0 || f.Confidence > 1 {
		return []Issue{{
			RuleKey:   "confidence_range",
			FieldPath: "confidence",
			Severity:  SeverityWarning,
			Message:   fmt.Sprintf("confidence %.2f is outside [0,1]", f.Confidence),
		}}
	}
	return nil
}
