package validator

import "claimguard/internal/analysis"

// Engine runs the registered rules against a findings record.
type Engine struct {
	registry *Registry
}

// NewEngine creates a validation engine over a registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// NewDefaultEngine creates an engine with the built-in findings rules.
func NewDefaultEngine() *Engine {
	reg := NewRegistry()
	reg.Register(requiredFieldsRule{})
	reg.Register(dateFormatRule{})
	reg.Register(amountsRule{})
	reg.Register(damageRule{})
	reg.Register(confidenceRule{})
	return NewEngine(reg)
}

// Validate runs all rules and returns the collected issues. An empty slice
// means the findings passed every rule.
func (e *Engine) Validate(f *analysis.Findings) []Issue {
	var issues []Issue
	for _, v := range e.registry.All() {
		issues = append(issues, v.Validate(f)...)
	}
	return issues
}
