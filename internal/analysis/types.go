package analysis

import "encoding/json"

// Specialty is a declared capability tag on a provider. Authority rules in the
// merger and ranking rules in the selector key off these tags, never off
// provider names.
type Specialty string

const (
	SpecialtyRealTime         Specialty = "real-time"
	SpecialtyAnomalyDetection Specialty = "anomaly-detection"
	SpecialtyComplexReasoning Specialty = "complex-reasoning"
	SpecialtyRegulatory       Specialty = "regulatory"
	SpecialtyVision           Specialty = "vision"
)

// ProviderDescriptor describes a registered analysis backend. Descriptors are
// immutable after registration.
type ProviderDescriptor struct {
	ID              string
	Name            string
	ConfidencePrior float64
	Specialties     []Specialty
}

// HasSpecialty reports whether the provider declares the given specialty tag.
func (d ProviderDescriptor) HasSpecialty(s Specialty) bool {
	for _, spec := range d.Specialties {
		if spec == s {
			return true
		}
	}
	return false
}

// damageSpecialist reports whether this provider's damage and anomaly findings
// are treated as authoritative over majority vote.
func (d ProviderDescriptor) damageSpecialist() bool {
	return d.HasSpecialty(SpecialtyRealTime) || d.HasSpecialty(SpecialtyAnomalyDetection)
}

// Request carries one document through selection, invocation, and merging.
// It is read-only once constructed.
type Request struct {
	FileBytes    []byte
	ContentType  string
	DocumentType string
	ContextFlags map[string]string
}

// disasterPerilFlags are the context flag keys that mark a request as a
// disaster-peril claim for provider selection.
var disasterPerilFlags = []string{"hurricane", "flood"}

// DisasterPeril reports whether the request carries a disaster-peril context
// flag (hurricane or flood).
func (r Request) DisasterPeril() bool {
	for _, key := range disasterPerilFlags {
		if flagSet(r.ContextFlags[key]) {
			return true
		}
	}
	return false
}

func flagSet(v string) bool {
	switch v {
	case "true", "1", "yes":
		return true
	}
	return false
}

// MonetaryAmount is a single monetary figure extracted from a document,
// labeled with what kind of amount it is (claimed, deductible, estimate...).
type MonetaryAmount struct {
	Value float64 `json:"value"`
	Type  string  `json:"type"`
}

// DamageAssessment is a provider's damage verdict for the document.
type DamageAssessment struct {
	Severity      string   `json:"severity"`
	Description   string   `json:"description,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
}

// Findings is the structured output of a single provider, and likewise the
// shape of the merged consensus record. Fields the schema does not recognize
// land in Extra so no provider output is silently dropped.
type Findings struct {
	DocumentType  string                     `json:"document_type"`
	Category      string                     `json:"category"`
	Dates         []string                   `json:"dates"`
	Amounts       []MonetaryAmount           `json:"amounts"`
	Entities      map[string]string          `json:"entities"`
	Damage        *DamageAssessment          `json:"damage_assessment,omitempty"`
	Anomalies     []string                   `json:"anomalies"`
	Contextual    map[string]string          `json:"contextual"`
	SuggestedName string                     `json:"suggested_name"`
	Confidence    float64                    `json:"confidence"`
	Extra         map[string]json.RawMessage `json:"-"`
}

// findingsKeys are the JSON keys the Findings schema owns; anything else a
// provider returns goes to Extra.
var findingsKeys = []string{
	"document_type", "category", "dates", "amounts", "entities",
	"damage_assessment", "anomalies", "contextual", "suggested_name",
	"confidence",
}

// UnmarshalJSON decodes the known schema and buckets unrecognized fields
// into Extra.
func (f *Findings) UnmarshalJSON(data []byte) error {
	type plain Findings
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range findingsKeys {
		delete(raw, key)
	}

	*f = Findings(known)
	if len(raw) > 0 {
		f.Extra = raw
	}
	return nil
}

// ParseFindings decodes a provider's raw structured output into Findings.
// A body that is not a JSON object is an invocation failure for that
// provider, not a request failure.
func ParseFindings(raw json.RawMessage) (*Findings, error) {
	if len(raw) == 0 {
		return nil, errEmptyFindings
	}
	var f Findings
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ProviderResult is the outcome of one provider invocation. Exactly one of
// Findings or Err is set. The invoker owns results until they are handed to
// the merger; they are never mutated afterwards.
type ProviderResult struct {
	Descriptor ProviderDescriptor
	Findings   *Findings
	Model      string
	Err        error
}

// Succeeded reports whether this provider produced usable findings.
func (r ProviderResult) Succeeded() bool {
	return r.Err == nil && r.Findings != nil
}

// Divergence records a field where a participating provider's reported value
// differs from the merged consensus value. Preserved per result for
// explainability.
type Divergence struct {
	Provider string `json:"provider"`
	Field    string `json:"field"`
	Reported string `json:"reported"`
	Merged   string `json:"merged"`
}

// ConsensusResult is the merged record built from all successful provider
// results for one request. It is immutable once returned.
type ConsensusResult struct {
	Findings    Findings     `json:"findings"`
	Confidence  float64      `json:"confidence"`
	Providers   []string     `json:"providers"`
	Divergences []Divergence `json:"divergences"`
}
