package analysis

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultSoloConfidence is used when a lone successful provider did not
	// report its own confidence.
	DefaultSoloConfidence = 0.70
	// SpecialistBonus is added to the agreement score when the damage
	// specialist provider contributed a successful result.
	SpecialistBonus = 0.10
	// MaxConfidence caps every consensus score; a merged record is never
	// reported as fully certain.
	MaxConfidence = 0.97
)

// Merge combines the successful results of one fan-out into a single
// consensus record. Results are processed in invocation order throughout, so
// merging the same input twice yields identical output. Returns
// *NoSuccessfulProviderError when no result succeeded.
func Merge(results []ProviderResult) (*ConsensusResult, error) {
	ok := make([]ProviderResult, 0, len(results))
	for _, r := range results {
		if r.Succeeded() {
			ok = append(ok, r)
		}
	}
	if len(ok) == 0 {
		return nil, &NoSuccessfulProviderError{Attempted: len(results)}
	}

	specialist := findSpecialist(ok)

	merged := Findings{
		DocumentType:  majorityVote(ok, func(f *Findings) string { return f.DocumentType }),
		Category:      majorityVote(ok, func(f *Findings) string { return f.Category }),
		Dates:         mergeDates(ok),
		Amounts:       mergeAmounts(ok),
		Entities:      lastWriteWins(ok, func(f *Findings) map[string]string { return f.Entities }),
		Damage:        mergeDamage(ok, specialist),
		Anomalies:     mergeAnomalies(ok, specialist),
		Contextual:    lastWriteWins(ok, func(f *Findings) map[string]string { return f.Contextual }),
		SuggestedName: longestName(ok),
	}

	confidence := scoreConfidence(ok, specialist != nil)
	merged.Confidence = confidence

	providers := make([]string, len(ok))
	for i, r := range ok {
		providers[i] = r.Descriptor.ID
	}

	return &ConsensusResult{
		Findings:    merged,
		Confidence:  confidence,
		Providers:   providers,
		Divergences: divergences(ok, &merged),
	}, nil
}

// findSpecialist returns the first successful result whose provider carries a
// real-time or anomaly-detection specialty tag, or nil.
func findSpecialist(ok []ProviderResult) *ProviderResult {
	for i := range ok {
		if ok[i].Descriptor.damageSpecialist() {
			return &ok[i]
		}
	}
	return nil
}

// majorityVote picks the most common non-empty value; ties go to the value
// encountered first.
func majorityVote(ok []ProviderResult, field func(*Findings) string) string {
	counts := make(map[string]int)
	var order []string
	for _, r := range ok {
		v := field(r.Findings)
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	winner := ""
	best := 0
	for _, v := range order {
		if counts[v] > best {
			winner = v
			best = counts[v]
		}
	}
	return winner
}

// mergeDates unions all reported dates, deduplicated, ascending
// lexicographic (ISO date string) order.
func mergeDates(ok []ProviderResult) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, r := range ok {
		for _, d := range r.Findings.Dates {
			if d == "" || seen[d] {
				continue
			}
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}

// mergeAmounts unions amounts deduplicated by the (value, type) pair; the
// first occurrence wins when later providers repeat a pair.
func mergeAmounts(ok []ProviderResult) []MonetaryAmount {
	type key struct {
		value float64
		typ   string
	}
	seen := make(map[key]bool)
	var amounts []MonetaryAmount
	for _, r := range ok {
		for _, a := range r.Findings.Amounts {
			k := key{value: a.Value, typ: a.Type}
			if seen[k] {
				continue
			}
			seen[k] = true
			amounts = append(amounts, a)
		}
	}
	return amounts
}

// lastWriteWins shallow-merges provider maps in invocation order; later
// providers overwrite earlier ones on key collision. Entity and contextual
// extraction are treated as additive, not votable.
func lastWriteWins(ok []ProviderResult, field func(*Findings) map[string]string) map[string]string {
	var merged map[string]string
	for _, r := range ok {
		m := field(r.Findings)
		if len(m) == 0 {
			continue
		}
		if merged == nil {
			merged = make(map[string]string)
		}
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// mergeDamage takes the specialist's assessment verbatim when present;
// otherwise it synthesizes severity by majority vote and averages the cost
// estimates of every provider that reported one.
func mergeDamage(ok []ProviderResult, specialist *ProviderResult) *DamageAssessment {
	if specialist != nil && specialist.Findings.Damage != nil {
		d := *specialist.Findings.Damage
		if specialist.Findings.Damage.EstimatedCost != nil {
			cost := *specialist.Findings.Damage.EstimatedCost
			d.EstimatedCost = &cost
		}
		return &d
	}

	var reporters []ProviderResult
	for _, r := range ok {
		if r.Findings.Damage != nil {
			reporters = append(reporters, r)
		}
	}
	if len(reporters) == 0 {
		return nil
	}

	severity := majorityVote(reporters, func(f *Findings) string { return f.Damage.Severity })

	description := ""
	for _, r := range reporters {
		if r.Findings.Damage.Description != "" {
			description = r.Findings.Damage.Description
			break
		}
	}

	var costSum float64
	costCount := 0
	for _, r := range reporters {
		if r.Findings.Damage.EstimatedCost != nil {
			costSum += *r.Findings.Damage.EstimatedCost
			costCount++
		}
	}

	merged := &DamageAssessment{Severity: severity, Description: description}
	if costCount > 0 {
		avg := costSum / float64(costCount)
		merged.EstimatedCost = &avg
	}
	return merged
}

// mergeAnomalies takes the specialist's findings verbatim when present;
// otherwise unions all anomalies deduplicated by full-value equality.
func mergeAnomalies(ok []ProviderResult, specialist *ProviderResult) []string {
	if specialist != nil && len(specialist.Findings.Anomalies) > 0 {
		out := make([]string, len(specialist.Findings.Anomalies))
		copy(out, specialist.Findings.Anomalies)
		return out
	}

	seen := make(map[string]bool)
	var anomalies []string
	for _, r := range ok {
		for _, a := range r.Findings.Anomalies {
			if a == "" || seen[a] {
				continue
			}
			seen[a] = true
			anomalies = append(anomalies, a)
		}
	}
	return anomalies
}

// longestName picks the longest suggested name across providers, a proxy for
// the most descriptive one. Equal lengths keep the earlier candidate.
func longestName(ok []ProviderResult) string {
	name := ""
	for _, r := range ok {
		if len(r.Findings.SuggestedName) > len(name) {
			name = r.Findings.SuggestedName
		}
	}
	return name
}

// coreFields are the fields the agreement ratio is computed over.
var coreFields = []string{"document_type", "category", "dates", "amounts"}

// scoreConfidence computes the aggregate confidence. One provider: its own
// self-reported confidence (or DefaultSoloConfidence when absent). Several:
// the per-field agreement ratio averaged over the core fields, plus
// SpecialistBonus when the specialist participated. Always strictly between
// 0 and MaxConfidence inclusive.
func scoreConfidence(ok []ProviderResult, specialistPresent bool) float64 {
	if len(ok) == 1 {
		c := ok[0].Findings.Confidence
		if c <= 0 {
			c = DefaultSoloConfidence
		}
		return capConfidence(c)
	}

	n := float64(len(ok))
	var sum float64
	for _, field := range coreFields {
		unique := make(map[string]bool)
		for _, r := range ok {
			unique[serializeField(r.Findings, field)] = true
		}
		sum += (n - float64(len(unique)) + 1) / n
	}
	score := sum / float64(len(coreFields))

	if specialistPresent {
		score += SpecialistBonus
	}
	return capConfidence(score)
}

func capConfidence(c float64) float64 {
	if c > MaxConfidence {
		return MaxConfidence
	}
	return c
}

// serializeField canonicalizes one comparable field of a findings record so
// agreement and divergence checks use serialized-value equality.
func serializeField(f *Findings, field string) string {
	switch field {
	case "document_type":
		return f.DocumentType
	case "category":
		return f.Category
	case "suggested_name":
		return f.SuggestedName
	case "dates":
		if len(f.Dates) == 0 {
			return ""
		}
		return strings.Join(f.Dates, ",")
	case "amounts":
		if len(f.Amounts) == 0 {
			return ""
		}
		b, _ := json.Marshal(f.Amounts)
		return string(b)
	case "damage_assessment.severity":
		if f.Damage == nil {
			return ""
		}
		return f.Damage.Severity
	case "anomalies":
		if len(f.Anomalies) == 0 {
			return ""
		}
		return strings.Join(f.Anomalies, ",")
	}
	return ""
}

// divergenceFields are checked, in order, when building the audit trail.
var divergenceFields = []string{
	"document_type", "category", "dates", "amounts",
	"damage_assessment.severity", "anomalies", "suggested_name",
}

// divergences records, per participating provider, every field whose merged
// value differs from what that provider reported. Fields the provider did not
// report are skipped.
func divergences(ok []ProviderResult, merged *Findings) []Divergence {
	var out []Divergence
	for _, r := range ok {
		for _, field := range divergenceFields {
			reported := serializeField(r.Findings, field)
			if reported == "" {
				continue
			}
			mergedVal := serializeField(merged, field)
			if reported != mergedVal {
				out = append(out, Divergence{
					Provider: r.Descriptor.ID,
					Field:    field,
					Reported: reported,
					Merged:   mergedVal,
				})
			}
		}
	}
	return out
}

// String implements fmt.Stringer for log lines; full findings stay out of
// operator logs.
func (c *ConsensusResult) String() string {
	return fmt.Sprintf("consensus{providers=%s confidence=%.2f divergences=%d}",
		strings.Join(c.Providers, ","), c.Confidence, len(c.Divergences))
}
