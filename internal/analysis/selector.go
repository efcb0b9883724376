package analysis

import (
	"sort"
	"strings"
)

const (
	// disasterPanelSize is how many providers a disaster-peril request gets.
	disasterPanelSize = 3
	// defaultPanelSize is how many providers an ordinary request gets.
	defaultPanelSize = 2
)

// Selector picks which registered providers to invoke for a request. It is a
// pure function of (request, registry): no I/O, ties broken by registry
// insertion order via stable sorts.
type Selector struct {
	registry *Registry
}

// NewSelector creates a Selector over the given registry.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// Select returns the ordered providers to invoke for the request.
//
// Disaster-peril claims rank damage specialists first and legal/regulatory
// reasoners second and take three opinions. Policy and legal documents get
// every registered provider. Everything else goes to the two providers with
// the highest confidence priors.
func (s *Selector) Select(req Request) []ProviderDescriptor {
	providers := s.registry.List()

	if req.DisasterPeril() {
		sort.SliceStable(providers, func(i, j int) bool {
			return perilRank(providers[i]) < perilRank(providers[j])
		})
		return capPanel(providers, disasterPanelSize)
	}

	switch strings.ToLower(req.DocumentType) {
	case "policy", "legal":
		return providers
	}

	sort.SliceStable(providers, func(i, j int) bool {
		return providers[i].ConfidencePrior > providers[j].ConfidencePrior
	})
	return capPanel(providers, defaultPanelSize)
}

func perilRank(d ProviderDescriptor) int {
	switch {
	case d.HasSpecialty(SpecialtyRealTime) || d.HasSpecialty(SpecialtyAnomalyDetection):
		return 0
	case d.HasSpecialty(SpecialtyComplexReasoning) || d.HasSpecialty(SpecialtyRegulatory):
		return 1
	}
	return 2
}

func capPanel(providers []ProviderDescriptor, n int) []ProviderDescriptor {
	if len(providers) > n {
		return providers[:n]
	}
	return providers
}
