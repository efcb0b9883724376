package analysis

import (
	"fmt"

	"claimguard/internal/port"
)

type registryEntry struct {
	desc     ProviderDescriptor
	analyzer port.DocumentAnalyzer
}

// Registry holds the set of available analysis providers. It is populated at
// startup (credential presence gates registration in the wiring) and
// read-only afterwards, so concurrent reads need no locking. A provider that
// is not registered can never be selected.
type Registry struct {
	entries []registryEntry
	byID    map[string]int
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]int)}
}

// Register adds a provider and its analyzer client. Duplicate or empty
// identifiers fail fast.
func (r *Registry) Register(desc ProviderDescriptor, analyzer port.DocumentAnalyzer) error {
	if desc.ID == "" {
		return fmt.Errorf("registering provider: empty identifier")
	}
	if analyzer == nil {
		return fmt.Errorf("registering provider %s: nil analyzer", desc.ID)
	}
	if _, exists := r.byID[desc.ID]; exists {
		return fmt.Errorf("registering provider %s: duplicate identifier", desc.ID)
	}
	r.byID[desc.ID] = len(r.entries)
	r.entries = append(r.entries, registryEntry{desc: desc, analyzer: analyzer})
	return nil
}

// List returns all registered descriptors in insertion order. The slice is a
// copy; callers may reorder it freely.
func (r *Registry) List() []ProviderDescriptor {
	out := make([]ProviderDescriptor, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.desc
	}
	return out
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) analyzer(id string) port.DocumentAnalyzer {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return r.entries[i].analyzer
}
