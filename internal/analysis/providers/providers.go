package providers

import (
	"log"

	"claimguard/internal/analysis"
	"claimguard/internal/analysis/claude"
	"claimguard/internal/analysis/gemini"
	"claimguard/internal/analysis/grok"
	"claimguard/internal/analysis/openai"
	"claimguard/internal/config"
	"claimguard/internal/port"
)

// factory creates a DocumentAnalyzer from a provider config.
type factory func(cfg *config.AnalyzerProviderConfig) port.DocumentAnalyzer

// providerEntry binds a provider ID to its display name and client factory.
// Registration order here fixes the registry insertion order, which the
// selector uses to break ranking ties.
type providerEntry struct {
	id      string
	name    string
	cfg     func(a *config.AnalysisConfig) *config.AnalyzerProviderConfig
	factory factory
}

var entries = []providerEntry{
	{
		id:   "openai",
		name: "OpenAI GPT",
		cfg:  func(a *config.AnalysisConfig) *config.AnalyzerProviderConfig { return &a.OpenAI },
		factory: func(cfg *config.AnalyzerProviderConfig) port.DocumentAnalyzer {
			return openai.NewAnalyzer(cfg)
		},
	},
	{
		id:   "claude",
		name: "Anthropic Claude",
		cfg:  func(a *config.AnalysisConfig) *config.AnalyzerProviderConfig { return &a.Claude },
		factory: func(cfg *config.AnalyzerProviderConfig) port.DocumentAnalyzer {
			return claude.NewAnalyzer(cfg)
		},
	},
	{
		id:   "gemini",
		name: "Google Gemini",
		cfg:  func(a *config.AnalysisConfig) *config.AnalyzerProviderConfig { return &a.Gemini },
		factory: func(cfg *config.AnalyzerProviderConfig) port.DocumentAnalyzer {
			return gemini.NewAnalyzer(cfg)
		},
	},
	{
		id:   "grok",
		name: "xAI Grok",
		cfg:  func(a *config.AnalysisConfig) *config.AnalyzerProviderConfig { return &a.Grok },
		factory: func(cfg *config.AnalyzerProviderConfig) port.DocumentAnalyzer {
			return grok.NewAnalyzer(cfg)
		},
	},
}

// BuildRegistry creates a provider registry from configuration. Providers
// without an API key are skipped, so a missing credential can never surface
// as a runtime invocation failure.
func BuildRegistry(cfg *config.AnalysisConfig) (*analysis.Registry, error) {
	reg := analysis.NewRegistry()
	for _, e := range entries {
		pc := e.cfg(cfg)
		if !pc.Enabled() {
			log.Printf("providers.BuildRegistry: skipping %s (no API key configured)", e.id)
			continue
		}
		desc := analysis.ProviderDescriptor{
			ID:              e.id,
			Name:            e.name,
			ConfidencePrior: pc.ConfidencePrior,
			Specialties:     specialties(pc.Specialties),
		}
		if err := reg.Register(desc, e.factory(pc)); err != nil {
			return nil, err
		}
		log.Printf("providers.BuildRegistry: registered %s (model=%s, prior=%.2f)", e.id, pc.DefaultModel, pc.ConfidencePrior)
	}
	return reg, nil
}

func specialties(raw []string) []analysis.Specialty {
	out := make([]analysis.Specialty, 0, len(raw))
	for _, s := range raw {
		out = append(out, analysis.Specialty(s))
	}
	return out
}
