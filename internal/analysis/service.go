package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// Service runs the full pipeline for one document: select providers, invoke
// them concurrently, merge the successes. It is an explicitly constructed,
// dependency-injected object; tests substitute fake analyzers through the
// registry.
type Service struct {
	registry *Registry
	selector *Selector
	invoker  *Invoker
}

// NewService creates a Service over a populated registry.
func NewService(registry *Registry, cfg InvokerConfig) *Service {
	return &Service{
		registry: registry,
		selector: NewSelector(registry),
		invoker:  NewInvoker(registry, cfg),
	}
}

// Analyze fans the request out and returns the merged consensus, or
// *NoSuccessfulProviderError when no provider produced a usable result.
// Per-provider failures are logged for operators and never surfaced
// individually.
func (s *Service) Analyze(ctx context.Context, req Request) (*ConsensusResult, error) {
	providers := s.selector.Select(req)
	if len(providers) == 0 {
		return nil, &NoSuccessfulProviderError{}
	}

	results := s.invoker.Invoke(ctx, providers, req)
	for _, r := range results {
		if r.Err != nil {
			log.Printf("analysis.Service: %v", r.Err)
		}
	}

	consensus, err := Merge(results)
	if err != nil {
		// When every provider was throttled, surface that so callers can
		// requeue instead of failing the document outright.
		if rl := allRateLimited(results); rl != nil {
			return nil, rl
		}
		return nil, err
	}

	log.Printf("analysis.Service: merged %d/%d provider results: %s",
		len(consensus.Providers), len(providers), consensus)
	return consensus, nil
}

// allRateLimited returns a combined RateLimitError if every result failed
// with a rate limit, using the longest reported backoff. Returns nil when any
// result succeeded or failed for another reason.
func allRateLimited(results []ProviderResult) *RateLimitError {
	var maxRetry time.Duration
	for _, r := range results {
		if r.Err == nil {
			return nil
		}
		var rl *RateLimitError
		if !errors.As(r.Err, &rl) {
			return nil
		}
		if rl.RetryAfter > maxRetry {
			maxRetry = rl.RetryAfter
		}
	}
	if maxRetry == 0 {
		return nil
	}
	return NewRateLimitError("all", fmt.Errorf("all providers rate limited"), int(maxRetry.Seconds()))
}
