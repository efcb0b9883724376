package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"claimguard/internal/port"
)

// InvokerConfig holds fan-out settings. A zero Timeout means calls run
// unbounded (the upstream behavior); a zero MaxInFlight means no concurrency
// cap.
type InvokerConfig struct {
	Timeout     time.Duration
	MaxInFlight int
}

// Invoker fires one analyzer call per selected provider, all concurrently,
// and joins with wait-for-all semantics: a single provider's failure is
// recorded on its own result entry and never aborts sibling calls. No
// automatic retry is performed; retries are the caller's responsibility.
type Invoker struct {
	registry *Registry
	cfg      InvokerConfig
}

// NewInvoker creates an Invoker over the given registry.
func NewInvoker(registry *Registry, cfg InvokerConfig) *Invoker {
	return &Invoker{registry: registry, cfg: cfg}
}

// Invoke calls every provider concurrently and returns one result per
// provider, in the same order as the input. Each call builds and owns its
// own request/response pair; no state is shared across calls.
func (iv *Invoker) Invoke(ctx context.Context, providers []ProviderDescriptor, req Request) []ProviderResult {
	results := make([]ProviderResult, len(providers))

	var sem chan struct{}
	if iv.cfg.MaxInFlight > 0 {
		sem = make(chan struct{}, iv.cfg.MaxInFlight)
	}

	var wg sync.WaitGroup
	for i, desc := range providers {
		wg.Add(1)
		go func(i int, desc ProviderDescriptor) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			results[i] = iv.invokeOne(ctx, desc, req)
		}(i, desc)
	}
	wg.Wait()

	return results
}

func (iv *Invoker) invokeOne(ctx context.Context, desc ProviderDescriptor, req Request) ProviderResult {
	analyzer := iv.registry.analyzer(desc.ID)
	if analyzer == nil {
		return ProviderResult{
			Descriptor: desc,
			Err:        &InvocationError{Provider: desc.ID, Err: fmt.Errorf("provider not registered")},
		}
	}

	callCtx := ctx
	if iv.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, iv.cfg.Timeout)
		defer cancel()
	}

	out, err := analyzer.Analyze(callCtx, port.AnalyzeInput{
		FileBytes:    req.FileBytes,
		ContentType:  req.ContentType,
		DocumentType: req.DocumentType,
		ContextFlags: req.ContextFlags,
	})
	if err != nil {
		return ProviderResult{
			Descriptor: desc,
			Err:        &InvocationError{Provider: desc.ID, Err: err},
		}
	}

	findings, err := ParseFindings(out.RawFindings)
	if err != nil {
		return ProviderResult{
			Descriptor: desc,
			Err:        &InvocationError{Provider: desc.ID, Err: fmt.Errorf("decoding findings: %w", err)},
		}
	}

	return ProviderResult{
		Descriptor: desc,
		Findings:   findings,
		Model:      out.ModelUsed,
	}
}
