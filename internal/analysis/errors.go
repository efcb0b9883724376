package analysis

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var errEmptyFindings = errors.New("provider returned empty findings")

// InvocationError wraps a single provider's failure: transport error,
// non-success HTTP status, or a response body that does not parse as the
// findings schema. It is recorded on that provider's result only and never
// aborts sibling invocations.
type InvocationError struct {
	Provider string
	Err      error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("provider %s invocation failed: %v", e.Provider, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// NoSuccessfulProviderError is returned when every selected provider failed
// (or none was selectable). It is the only analysis failure that surfaces to
// callers; individual vendor errors stay in the logs.
type NoSuccessfulProviderError struct {
	Attempted int
}

func (e *NoSuccessfulProviderError) Error() string {
	if e.Attempted == 0 {
		return "no analysis provider available"
	}
	return fmt.Sprintf("no successful provider result (%d attempted)", e.Attempted)
}

// RateLimitError indicates a provider returned HTTP 429.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0, defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}
