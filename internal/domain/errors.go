package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the engine. Callers match these with errors.Is.
var (
	// ErrInvalidRequest indicates a search request with missing or malformed
	// parameters. Surfaced to the caller, never retried.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoProvider indicates that zero registered providers support the
	// requested capability. This is the only provider-related error that
	// propagates to the search caller.
	ErrNoProvider = errors.New("no provider supports the requested capability")

	// ErrUnsupportedCapability indicates an operation was invoked against a
	// provider that does not advertise it. This is a programming error: the
	// coordinator filters providers by capability before calling them.
	ErrUnsupportedCapability = errors.New("operation not supported by provider")

	// ErrAllProvidersFailed indicates every dispatched provider leg failed,
	// leaving the search with nothing to return.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrProviderTimeout indicates a provider did not respond in time.
	ErrProviderTimeout = errors.New("provider timed out")

	// ErrProviderUnavailable indicates a provider could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ValidationError reports a missing or invalid search parameter.
// It wraps ErrInvalidRequest so callers can match the class with errors.Is
// and extract the field with errors.As.
type ValidationError struct {
	Field string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// CapabilityError reports an operation invoked on a provider that does not
// support it. It wraps ErrUnsupportedCapability.
type CapabilityError struct {
	Provider   string
	Capability Capability
}

// NewCapabilityError creates a CapabilityError for the given provider and capability.
func NewCapabilityError(provider string, capability Capability) *CapabilityError {
	return &CapabilityError{Provider: provider, Capability: capability}
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("provider %s does not support %s", e.Provider, e.Capability)
}

func (e *CapabilityError) Unwrap() error {
	return ErrUnsupportedCapability
}

// ProviderError wraps any failure originating from a single provider.
// The coordinator isolates these: they are logged and contribute an empty
// result set, they never reach the search caller.
type ProviderError struct {
	// Provider is the name of the provider that failed.
	Provider string

	// Err is the underlying failure.
	Err error

	// Retryable marks failures worth retrying before giving up on the provider.
	Retryable bool
}

// NewProviderError wraps err as a non-retryable failure of the named provider.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError wraps err as a retryable failure of the named provider.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a retryable timeout failure for the named provider.
func NewProviderTimeoutError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderTimeout, Retryable: true}
}

// NewProviderUnavailableError creates a retryable availability failure for the
// named provider.
func NewProviderUnavailableError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderUnavailable, Retryable: true}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a provider failure marked retryable.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}
