package llm

import "errors"

var (
	// ErrTimeout is returned when the provider call exceeds its deadline.
	ErrTimeout = errors.New("llm call timed out")
	// ErrNetwork is returned for transport-level failures other than timeouts.
	ErrNetwork = errors.New("llm call failed")
	// ErrUnexpectedStatus is returned when the provider responds with a non-2xx status.
	ErrUnexpectedStatus = errors.New("llm provider returned unexpected status")
	// ErrMalformedResponse is returned when the provider body cannot be decoded
	// or contains no choices.
	ErrMalformedResponse = errors.New("llm provider returned malformed response")
)
