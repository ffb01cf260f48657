// Package llm provides a minimal chat-completion client for an
// OpenAI-compatible conversational provider.
//
// The client issues a single bounded-timeout request per call and never
// retries; failures are classified with sentinel errors (ErrTimeout,
// ErrNetwork, ErrUnexpectedStatus, ErrMalformedResponse) so callers can
// distinguish degradation causes and fall back accordingly.
package llm
