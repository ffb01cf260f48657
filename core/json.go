package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Package-level errors for request decoding.
var (
	// ErrMissingContentType indicates the request had no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
	// ErrUnsupportedMediaType indicates a non-JSON Content-Type.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrInvalidJSON indicates an unreadable or malformed request body.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// ErrorDetail is the error payload of the standard response envelope.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type errorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

// DecodeJSON parses the request body into v. It enforces an application/json
// Content-Type, rejects unknown fields, and requires exactly one JSON value.
func DecodeJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return nil
}

// RespondJSON writes v as a JSON response body with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes err as the standard JSON error envelope. HTTPError
// values keep their status code and key; decode errors map to 400; anything
// else is a 500 carrying the error's text.
func RespondError(w http.ResponseWriter, err error) {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		RespondJSON(w, httpErr.Code, errorEnvelope{Error: ErrorDetail{
			Code:    httpErr.Key,
			Message: httpErr.Message,
		}})
	case errors.Is(err, ErrInvalidJSON),
		errors.Is(err, ErrMissingContentType),
		errors.Is(err, ErrUnsupportedMediaType):
		RespondJSON(w, http.StatusBadRequest, errorEnvelope{Error: ErrorDetail{
			Code:    "bad_request",
			Message: err.Error(),
		}})
	default:
		RespondJSON(w, http.StatusInternalServerError, errorEnvelope{Error: ErrorDetail{
			Code:    "internal_server_error",
			Message: err.Error(),
		}})
	}
}
