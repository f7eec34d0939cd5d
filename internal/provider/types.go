package provider

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the upstream has no such resource.
var ErrNotFound = errors.New("resource not found")

// Error codes
const (
	ErrCodeNotFound    = "not_found"
	ErrCodeBadRequest  = "bad_request"
	ErrCodeUpstream    = "upstream_error"
	ErrCodeUnavailable = "upstream_unavailable"
	ErrCodeDecode      = "decode_error"
)

// ProviderError describes a failed upstream call.
type ProviderError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	Err        error  `json:"-"`
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the resource does not exist upstream.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Code == ErrCodeNotFound
}
