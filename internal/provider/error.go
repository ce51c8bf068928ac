// README: Shared error taxonomy for external provider clients.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a provider failure, mapped 1:1 from the provider's HTTP
// status. No retries happen at this layer; callers decide.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindRateLimited  Kind = "rate_limited"
	KindNotFound     Kind = "not_found"
	KindTimeout      Kind = "timeout"
	KindMalformed    Kind = "malformed"
)

// Error is a typed failure from one external provider call.
type Error struct {
	Provider string
	Kind     Kind
	Status   int
	Message  string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Message)
}

// KindFromStatus maps an HTTP status to a failure kind.
func KindFromStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return KindTimeout
	default:
		return KindMalformed
	}
}

// FromStatus builds an Error for a non-2xx provider response.
func FromStatus(name string, status int, msg string) *Error {
	return &Error{Provider: name, Kind: KindFromStatus(status), Status: status, Message: msg}
}

// Classify wraps an arbitrary transport error. Context deadline and
// cancellation become KindTimeout; everything else is KindMalformed.
func Classify(name string, err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	kind := KindMalformed
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		kind = KindTimeout
	}
	return &Error{Provider: name, Kind: kind, Message: err.Error()}
}

// Malformed builds an Error for an undecodable provider payload.
func Malformed(name string, err error) *Error {
	return &Error{Provider: name, Kind: KindMalformed, Message: err.Error()}
}
