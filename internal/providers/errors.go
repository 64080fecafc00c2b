package providers

import (
	"errors"
	"fmt"
)

// Kind classifies provider failures.
type Kind string

const (
	// KindUpstreamUnavailable covers non-success statuses, transport
	// failures, and malformed bodies.
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	// KindUnsupported marks a capability the adapter declines.
	KindUnsupported Kind = "unsupported_operation"
	// KindMissingIdentifier means no upstream mapping exists for the team.
	KindMissingIdentifier Kind = "missing_identifier"
	// KindNotFound means the requested entity does not exist.
	KindNotFound Kind = "not_found"
)

// Error is the typed failure returned by provider operations. Code is the
// stable machine-readable string exposed at the boundary envelope.
type Error struct {
	Provider string
	Kind     Kind
	Code     string
	cause    error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Code, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Code)
}

func (e *Error) Unwrap() error { return e.cause }

// Upstream builds an upstream-unavailable error.
func Upstream(provider, code string, cause error) *Error {
	return &Error{Provider: provider, Kind: KindUpstreamUnavailable, Code: code, cause: cause}
}

// Unsupported builds an unsupported-operation error.
func Unsupported(provider, code string) *Error {
	return &Error{Provider: provider, Kind: KindUnsupported, Code: code}
}

// NotFound builds a not-found error.
func NotFound(provider, code string) *Error {
	return &Error{Provider: provider, Kind: KindNotFound, Code: code}
}

// MissingIdentifier builds a missing-identifier error.
func MissingIdentifier(provider, code string) *Error {
	return &Error{Provider: provider, Kind: KindMissingIdentifier, Code: code}
}

// CodeOf extracts the stable error code, falling back to a generic one for
// untyped errors.
func CodeOf(err error) string {
	var pErr *Error
	if errors.As(err, &pErr) && pErr.Code != "" {
		return pErr.Code
	}
	return "internal-error"
}

// KindOf extracts the failure kind, or "" for untyped errors.
func KindOf(err error) Kind {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	return ""
}
