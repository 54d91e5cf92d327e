package client

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Error Kinds
// --------------------------------------------------------------------------

// ErrKind classifies a failed request into exactly one of a closed set of
// categories. The dispatchers base their retry decisions solely on the kind.
type ErrKind uint64

const (
	KindTransport  ErrKind = iota // 0: Connection level failure before any HTTP response (DNS, connect, TLS, timeout).
	KindAPI                       // 1: HTTP response received with a non-success status and a decodable etcd error payload.
	KindDecode                    // 2: Response body could not be parsed into the expected schema.
	KindInvalidURI                // 3: Malformed endpoint/path combination, detected before any network I/O.
)

// String returns the name of the error kind
func (k ErrKind) String() string {
	switch k {
	case KindTransport:
		return "Transport"
	case KindAPI:
		return "API"
	case KindDecode:
		return "Decode"
	case KindInvalidURI:
		return "InvalidURI"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// API Error Payload
// --------------------------------------------------------------------------

// APIError is the structured error payload etcd returns alongside a
// non-success status code.
type APIError struct {
	// The etcd error code (e.g. 100 for "Key not found")
	ErrorCode uint64 `json:"errorCode"`
	// A human readable description of the error
	Message string `json:"message"`
	// The cause of the error, if any (usually the key that was operated on)
	Cause string `json:"cause,omitempty"`
	// The etcd index at the time of the error
	Index uint64 `json:"index"`
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the error type returned by all client operations. It wraps an
// ErrKind and a message, and for KindAPI additionally the decoded payload.
// Exactly one kind is populated per failure.
type Error struct {
	Kind ErrKind   // The error kind
	Msg  string    // The error message
	API  *APIError // The etcd error payload, only set for KindAPI
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindAPI && e.API != nil {
		return fmt.Sprintf("etcd client error (kind %s): code=%d message=%q cause=%q", e.Kind, e.API.ErrorCode, e.API.Message, e.API.Cause)
	}
	return fmt.Sprintf("etcd client error (kind %s): %s", e.Kind, e.Msg)
}

// NewError creates a new Error with the given kind and message.
func NewError(kind ErrKind, msg string) *Error {
	return &Error{
		Kind: kind,
		Msg:  msg,
	}
}

// NewAPIError creates a new Error of KindAPI wrapping the decoded payload.
func NewAPIError(payload APIError) *Error {
	return &Error{
		Kind: KindAPI,
		Msg:  payload.Message,
		API:  &payload,
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// KindOf extracts the ErrKind from an error returned by this library.
// The boolean return value indicates whether the error originated here.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsTransport checks whether the error is a transport level failure
func IsTransport(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindTransport
}

// IsAPI checks whether the error is an etcd API error
func IsAPI(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindAPI
}
