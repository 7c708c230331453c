package webhdfs

import (
	"errors"
	"fmt"
)

// maxErrorLen caps the visible length of a transport error message.
const maxErrorLen = 511

// ErrorCode classifies request execution errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a transport failure (refused, DNS, TLS, etc).
	ErrCodeConnection
	// ErrCodeRedirect indicates a missing or unusable redirect location
	// during a two-phase upload.
	ErrCodeRedirect
	// ErrCodeState indicates a misused request context (already executed
	// or already closed).
	ErrCodeState
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeRedirect:
		return "redirect"
	case ErrCodeState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a structured request execution error.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error. Transport errors carry the attempted
	// URL in the form "<description> (url: <url>)".
	Message string
	// URL is the URL being fetched when the error occurred.
	URL string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webhdfs: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newTransportError creates a connection or timeout error whose message
// combines the transport failure description with the attempted URL.
func newTransportError(code ErrorCode, err error, url string) *Error {
	msg := fmt.Sprintf("%s (url: %s)", err.Error(), url)
	if len(msg) > maxErrorLen {
		msg = msg[:maxErrorLen]
	}
	return &Error{
		Code:    code,
		Message: msg,
		URL:     url,
		Err:     err,
	}
}

// newRedirectError creates an error for an upload whose first phase
// produced no usable redirect location.
func newRedirectError(url string) *Error {
	return &Error{
		Code:    ErrCodeRedirect,
		Message: fmt.Sprintf("no redirect location in response (url: %s)", url),
		URL:     url,
	}
}

// newStateError creates an error for a misused request context.
func newStateError(msg string) *Error {
	return &Error{Code: ErrCodeState, Message: msg}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a transport connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsRedirect checks if an error is a missing-redirect error.
func IsRedirect(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRedirect
}

// IsState checks if an error is a request-context misuse error.
func IsState(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeState
}
