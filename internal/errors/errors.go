package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a failure category raised by the API client or the
// session layer. Every error that crosses a package boundary carries one.
type Code string

const (
	// CodeNetwork indicates a transport-level failure: the request never
	// produced an HTTP response (connection refused, DNS failure, timeout).
	CodeNetwork Code = "NETWORK"

	// CodeMalformedResponse indicates a response was received but could not
	// be interpreted: non-JSON content on a success status, or a body that
	// fails to parse.
	CodeMalformedResponse Code = "MALFORMED_RESPONSE"

	// CodeServerError indicates a non-JSON error response from the backend.
	CodeServerError Code = "SERVER_ERROR"

	// CodeNotFound indicates an HTTP 404.
	CodeNotFound Code = "NOT_FOUND"

	// CodeSessionExpired indicates an HTTP 401. Raising it is always
	// accompanied by a credential purge.
	CodeSessionExpired Code = "SESSION_EXPIRED"

	// CodeRequestFailed indicates any other 4xx/5xx, or an envelope with
	// success=false, carrying the server-supplied message.
	CodeRequestFailed Code = "REQUEST_FAILED"

	// CodeValidation indicates a client-side check failed before any
	// request was sent.
	CodeValidation Code = "VALIDATION"
)

// WorkZenError is the error type shared across the client. It carries a
// category code, an HTTP status when one applies, and optional suggestions
// shown to the user alongside the message.
type WorkZenError struct {
	Code        Code
	Message     string
	Status      int
	Suggestions []string
	Cause       error
}

// Error implements the error interface.
func (e *WorkZenError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}
	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *WorkZenError) Unwrap() error {
	return e.Cause
}

// New creates a new WorkZenError.
func New(code Code, message string) *WorkZenError {
	return &WorkZenError{Code: code, Message: message}
}

// Wrap creates a new WorkZenError wrapping an existing error.
func Wrap(code Code, message string, cause error) *WorkZenError {
	return &WorkZenError{Code: code, Message: message, Cause: cause}
}

// WithStatus attaches the HTTP status that produced the error.
func (e *WorkZenError) WithStatus(status int) *WorkZenError {
	e.Status = status
	return e
}

// WithSuggestion adds a suggestion to the error.
func (e *WorkZenError) WithSuggestion(suggestion string) *WorkZenError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// CodeOf returns the code carried by err, or the empty Code when err is not
// a WorkZenError anywhere in its chain.
func CodeOf(err error) Code {
	var wz *WorkZenError
	if errors.As(err, &wz) {
		return wz.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// IsSessionExpired reports whether err is the 401-triggered session expiry.
// Call sites use this to suppress their own notification: the forced logout
// already tells the user what happened.
func IsSessionExpired(err error) bool {
	return HasCode(err, CodeSessionExpired)
}

// IsNotFound reports whether err is an HTTP 404.
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	return HasCode(err, CodeNetwork)
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	return HasCode(err, CodeValidation)
}

// Common constructors for the failures the API client raises.

// NewNetworkError creates a transport failure error.
func NewNetworkError(cause error) *WorkZenError {
	return Wrap(CodeNetwork, "network error, check your connection", cause).
		WithSuggestion("Verify the backend is reachable").
		WithSuggestion("Check WORKZEN_API_URL points at the right host")
}

// NewServerError creates a non-JSON error response failure.
func NewServerError(status int, statusText string) *WorkZenError {
	return New(CodeServerError, fmt.Sprintf("server error: %d %s", status, statusText)).
		WithStatus(status)
}

// NewMalformedResponseError creates a contract-violation failure for a
// response that could not be interpreted.
func NewMalformedResponseError(detail string, cause error) *WorkZenError {
	return Wrap(CodeMalformedResponse, fmt.Sprintf("invalid response from server: %s", detail), cause)
}

// NewSessionExpiredError creates the 401 failure.
func NewSessionExpiredError() *WorkZenError {
	return New(CodeSessionExpired, "session expired, please login again").
		WithStatus(401).
		WithSuggestion("Run 'workzen login' to start a new session")
}

// NewNotFoundError creates a 404 failure with the server message when one
// was supplied.
func NewNotFoundError(message string) *WorkZenError {
	if message == "" {
		message = "resource not found"
	}
	return New(CodeNotFound, message).WithStatus(404)
}

// NewRequestFailedError creates a generic request failure.
func NewRequestFailedError(status int, message string) *WorkZenError {
	if message == "" {
		message = "request failed"
	}
	return New(CodeRequestFailed, message).WithStatus(status)
}

// NewValidationError creates a client-side validation failure.
func NewValidationError(message string) *WorkZenError {
	return New(CodeValidation, message)
}
