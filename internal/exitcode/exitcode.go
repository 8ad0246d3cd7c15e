package exitcode

import (
	"os"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args)
	UsageError = 2

	// ValidationError indicates a client-side validation failure
	ValidationError = 3

	// AuthError indicates an authentication or authorization failure
	AuthError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to an exit code using the error taxonomy
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch wzerrors.CodeOf(err) {
	case wzerrors.CodeSessionExpired:
		return AuthError
	case wzerrors.CodeNetwork:
		return NetworkError
	case wzerrors.CodeValidation:
		return ValidationError
	case wzerrors.CodeNotFound,
		wzerrors.CodeRequestFailed,
		wzerrors.CodeServerError,
		wzerrors.CodeMalformedResponse:
		return GeneralError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ValidationError:
		return "Validation error"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
