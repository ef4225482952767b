// Package errors provides error handling conventions for the formkit CLI.
//
// It re-exports the wrapping helpers of github.com/cockroachdb/errors,
// defines sentinel errors for common failure conditions, an ExitError type
// for CLI exit code handling, and exit code constants following standard
// Unix conventions.
//
// Validation failures of a form are never reported through this package:
// they are data (an error map keyed by field). [ErrValidationFailed] only
// signals to the CLI that a command should exit non-zero.
//
// # Sentinel Errors
//
//	if errors.Is(err, fkerrors.ErrNotFound) {
//	    // unknown form name
//	}
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := fkerrors.NewUserError(fkerrors.ErrInvalidConfig, "Check your config file")
//	os.Exit(fkerrors.ExitCode(err))
package errors
