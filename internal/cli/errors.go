package cli

import (
	"errors"
	"fmt"
)

// ErrUsage signals that usage text was printed in response to an unknown or
// malformed flag. The original tool treats this as informational, not a
// failure: [RunWithConfig] maps it to exit code 0.
var ErrUsage = errors.New("usage printed")

// ExitError represents a command failure with a specific exit code.
//
// It lets command bodies signal non-zero exits without calling os.Exit
// directly, so tests can assert on codes without process termination.
// [RunWithConfig] extracts the code via [IsExitError].
type ExitError struct {
	// Code is the exit code to return to the shell.
	Code int
}

// Error returns "exit status N", matching the os/exec ExitError format.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError checks whether err is an [ExitError] and extracts its code.
// Returns (0, false) for nil or other error types.
func IsExitError(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
