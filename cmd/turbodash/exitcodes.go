package main

import "fmt"

// Exit codes for the turbodash CLI.
const (
	ExitOK                 = 0 // Command succeeded.
	ExitInvalidArgs        = 1 // Invalid arguments or bad path.
	ExitInvalidDeclaration = 2 // Declaration failed validation or assembly.
	ExitRuntimeFailure     = 3 // Datasets could not be loaded or the server failed.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitInvalidDeclaration:
			msg = "turbodash: invalid declaration"
		case ExitRuntimeFailure:
			msg = "turbodash: runtime failure"
		default:
			msg = "turbodash: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
