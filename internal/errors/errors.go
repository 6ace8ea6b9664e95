package errors

import (
	"errors"
	"fmt"
)

// Exit codes reported by the CLI.
const (
	ExitRequest    = 1
	ExitValidation = 2
)

// GenericMessage is surfaced when a failure carries no usable message.
const GenericMessage = "An error occurred"

// ValidationError reports unusable user input. No request is sent when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// RequestError reports a failed backend call: a transport failure, a non-2xx response or an
// explicit error status in the response body.
type RequestError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return GenericMessage
	}
	return e.Message
}

// NewRequestError creates a RequestError, falling back to GenericMessage for an empty message.
func NewRequestError(operation string, statusCode int, message string) *RequestError {
	if message == "" {
		message = GenericMessage
	}
	return &RequestError{Operation: operation, StatusCode: statusCode, Message: message}
}

// CommandError carries the exit code of a failed command.
type CommandError struct {
	ExitCode int
	Err      error
}

// Error implements the error interface, returning the message of the wrapped error.
func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("command failed with exit code %d", e.ExitCode)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError wraps err with the exit code matching its kind.
func NewCommandError(err error) *CommandError {
	return &CommandError{ExitCode: ExitCode(err), Err: err}
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return ExitValidation
	}
	return ExitRequest
}

// Message returns the text shown to a user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericMessage
}
