package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code string) bool {
	var appErr *AppError
	for errors.As(err, &appErr) {
		if appErr.Code == code {
			return true
		}
		err = appErr.Cause
		appErr = nil
	}
	return false
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeMissingFile   = "MISSING_FILE"
	CodeParseFailure  = "PARSE_FAILURE"
	CodeWriteFailure  = "WRITE_FAILURE"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// MissingFile marks a configured source path that does not reference an
// existing file. A load that hits this halts the render cycle.
func MissingFile(path string) *AppError {
	return New(CodeMissingFile, fmt.Sprintf("file not found: %s", path))
}

// ParseFailure marks a source that exists but cannot be read as a table.
func ParseFailure(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeParseFailure,
		Message: fmt.Sprintf("cannot parse %s", path),
		Cause:   cause,
	}
}

// WriteFailure marks an append/rewrite that could not complete. The cause is
// kept so the UI can surface the underlying message verbatim.
func WriteFailure(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeWriteFailure,
		Message: fmt.Sprintf("cannot write %s", path),
		Cause:   cause,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
