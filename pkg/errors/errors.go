package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// External command errors
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"

	// Symlink reconciliation errors
	ErrTranslation          ErrorCode = "TRANSLATION_FAILED"
	ErrStreamLengthMismatch ErrorCode = "STREAM_LENGTH_MISMATCH"
	ErrRelink               ErrorCode = "RELINK_FAILED"

	// Ownership errors
	ErrAccessControl ErrorCode = "ACCESS_CONTROL"
	ErrPrivilege     ErrorCode = "PRIVILEGE"
)

// LinkfixError represents a structured error with code and details
type LinkfixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkfixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkfixError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LinkfixError) Is(target error) bool {
	var targetErr *LinkfixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkfixError with the given code and message
func New(code ErrorCode, message string) *LinkfixError {
	return &LinkfixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkfixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkfixError {
	return &LinkfixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinkfixError
func Wrap(err error, code ErrorCode, message string) *LinkfixError {
	if err == nil {
		return nil
	}
	return &LinkfixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkfixError {
	if err == nil {
		return nil
	}
	return &LinkfixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkfixError) WithDetail(key string, value interface{}) *LinkfixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LinkfixError) WithDetails(details map[string]interface{}) *LinkfixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var linkErr *LinkfixError
	if errors.As(err, &linkErr) {
		return linkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkfixError
func GetErrorCode(err error) ErrorCode {
	var linkErr *LinkfixError
	if errors.As(err, &linkErr) {
		return linkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LinkfixError
func GetErrorDetails(err error) map[string]interface{} {
	var linkErr *LinkfixError
	if errors.As(err, &linkErr) {
		return linkErr.Details
	}
	return nil
}
