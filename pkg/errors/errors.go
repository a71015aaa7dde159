// Package errors provides coded errors for cork.
//
// Codes are stable strings so callers and tests can branch on the category of
// a failure without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a CorkError
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Path errors
	ErrPathResolve ErrorCode = "PATH_RESOLVE"

	// Logging errors
	ErrLogFile ErrorCode = "LOG_FILE"

	// Help topic errors
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"
	ErrTopicLoad     ErrorCode = "TOPIC_LOAD"
)

// CorkError is an error carrying a code and optional details
type CorkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CorkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *CorkError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CorkError with the same code
func (e *CorkError) Is(target error) bool {
	var targetErr *CorkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a CorkError
func New(code ErrorCode, message string) *CorkError {
	return &CorkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a CorkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CorkError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err in a CorkError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *CorkError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a formatted message. A nil err yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CorkError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CorkError) WithDetail(key string, value interface{}) *CorkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var corkErr *CorkError
	if errors.As(err, &corkErr) {
		return corkErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of err, or ErrUnknown if it is not a CorkError
func GetErrorCode(err error) ErrorCode {
	var corkErr *CorkError
	if errors.As(err, &corkErr) {
		return corkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, or nil if it is not a CorkError
func GetErrorDetails(err error) map[string]interface{} {
	var corkErr *CorkError
	if errors.As(err, &corkErr) {
		return corkErr.Details
	}
	return nil
}
