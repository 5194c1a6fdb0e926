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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrInputRead    ErrorCode = "INPUT_READ"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Catalog errors
	ErrCatalogInvalid  ErrorCode = "CATALOG_INVALID"
	ErrFeatureNotFound ErrorCode = "FEATURE_NOT_FOUND"

	// Manifest errors
	ErrManifestRead  ErrorCode = "MANIFEST_READ"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"

	// External command errors
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"
)

// StarterError represents a structured error with code and details
type StarterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StarterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StarterError) Unwrap() error {
	return e.Wrapped
}

// Is matches any StarterError carrying the same code
func (e *StarterError) Is(target error) bool {
	var targetErr *StarterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StarterError with the given code and message
func New(code ErrorCode, message string) *StarterError {
	return &StarterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StarterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StarterError {
	return &StarterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StarterError
func Wrap(err error, code ErrorCode, message string) *StarterError {
	if err == nil {
		return nil
	}
	return &StarterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StarterError {
	if err == nil {
		return nil
	}
	return &StarterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StarterError) WithDetail(key string, value interface{}) *StarterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var starterErr *StarterError
	if errors.As(err, &starterErr) {
		return starterErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StarterError
func GetErrorCode(err error) ErrorCode {
	var starterErr *StarterError
	if errors.As(err, &starterErr) {
		return starterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StarterError
func GetErrorDetails(err error) map[string]interface{} {
	var starterErr *StarterError
	if errors.As(err, &starterErr) {
		return starterErr.Details
	}
	return nil
}
