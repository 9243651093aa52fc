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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Fatal pipeline errors. Any of these aborts a run before output is written.
	ErrValidation    ErrorCode = "VALIDATION"
	ErrAcquisition   ErrorCode = "ACQUISITION"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrClassify      ErrorCode = "CLASSIFY"

	// Per-file errors, collected rather than returned
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"

	// Post-generation errors
	ErrPostAction ErrorCode = "POST_ACTION"
	ErrPrompt     ErrorCode = "PROMPT"
)

// stages maps error codes to the pipeline stage reported to the user
var stages = map[ErrorCode]string{
	ErrValidation:    "derive",
	ErrInvalidInput:  "derive",
	ErrPrompt:        "prompt",
	ErrAcquisition:   "acquire",
	ErrManifestParse: "manifest",
	ErrClassify:      "classify",
	ErrFileRead:      "transform",
	ErrFileWrite:     "write",
	ErrDirCreate:     "write",
	ErrPostAction:    "post-actions",
	ErrConfigLoad:    "config",
	ErrConfigParse:   "config",
}

// FlairError represents a structured error with code and details
type FlairError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FlairError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FlairError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FlairError) Is(target error) bool {
	var targetErr *FlairError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FlairError with the given code and message
func New(code ErrorCode, message string) *FlairError {
	return &FlairError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FlairError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FlairError {
	return &FlairError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FlairError
func Wrap(err error, code ErrorCode, message string) *FlairError {
	if err == nil {
		return nil
	}
	return &FlairError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FlairError {
	if err == nil {
		return nil
	}
	return &FlairError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FlairError) WithDetail(key string, value interface{}) *FlairError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var flairErr *FlairError
	if errors.As(err, &flairErr) {
		return flairErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FlairError
func GetErrorCode(err error) ErrorCode {
	var flairErr *FlairError
	if errors.As(err, &flairErr) {
		return flairErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FlairError
func GetErrorDetails(err error) map[string]interface{} {
	var flairErr *FlairError
	if errors.As(err, &flairErr) {
		return flairErr.Details
	}
	return nil
}

// Stage names the pipeline stage an error belongs to, or "unknown".
func Stage(err error) string {
	if stage, ok := stages[GetErrorCode(err)]; ok {
		return stage
	}
	return "unknown"
}

// IsFatal reports whether err must abort a whole run.
func IsFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrFileRead, ErrFileWrite, ErrDirCreate:
		return false
	}
	return err != nil
}
