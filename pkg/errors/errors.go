// Package errors defines promptline's structured errors. Codes are
// stable strings so tests and log queries can match on them without
// parsing messages.
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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors. Configuration is applied fully or not at
	// all; any of these aborts the load.
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template errors. Recovered at the segment boundary: the segment
	// is dropped from the prompt, never the whole render.
	ErrTemplateParse ErrorCode = "TEMPLATE_PARSE"
	ErrTemplateEval  ErrorCode = "TEMPLATE_EVAL"

	// Segment errors
	ErrSegmentUnknown ErrorCode = "SEGMENT_UNKNOWN"

	// Style errors
	ErrStyleParse ErrorCode = "STYLE_PARSE"
)

// PromptError represents a structured error with code and details
type PromptError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PromptError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PromptError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PromptError) Is(target error) bool {
	var targetErr *PromptError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PromptError with the given code and message
func New(code ErrorCode, message string) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PromptError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PromptError {
	return &PromptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PromptError
func Wrap(err error, code ErrorCode, message string) *PromptError {
	if err == nil {
		return nil
	}
	return &PromptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PromptError {
	if err == nil {
		return nil
	}
	return &PromptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PromptError) WithDetail(key string, value interface{}) *PromptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var promptErr *PromptError
	if errors.As(err, &promptErr) {
		return promptErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not a PromptError
func GetErrorCode(err error) ErrorCode {
	var promptErr *PromptError
	if errors.As(err, &promptErr) {
		return promptErr.Code
	}
	return ErrUnknown
}
