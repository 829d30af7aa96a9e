package readability

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of an error.
type ErrorType string

// Error types
const (
	ParseError      ErrorType = "parse"
	ValidationError ErrorType = "validation"
)

// Common errors used throughout the package. Extraction itself never
// fails: a document without an article yields an empty best-effort
// result, not an error. Errors only arise before extraction, when the
// input cannot be read or parsed.
var (
	ErrNoDocument = errors.New("no document to parse")
)

// WrapError wraps an error with category and call-site context.
func WrapError(err error, errorType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	if message == "" {
		return fmt.Errorf("[%s:%s] %w", errorType, funcName, err)
	}
	return fmt.Errorf("[%s:%s] %s: %w", errorType, funcName, message, err)
}

// WrapParseError wraps a parsing error.
func WrapParseError(err error, funcName, message string) error {
	return WrapError(err, ParseError, funcName, message)
}

// WrapValidationError wraps a validation error.
func WrapValidationError(err error, funcName, message string) error {
	return WrapError(err, ValidationError, funcName, message)
}
