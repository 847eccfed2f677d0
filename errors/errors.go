// Package errors provides standardized error handling for the fixie codec.
// It includes error classification, standard error variables, and helper
// functions for consistent error wrapping across the decode and encode paths.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorSyntax represents errors in the wire syntax of a message:
	// unparsable chunks, bad tags, absent required header fields.
	ErrorSyntax ErrorClass = iota
	// ErrorStructure represents errors in repeating-group structure:
	// count mismatches, misplaced nested groups, bad count values.
	ErrorStructure
	// ErrorConfig represents errors in static configuration such as the
	// group registry or a custom group dictionary.
	ErrorConfig
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorSyntax:
		return "syntax"
	case ErrorStructure:
		return "structure"
	case ErrorConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Standard error variables for the codec failure taxonomy. Typed errors in
// the codec package wrap these so callers can match on errors.Is while still
// reading the offending tag/value out of the concrete type.
var (
	// Wire syntax errors
	ErrMalformedToken       = errors.New("malformed token")
	ErrMissingRequiredField = errors.New("missing required field")

	// Repeating-group structure errors
	ErrGroupCountMismatch   = errors.New("group entry count mismatch")
	ErrInvalidGroupCount    = errors.New("invalid group count value")
	ErrAmbiguousNestedGroup = errors.New("nested group outside declared parent")

	// Configuration errors
	ErrDuplicateGroupSpec = errors.New("duplicate group specification")
	ErrInvalidDictionary  = errors.New("invalid group dictionary")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsSyntax checks if an error is a wire-syntax error
func IsSyntax(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorSyntax
	}

	return errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrMissingRequiredField)
}

// IsStructure checks if an error is a repeating-group structure error
func IsStructure(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorStructure
	}

	return errors.Is(err, ErrGroupCountMismatch) ||
		errors.Is(err, ErrInvalidGroupCount) ||
		errors.Is(err, ErrAmbiguousNestedGroup)
}

// IsConfig checks if an error is a static-configuration error
func IsConfig(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorConfig
	}

	return errors.Is(err, ErrDuplicateGroupSpec) ||
		errors.Is(err, ErrInvalidDictionary)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}

	switch {
	case IsStructure(err):
		return ErrorStructure
	case IsConfig(err):
		return ErrorConfig
	default:
		// Anything unrecognized came off the wire
		return ErrorSyntax
	}
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapSyntax(), WrapStructure(), or
// WrapConfig() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapSyntax wraps an error as a wire-syntax error with context
func WrapSyntax(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorSyntax, wrappedErr, component, method, wrappedErr.Error())
}

// WrapStructure wraps an error as a group-structure error with context
func WrapStructure(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorStructure, wrappedErr, component, method, wrappedErr.Error())
}

// WrapConfig wraps an error as a configuration error with context
func WrapConfig(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorConfig, wrappedErr, component, method, wrappedErr.Error())
}

// Is reports whether any error in err's chain matches target.
// Re-exported so codec packages need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Re-exported so codec packages need only one errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
// Re-exported so codec packages need only one errors import.
func New(text string) error {
	return errors.New(text)
}
