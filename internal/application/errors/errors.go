// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError indicates request or filter validation failed.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// NotFoundError indicates a lookup for an element, property or role failed.
type NotFoundError struct {
	Kind        string // "element", "property" or "role"
	Name        string
	Version     string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.Name)
	if e.Version != "" {
		msg = fmt.Sprintf("%s in WAI-ARIA %s", msg, e.Version)
	}
	if len(e.Suggestions) > 0 {
		msg = fmt.Sprintf("%s (did you mean %s?)", msg, strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(kind, name, version string, suggestions ...string) *NotFoundError {
	return &NotFoundError{
		Kind:        kind,
		Name:        name,
		Version:     version,
		Suggestions: suggestions,
	}
}

// DatasetError indicates the upstream dataset could not be loaded or is unusable.
type DatasetError struct {
	Cause   error
	Path    string
	Message string
}

func (e *DatasetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dataset error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset error (%s): %s", e.Path, e.Message)
}

func (e *DatasetError) Unwrap() error {
	return e.Cause
}

// NewDatasetError creates a new dataset error.
func NewDatasetError(path, message string, cause error) *DatasetError {
	return &DatasetError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// LintFailedError is returned when a document has error level findings.
type LintFailedError struct {
	Source string
	Errors int
}

func (e *LintFailedError) Error() string {
	return fmt.Sprintf("lint failed: %s: %d error(s)", e.Source, e.Errors)
}
