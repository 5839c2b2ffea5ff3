// Package reportfmt provides custom error types for better error handling and reporting.
package reportfmt

import (
	"fmt"
	"strings"
)

// ConfigError represents an error loading or merging a configuration
type ConfigError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("config error in '%s': %s: %v", e.Path, e.Message, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Path, e.Message)
	} else if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new config error
func NewConfigError(path, message string, cause error) error {
	return &ConfigError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// FormatError represents a failure in one stage of the formatting pipeline
type FormatError struct {
	Stage string
	Cause error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting stage '%s' failed: %v", e.Stage, e.Cause)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// NewFormatError creates a new formatting error
func NewFormatError(stage string, cause error) error {
	return &FormatError{
		Stage: stage,
		Cause: cause,
	}
}

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError represents multiple validation issues
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d validation issues:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

// IsConfigError checks if an error is a config error
func IsConfigError(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	_, ok := err.(*DocumentError)
	return ok
}

// IsFormatError checks if an error is a formatting error
func IsFormatError(err error) bool {
	_, ok := err.(*FormatError)
	return ok
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
