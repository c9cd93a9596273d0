// Package errors provides custom error types for the venuemap pipeline.
// The taxonomy mirrors the pipeline's propagation policy: parse failures are
// recorded per field and never abort a record, validation failures reject a
// record but not the batch, merge conflicts are flagged for manual review,
// and only store-level I/O failures abort a run.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the venuemap pipeline.
var (
	// ErrNotFound indicates that a requested record was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnparseable indicates that a raw field could not be parsed.
	ErrUnparseable = errors.New("unparseable field")

	// ErrMergeConflict indicates an irreconcilable disagreement between records.
	ErrMergeConflict = errors.New("merge conflict")
)

// ParseError represents a field that could not be derived from raw text.
// Parse errors are warnings: the field is left empty and its name recorded
// in the record's review list. They are never fatal.
type ParseError struct {
	Field   string
	Raw     string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("cannot parse field %s from %q: %s", e.Field, e.Raw, e.Message)
	}
	return fmt.Sprintf("cannot parse field %s: %s", e.Field, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *ParseError) Is(target error) bool {
	return target == ErrUnparseable
}

// NewParseError creates a new ParseError.
func NewParseError(field, raw, message string) *ParseError {
	return &ParseError{Field: field, Raw: raw, Message: message}
}

// ValidationError represents a hard schema constraint violation. A record
// carrying one is rejected from the catalog write but preserved in the run's
// rejects list.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// MergeConflictError represents two records that match on identity but
// disagree irreconcilably on an identity field like postal code. Conflicts
// are flagged for manual review rather than auto-resolved.
type MergeConflictError struct {
	ID       string
	Field    string
	Existing any
	Incoming any
}

// Error implements the error interface.
func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("merge conflict on %s for venue %s: existing %v vs incoming %v",
		e.Field, e.ID, e.Existing, e.Incoming)
}

// Is implements errors.Is support.
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// NewMergeConflictError creates a new MergeConflictError.
func NewMergeConflictError(id, field string, existing, incoming any) *MergeConflictError {
	return &MergeConflictError{ID: id, Field: field, Existing: existing, Incoming: incoming}
}

// IOError represents a catalog read/write failure. IO errors are fatal for
// the run; no partial catalog write is ever committed.
type IOError struct {
	Operation string // "read", "write", "create", "rename", "backup"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NotFoundError represents an error when a record is not found.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsParseError checks if an error is a parse error.
func IsParseError(err error) bool {
	return errors.Is(err, ErrUnparseable)
}

// IsMergeConflict checks if an error is a merge conflict.
func IsMergeConflict(err error) bool {
	return errors.Is(err, ErrMergeConflict)
}

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}
