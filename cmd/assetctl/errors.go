package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/assetstore/assetstore"
)

// CLIError represents a user-friendly CLI error with context and suggestions
type CLIError struct {
	Operation   string   // The operation that failed (e.g., "run", "render report")
	Cause       string   // The underlying cause (e.g., "asset not found")
	Details     string   // Additional technical details
	Suggestions []string // Helpful suggestions for the user
	Underlying  error    // Original error for debugging
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var msg strings.Builder

	if e.Operation != "" {
		msg.WriteString(fmt.Sprintf("Failed to %s", e.Operation))
	} else {
		msg.WriteString("Operation failed")
	}

	if e.Cause != "" {
		msg.WriteString(fmt.Sprintf(": %s", e.Cause))
	}

	if e.Details != "" {
		msg.WriteString(fmt.Sprintf(" (%s)", e.Details))
	}

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return msg.String()
}

// Unwrap returns the underlying error for error chain compatibility
func (e *CLIError) Unwrap() error {
	return e.Underlying
}

// NewValidationError creates an error for validation failures
func NewValidationError(operation, field, value string, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       fmt.Sprintf("invalid %s: %q", field, value),
		Suggestions: suggestions,
	}
}

// NewConfigError creates an error for configuration issues
func NewConfigError(operation string, underlying error, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       "configuration error",
		Details:     underlying.Error(),
		Suggestions: suggestions,
		Underlying:  underlying,
	}
}

// storeCauses maps store sentinels to the cause shown to the user
var storeCauses = []struct {
	target error
	cause  string
	hint   string
}{
	{assetstore.ErrInvalidInput, "invalid data provided", CommonSuggestions.CheckFields},
	{assetstore.ErrCategoryExists, "category already exists", CommonSuggestions.CheckIDs},
	{assetstore.ErrCategoryNotFound, "category not found", "Add the category with an add_category step first"},
	{assetstore.ErrAssetNotFound, "asset not found", CommonSuggestions.CheckIDs},
	{assetstore.ErrConnectionExists, "assets are already connected", CommonSuggestions.CheckIDs},
	{assetstore.ErrConnectionNotFound, "connection not found", CommonSuggestions.CheckIDs},
	{assetstore.ErrSubAssetNotFound, "sub-asset not found", CommonSuggestions.CheckIDs},
	{assetstore.ErrTenderNotFound, "tender not found", CommonSuggestions.CheckIDs},
}

// NewStoreError creates an error for a store operation that was declined
func NewStoreError(operation string, underlying error, suggestions ...string) *CLIError {
	cause := "store operation failed"
	details := ""

	if underlying != nil {
		details = underlying.Error()
		for _, c := range storeCauses {
			if errors.Is(underlying, c.target) {
				cause = c.cause
				suggestions = append(suggestions, c.hint)
				break
			}
		}
	}

	return &CLIError{
		Operation:   operation,
		Cause:       cause,
		Details:     details,
		Suggestions: suggestions,
		Underlying:  underlying,
	}
}

// WrapError wraps an existing error with CLI-friendly context
func WrapError(operation string, err error, suggestions ...string) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Operation == "" {
			cliErr.Operation = operation
		}
		return cliErr
	}

	return NewStoreError(operation, err, suggestions...)
}

// CommonSuggestions are hints shared by several errors
var CommonSuggestions = struct {
	CheckIDs    string
	CheckFields string
	CheckConfig string
	RunHelp     string
	DropStrict  string
}{
	CheckIDs:    "Ids are generated in order; check the ids your earlier steps produced",
	CheckFields: "Check the step fields: names cannot be blank and numbers cannot be negative",
	CheckConfig: "Check assetctl.yaml or the ASSETCTL_* environment variables",
	RunHelp:     "Run command with --help for usage information",
	DropStrict:  "Run without --strict to report declined steps and continue",
}
