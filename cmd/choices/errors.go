// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// ErrorCategory classifies command errors for the exit status.
type ErrorCategory string

const (
	// CategoryValidation means the invocation was wrong: bad flags,
	// unreadable or malformed input files.
	CategoryValidation ErrorCategory = "validation"

	// CategoryAborted means the user cancelled the picker.
	CategoryAborted ErrorCategory = "aborted"

	// CategoryInternal is anything else.
	CategoryInternal ErrorCategory = "internal"
)

// CommandError is a categorized error. It wraps the underlying error
// so errors.Is and errors.As see the full chain.
type CommandError struct {
	Category ErrorCategory
	Err      error
	Hint     string
}

func (e *CommandError) Error() string { return e.Err.Error() }

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode maps the category to a process exit status.
func (e *CommandError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryAborted:
		return 130
	default:
		return 1
	}
}

// WithHint attaches a suggestion printed after the error.
func (e *CommandError) WithHint(hint string) *CommandError {
	e.Hint = hint
	return e
}

// Validation creates a validation error.
func Validation(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Aborted creates the error returned when the user cancels.
func Aborted() *CommandError {
	return &CommandError{Category: CategoryAborted, Err: fmt.Errorf("aborted")}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
