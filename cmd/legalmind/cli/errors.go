// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/OwinoMichael/AI-Legal-Assistance/client"
)

// ErrorCategory classifies command errors so that scripts wrapping the
// CLI can make programmatic decisions (retry, fix input, re-login)
// without parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required parameters, wrong argument count, unparseable
	// values. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryUnauthenticated indicates no usable session: never logged
	// in, logged out, or the saved token was rejected by the server.
	// The caller should run "legalmind login".
	CategoryUnauthenticated ErrorCategory = "unauthenticated"

	// CategoryForbidden indicates the session lacks permission for the
	// requested operation, including unverified accounts hitting
	// verification-gated endpoints.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown case ID, missing document. Retrying with the same
	// parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryConflict indicates the operation conflicts with existing
	// state: duplicate resource, concurrent modification.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, server overload. The caller should back off and retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, parse errors on data the system produced. The caller
	// should report the error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// CommandError is a categorized error returned by CLI commands. The
// category travels alongside the human-readable message so wrappers can
// branch on it without string matching.
//
// CommandError wraps an inner error, preserving the full error chain
// for debugging while adding category metadata. Use the
// category-specific constructors (Validation, NotFound, etc.) rather
// than constructing CommandError directly.
type CommandError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not
// included in the string.
func (e *CommandError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the CommandError wrapper.
func (e *CommandError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Unauthenticated creates an unauthenticated error: no usable session.
func Unauthenticated(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryUnauthenticated, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the session lacks permission.
func Forbidden(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the operation conflicts with existing state.
func Conflict(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Classify wraps an error from the API client in a CommandError with
// the category derived from the server's error code and HTTP status.
// Errors that already carry a category pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var commandErr *CommandError
	if errors.As(err, &commandErr) {
		return err
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		// No structured server error: connection refused, timeout,
		// canceled context. All are worth retrying.
		return &CommandError{Category: CategoryTransient, Err: err}
	}

	category := CategoryInternal
	switch {
	case apiErr.Kind == client.ErrKindInvalidCredentials:
		category = CategoryUnauthenticated
	case apiErr.Kind == client.ErrKindAccountNotVerified:
		category = CategoryForbidden
	case apiErr.Kind == client.ErrKindInvalidInput:
		category = CategoryValidation
	case apiErr.StatusCode == http.StatusUnauthorized:
		category = CategoryUnauthenticated
	case apiErr.StatusCode == http.StatusForbidden:
		category = CategoryForbidden
	case apiErr.StatusCode == http.StatusNotFound:
		category = CategoryNotFound
	case apiErr.StatusCode == http.StatusConflict:
		category = CategoryConflict
	case apiErr.StatusCode >= http.StatusInternalServerError:
		category = CategoryTransient
	}

	return &CommandError{Category: category, Err: err}
}
