// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
)

// ErrorKind is a machine-readable error code from the backend.
type ErrorKind string

// Error codes returned by the backend.
const (
	ErrKindInvalidCredentials ErrorKind = "INVALID_CREDENTIALS"
	ErrKindAccountNotVerified ErrorKind = "ACCOUNT_NOT_VERIFIED"
	ErrKindInvalidInput       ErrorKind = "INVALID_INPUT"
	ErrKindServerError        ErrorKind = "SERVER_ERROR"
)

// APIError represents a structured error response from the LegalMind
// backend. Callers can use errors.As to extract it:
//
//	var apiErr *APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.Kind == ErrKindAccountNotVerified { ... }
//	}
type APIError struct {
	// Kind is the backend error code (e.g. "INVALID_CREDENTIALS").
	Kind ErrorKind `json:"error"`
	// Message is the human-readable error description from the server.
	Message string `json:"message"`
	// Email is set on ACCOUNT_NOT_VERIFIED errors so callers can offer
	// to resend the verification mail.
	Email string `json:"email,omitempty"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("legalmind: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

// IsKind checks whether err is an *APIError with the given error code.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// ErrNoTokenIssued is returned when a login response succeeds but
// carries no authentication token. The session is left untouched.
var ErrNoTokenIssued = errors.New("client: no authentication token received")

// ErrOperationInFlight is returned when a login or signup is started
// while another one is still running.
var ErrOperationInFlight = errors.New("client: authentication operation already in flight")
