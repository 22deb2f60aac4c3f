// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package client is a typed client for the LegalMind backend API.
//
// A [Client] wraps an HTTP transport, a [session.Store] for the local
// authentication record, and an interceptor chain. Request
// interceptors run before every request; the default chain attaches
// the bearer token from the session store. Response interceptors run
// on every API error; the default chain clears the session and fires
// the OnSessionExpired hook on 401 when a token was held, and fires
// OnVerificationRequired on 403 when the account is unverified.
//
// API failures are returned as [*APIError] values carrying the
// server's error code, message, and HTTP status. Use errors.As or the
// IsKind helpers to classify them:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) && apiErr.Kind == client.ErrKindInvalidCredentials { ... }
package client
