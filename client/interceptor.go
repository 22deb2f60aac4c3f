// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"

	"github.com/OwinoMichael/AI-Legal-Assistance/lib/session"
)

// RequestInterceptor runs before a request is sent. Returning an error
// aborts the request.
type RequestInterceptor func(*http.Request) error

// ResponseInterceptor runs after an API error response has been parsed.
// It observes the failed response; it cannot alter it.
type ResponseInterceptor func(apiErr *APIError)

// BearerAuth returns a request interceptor that attaches the session's
// bearer token. Requests without a stored token go out unauthenticated.
func BearerAuth(store *session.Store) RequestInterceptor {
	return func(request *http.Request) error {
		if header := store.AuthorizationHeader(); header != "" {
			request.Header.Set("Authorization", header)
		}
		return nil
	}
}

// SessionExpiryPolicy returns a response interceptor implementing the
// 401 policy: when the server rejects a request as unauthorized and a
// token-bearing record is held locally, the record is cleared and the
// onExpired hook fires. A 401 with no local token (a failed login) is
// left alone.
func SessionExpiryPolicy(store *session.Store, onExpired func()) ResponseInterceptor {
	return func(apiErr *APIError) {
		if apiErr.StatusCode != http.StatusUnauthorized {
			return
		}
		record := store.Current()
		if record == nil || record.Token == "" {
			return
		}
		store.Clear()
		if onExpired != nil {
			onExpired()
		}
	}
}

// VerificationPolicy returns a response interceptor implementing the
// 403 policy: when the server refuses because the account is not yet
// verified, the onRequired hook fires with the account email.
func VerificationPolicy(onRequired func(email string)) ResponseInterceptor {
	return func(apiErr *APIError) {
		if apiErr.StatusCode != http.StatusForbidden || apiErr.Kind != ErrKindAccountNotVerified {
			return
		}
		if onRequired != nil {
			onRequired(apiErr.Email)
		}
	}
}
