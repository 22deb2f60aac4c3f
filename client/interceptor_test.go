// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"
	"testing"
)

func TestBearerAttachment(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"title":"t"}`))
	})

	t.Run("token attached when held", func(t *testing.T) {
		tc := newTestClient(t, handler)
		tc.authenticate(t)

		if _, err := tc.GetCase(context.Background(), 1); err != nil {
			t.Fatalf("GetCase failed: %v", err)
		}
		if gotAuth != "Bearer test-token" {
			t.Errorf("Authorization = %q", gotAuth)
		}
	})

	t.Run("anonymous requests carry no header", func(t *testing.T) {
		tc := newTestClient(t, handler)

		if _, err := tc.GetCase(context.Background(), 1); err != nil {
			t.Fatalf("GetCase failed: %v", err)
		}
		if gotAuth != "" {
			t.Errorf("Authorization = %q, want empty", gotAuth)
		}
	})
}

func TestSessionExpiryPolicy(t *testing.T) {
	unauthorized := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	t.Run("clears session when token held", func(t *testing.T) {
		tc := newTestClient(t, unauthorized)
		tc.authenticate(t)

		tc.GetCase(context.Background(), 1)

		if !tc.expiredFired {
			t.Error("hook did not fire")
		}
		if tc.store.Current() != nil {
			t.Error("session not cleared")
		}
	})

	t.Run("quiet without a token", func(t *testing.T) {
		tc := newTestClient(t, unauthorized)

		tc.GetCase(context.Background(), 1)

		if tc.expiredFired {
			t.Error("hook fired without a held token")
		}
	})
}

func TestVerificationPolicy(t *testing.T) {
	t.Run("fires on unverified 403", func(t *testing.T) {
		tc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"ACCOUNT_NOT_VERIFIED","message":"verify first","email":"p@example.com"}`))
		}))

		tc.GetCase(context.Background(), 1)

		if tc.verificationEmail != "p@example.com" {
			t.Errorf("hook email = %q", tc.verificationEmail)
		}
	})

	t.Run("quiet on other 403s", func(t *testing.T) {
		tc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"SERVER_ERROR","message":"not yours"}`))
		}))

		tc.GetCase(context.Background(), 1)

		if tc.verificationEmail != "" {
			t.Errorf("hook fired: %q", tc.verificationEmail)
		}
	})
}

func TestCustomInterceptors(t *testing.T) {
	var gotHeader string
	tc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Request-Source")
		w.Write([]byte(`{"id":1}`))
	}))

	tc.Use(func(request *http.Request) error {
		request.Header.Set("X-Request-Source", "cli")
		return nil
	})

	var observed []ErrorKind
	tc.UseResponse(func(apiErr *APIError) {
		observed = append(observed, apiErr.Kind)
	})

	if _, err := tc.GetCase(context.Background(), 1); err != nil {
		t.Fatalf("GetCase failed: %v", err)
	}
	if gotHeader != "cli" {
		t.Errorf("X-Request-Source = %q", gotHeader)
	}
	if len(observed) != 0 {
		t.Errorf("response interceptor ran on success: %v", observed)
	}
}
