// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/OwinoMichael/AI-Legal-Assistance/lib/secret"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/session"
)

// LoginResponse is the body of a successful POST /login.
type LoginResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	UserID   int64  `json:"id"`
	Verified bool   `json:"verified"`
}

// SignupRequest carries the fields for account creation. Password is
// held in protected memory until the JSON serialization boundary.
type SignupRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  *secret.Buffer
}

// Login authenticates against the backend and persists the resulting
// session record. At most one login or signup may be in flight per
// client; a concurrent call fails with ErrOperationInFlight.
//
// A 403 ACCOUNT_NOT_VERIFIED response persists a tokenless pending
// record so later commands know which account awaits verification. A
// 2xx response without a token leaves the session untouched and
// returns ErrNoTokenIssued.
func (c *Client) Login(ctx context.Context, email string, password *secret.Buffer) (*session.Record, error) {
	if email == "" {
		return nil, fmt.Errorf("client: email is required for login")
	}
	if password == nil {
		return nil, fmt.Errorf("client: password is required for login")
	}
	if !c.authInFlight.CompareAndSwap(false, true) {
		return nil, ErrOperationInFlight
	}
	defer c.authInFlight.Store(false)

	// Password is converted to string at the JSON serialization
	// boundary. The heap copy is short-lived, existing only for the
	// duration of the HTTP call.
	body, err := c.doRequest(ctx, http.MethodPost, "/login", map[string]any{
		"email":    email,
		"password": password.String(),
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Kind == ErrKindAccountNotVerified {
			pendingEmail := apiErr.Email
			if pendingEmail == "" {
				pendingEmail = email
			}
			// Best effort; the login error is what the caller acts on.
			if storeErr := c.store.Set(session.Record{Email: pendingEmail}); storeErr != nil {
				c.logger.Warn("failed to persist pending session", "error", storeErr)
			}
		}
		return nil, fmt.Errorf("client: login failed: %w", err)
	}

	var response LoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("client: failed to parse login response: %w", err)
	}
	if response.Token == "" {
		return nil, ErrNoTokenIssued
	}

	record := session.Record{
		Token:    response.Token,
		Email:    response.Email,
		UserID:   response.UserID,
		Verified: response.Verified,
	}
	if err := c.store.Set(record); err != nil {
		return nil, fmt.Errorf("client: persisting session: %w", err)
	}
	c.logger.Info("logged in", "email", record.Email)
	return &record, nil
}

// Signup creates a new account. The backend sends a verification mail;
// a tokenless pending record is persisted so the CLI can offer to
// resend it. Shares the in-flight guard with Login.
func (c *Client) Signup(ctx context.Context, request SignupRequest) error {
	if request.Email == "" {
		return fmt.Errorf("client: email is required for signup")
	}
	if request.Password == nil {
		return fmt.Errorf("client: password is required for signup")
	}
	if !c.authInFlight.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer c.authInFlight.Store(false)

	_, err := c.doRequest(ctx, http.MethodPost, "/createNewUser", map[string]any{
		"firstName": request.FirstName,
		"lastName":  request.LastName,
		"email":     request.Email,
		"password":  request.Password.String(),
	})
	if err != nil {
		return fmt.Errorf("client: signup failed: %w", err)
	}

	if storeErr := c.store.Set(session.Record{Email: request.Email}); storeErr != nil {
		c.logger.Warn("failed to persist pending session", "error", storeErr)
	}
	c.logger.Info("account created, verification mail sent", "email", request.Email)
	return nil
}

// ResendVerification asks the backend to resend the verification mail.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("client: email is required to resend verification")
	}
	_, err := c.doRequest(ctx, http.MethodPost, "/resend-verification", map[string]any{
		"email": email,
	})
	if err != nil {
		return fmt.Errorf("client: resend verification failed: %w", err)
	}
	return nil
}

// ValidateToken checks whether the stored token is still accepted by
// the backend. It never returns an error: any failure means the token
// is not valid. An expired token triggers the 401 policy, clearing the
// local session.
func (c *Client) ValidateToken(ctx context.Context) bool {
	_, err := c.doRequest(ctx, http.MethodGet, "/validate-token", nil)
	return err == nil
}

// Logout discards the local session record. The backend holds no
// server-side session state for bearer tokens, so there is nothing
// that can fail remotely.
func (c *Client) Logout() error {
	c.store.Clear()
	return nil
}
