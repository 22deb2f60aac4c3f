// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/OwinoMichael/AI-Legal-Assistance/client"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/config"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/session"
)

// Connect loads configuration ($LEGALMIND_CONFIG or built-in defaults)
// and the saved session file, and builds an API client for the
// configured backend. The client's expiry and verification hooks print
// actionable hints to stderr; commands only see the returned error.
//
// Connect itself performs no network access. Commands that require an
// authenticated session should call [RequireSession] on the returned
// client's store before making requests, so that the failure mode is a
// clear "run legalmind login" instead of a server rejection.
func Connect() (*client.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	store := session.NewStore(cfg.SessionFile(session.DefaultPath()))

	apiClient, err := client.New(client.Config{
		ServerURL: cfg.Server.URL,
		Store:     store,
		Logger:    NewClientLogger(slog.LevelWarn),
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "Session expired — run \"legalmind login\" to sign in again.")
		},
		OnVerificationRequired: func(email string) {
			fmt.Fprintf(os.Stderr, "Account %s is not verified — check your inbox or run \"legalmind resend\".\n", email)
		},
	})
	if err != nil {
		return nil, nil, Internal("create API client: %w", err)
	}

	return apiClient, cfg, nil
}

// loadConfig loads and validates configuration for commands that need
// it without a client (logout, whoami without --verify).
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, Internal("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, Internal("invalid configuration: %w", err)
	}
	return cfg, nil
}

// RequireSession checks that the saved session can authenticate
// requests. Returns a categorized error naming the fix: log in when
// anonymous, verify the account when the record is pending without a
// token.
//
// An unverified record that carries a token passes: the backend accepts
// its bearer token and gates verification-only surfaces itself.
func RequireSession(store *session.Store) error {
	record := store.Current()
	switch record.Status() {
	case session.StatusAnonymous:
		return Unauthenticated("not logged in — run \"legalmind login\"")
	case session.StatusPendingVerification:
		if record.Token == "" {
			return Forbidden("account %s is awaiting email verification — verify it, then run \"legalmind login\"", record.Email)
		}
		fmt.Fprintf(os.Stderr, "Note: account %s is not verified yet; some operations may be refused.\n", record.Email)
	}
	return nil
}

// CallContext derives a request context bounded by the configured
// request timeout. The caller must defer cancel().
func CallContext(parent context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, cfg.RequestTimeout())
}

// AnalysisContext derives a request context for document analysis
// calls, which routinely outlast the standard request timeout while
// the backend runs the language model. The bound is the larger of the
// configured timeout and ten minutes.
func AnalysisContext(parent context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	timeout := cfg.RequestTimeout()
	if timeout < 10*time.Minute {
		timeout = 10 * time.Minute
	}
	return context.WithTimeout(parent, timeout)
}
