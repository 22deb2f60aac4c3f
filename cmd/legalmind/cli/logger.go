// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command operations.
// When stderr is a terminal, uses slog.TextHandler for human-readable
// output. When stderr is piped or redirected (CI, scripts), uses
// slog.JSONHandler for machine-parseable output.
//
// [Command.Execute] scopes the logger with the command path before
// passing it to Run; further scoping via With() is up to the command:
//
//	logger = logger.With("case", params.Case)
func NewCommandLogger() *slog.Logger {
	return newLoggerAt(slog.LevelInfo)
}

// NewClientLogger creates a logger for the API client used inside CLI
// commands. The level is raised so that per-request debug output from
// the client does not drown interactive command output.
func NewClientLogger(level slog.Level) *slog.Logger {
	return newLoggerAt(level)
}

func newLoggerAt(level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
