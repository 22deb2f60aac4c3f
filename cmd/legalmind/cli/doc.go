// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the legalmind CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/legalmind/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// The package also owns the authentication workflow used by subcommand
// packages: [LoginCommand] and [SignupCommand] obtain credentials (from
// flags, files, or an interactive form) and persist the resulting session
// record, while [Connect] loads configuration and the saved session and
// builds an authenticated [client.Client] for commands that talk to the
// backend.
package cli
