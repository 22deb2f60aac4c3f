// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package validation implements the declarative field-validation engine
// used by the LegalMind forms: a field's raw text is evaluated against an
// ordered rule set and resolves to either "valid" or exactly one
// human-readable error message.
//
// The engine is pure and synchronous. Validation failures are values, not
// errors — nothing in this package returns an error or panics on bad user
// input. Rules are checked in a fixed priority order (MinLength, MaxLength,
// Pattern, Custom; Required applies only to blank input) so that the most
// fundamental constraint is the one reported.
//
// [Field] carries the transient per-input state (current text, current
// error, live-vs-deferred evaluation mode). [Form] groups named fields and
// handles cross-field dependencies: a "confirm password" field declares a
// dependency on the password field, and the form re-validates it whenever
// the password changes.
package validation
