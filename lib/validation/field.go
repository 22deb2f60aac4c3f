// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package validation

import "strings"

// FieldConfig configures a [Field].
type FieldConfig struct {
	// Rules are the field's constraints.
	Rules RuleSet

	// ValidateOnChange selects live evaluation: every OnChange re-runs
	// the rules and updates the error. When false (the default for forms
	// like login, where mid-typing errors are noise), OnChange only
	// records the value and evaluation waits for blur or submit.
	ValidateOnChange bool
}

// Field is the transient validation state of one form input: the current
// text, the current error message, and the evaluation mode. It is created
// when the input appears, mutated by every keystroke/blur/submit, and
// discarded with the form. Nothing is persisted.
//
// A Field is not safe for concurrent use; form state lives on a single
// UI goroutine.
type Field struct {
	rules            RuleSet
	validateOnChange bool

	value string
	err   string
}

// NewField creates a field with the given configuration.
func NewField(config FieldConfig) *Field {
	return &Field{
		rules:            config.Rules,
		validateOnChange: config.ValidateOnChange,
	}
}

// Value returns the field's current raw text.
func (f *Field) Value() string { return f.value }

// Error returns the current error message, or "" when the field has no
// surfaced error. A field that has never been evaluated reports "".
func (f *Field) Error() string { return f.err }

// OnChange records a new value from the user. In live mode the rules are
// re-run immediately; in deferred mode the previously surfaced error is
// left untouched until blur or submit.
func (f *Field) OnChange(value string) {
	f.value = value
	if f.validateOnChange {
		f.err = f.rules.Evaluate(f.value)
	}
}

// OnBlur re-evaluates the current value unconditionally. This is what
// guarantees deferred-mode fields still get validated once the user
// leaves them.
func (f *Field) OnBlur() {
	f.err = f.rules.Evaluate(f.value)
}

// ForceValidate re-evaluates the current value regardless of mode and
// reports whether it passed. This is the authoritative submit-time gate.
func (f *Field) ForceValidate() bool {
	f.err = f.rules.Evaluate(f.value)
	return f.err == ""
}

// Clear resets both the value and the error, returning the field to its
// initial state without recreating it. Used after a successful submit.
func (f *Field) Clear() {
	f.value = ""
	f.err = ""
}

// SetValue replaces the value without evaluating, for programmatic
// prefill (e.g. an email carried over from a previous screen).
func (f *Field) SetValue(value string) {
	f.value = value
}

// Valid reports whether the field currently holds a non-blank value with
// no surfaced error.
func (f *Field) Valid() bool {
	return strings.TrimSpace(f.value) != "" && f.err == ""
}
