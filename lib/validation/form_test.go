// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package validation

import "testing"

// newSignupForm builds the password/confirm-password pair the signup form
// uses: the confirmation's custom rule closes over the password field and
// the form re-validates the confirmation when the password changes.
func newSignupForm() *Form {
	form := NewForm()
	password := NewField(PresetPassword())
	form.Add("password", password)
	form.Add("confirmPassword", NewField(PresetConfirmPassword(password.Value)))
	form.DependsOn("confirmPassword", "password")
	return form
}

func TestFormConfirmPasswordDependency(t *testing.T) {
	form := newSignupForm()

	form.SetValue("password", "Password1!")
	form.SetValue("confirmPassword", "Password1!")
	form.Blur("confirmPassword")
	if got := form.Field("confirmPassword").Error(); got != "" {
		t.Fatalf("matching confirmation errored: %q", got)
	}

	// Editing the primary must re-validate the (non-empty) confirmation.
	form.SetValue("password", "Password2!")
	if got := form.Field("confirmPassword").Error(); got != "Passwords do not match" {
		t.Errorf("dependent not re-validated: error = %q", got)
	}

	// Fixing the primary clears it again, without touching the
	// confirmation directly.
	form.SetValue("password", "Password1!")
	if got := form.Field("confirmPassword").Error(); got != "" {
		t.Errorf("dependent kept stale error: %q", got)
	}
}

func TestFormDependencySkipsEmptyDependent(t *testing.T) {
	form := newSignupForm()

	// The user is still typing the primary password; the untouched
	// confirmation must stay quiet.
	form.SetValue("password", "Password1!")
	if got := form.Field("confirmPassword").Error(); got != "" {
		t.Errorf("empty dependent was validated: %q", got)
	}
}

func TestFormValidate(t *testing.T) {
	form := NewForm()
	form.Add("email", NewField(PresetLoginEmail()))
	form.Add("password", NewField(PresetLoginPassword()))

	if form.Validate() {
		t.Error("empty required form validated")
	}
	// Every field gets its own error, not just the first.
	errs := form.Errors()
	if errs["email"] == "" || errs["password"] == "" {
		t.Errorf("expected errors on both fields, got %v", errs)
	}

	form.SetValue("email", "jdoe@example.com")
	form.SetValue("password", "hunter2")
	if !form.Validate() {
		t.Errorf("valid form rejected: %v", form.Errors())
	}

	form.Clear()
	if form.Field("email").Value() != "" {
		t.Error("Clear left a value behind")
	}
}
