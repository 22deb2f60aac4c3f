// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/OwinoMichael/AI-Legal-Assistance/lib/validation"
)

func newLoginModel() Model {
	form := validation.NewForm()
	form.Add("email", validation.NewField(validation.PresetLoginEmail()))
	form.Add("password", validation.NewField(validation.PresetLoginPassword()))

	return New("Sign in", form, []FieldSpec{
		{Name: "email", Label: "Email"},
		{Name: "password", Label: "Password", Secret: true},
	})
}

func typeString(t *testing.T, model tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

func press(t *testing.T, model tea.Model, key tea.KeyType) tea.Model {
	t.Helper()
	model, _ = model.Update(tea.KeyMsg{Type: key})
	return model
}

func TestTypingFeedsValidation(t *testing.T) {
	model := typeString(t, newLoginModel(), "user@example.com")

	final := model.(Model)
	if got := final.Values()["email"]; got != "user@example.com" {
		t.Errorf("email value = %q", got)
	}
	// login email is a deferred field; no error while typing
	if err := final.form.Field("email").Error(); err != "" {
		t.Errorf("unexpected error while typing: %q", err)
	}
}

func TestFocusMoveBlursField(t *testing.T) {
	model := typeString(t, newLoginModel(), "not-an-email")
	model = press(t, model, tea.KeyTab)

	final := model.(Model)
	if err := final.form.Field("email").Error(); err == "" {
		t.Error("expected validation error after blur")
	}
	if !strings.Contains(final.View(), "valid email") {
		t.Errorf("error not rendered:\n%s", final.View())
	}
}

func TestEnterAdvancesThenSubmits(t *testing.T) {
	model := typeString(t, newLoginModel(), "user@example.com")
	model = press(t, model, tea.KeyEnter) // advance to password
	model = typeString(t, model, "hunter2!")
	model = press(t, model, tea.KeyEnter) // submit

	final := model.(Model)
	if !final.Submitted() {
		t.Fatal("form not submitted")
	}
	values := final.Values()
	if values["email"] != "user@example.com" || values["password"] != "hunter2!" {
		t.Errorf("unexpected values: %v", values)
	}
}

func TestSubmitBlockedByInvalidFields(t *testing.T) {
	m := typeString(t, newLoginModel(), "user@example.com")
	m = press(t, m, tea.KeyEnter) // to password, left empty
	m = press(t, m, tea.KeyEnter) // attempt submit

	final := m.(Model)
	if final.Submitted() {
		t.Fatal("form submitted with an empty required password")
	}
	if err := final.form.Field("password").Error(); err == "" {
		t.Error("expected password error after failed submit")
	}
}

func TestEscapeCancels(t *testing.T) {
	model := press(t, newLoginModel(), tea.KeyEsc)

	final := model.(Model)
	if !final.Canceled() {
		t.Error("expected canceled form")
	}
}
