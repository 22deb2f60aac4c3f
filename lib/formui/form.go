// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package formui hosts a validation.Form inside a bubbletea terminal
// form. Each keystroke feeds the field's on-change path (so live
// fields show errors while typing and deferred fields stay quiet),
// moving focus blurs the field, and submitting runs whole-form
// validation.
package formui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OwinoMichael/AI-Legal-Assistance/lib/validation"
)

// FieldSpec describes one input row of the form.
type FieldSpec struct {
	// Name is the field's key in the validation.Form.
	Name string
	// Label is shown above the input.
	Label string
	// Placeholder is shown while the input is empty.
	Placeholder string
	// Secret masks the input (passwords).
	Secret bool
}

// Model is a bubbletea model wrapping a validation.Form.
type Model struct {
	Title string

	form   *validation.Form
	specs  []FieldSpec
	inputs []textinput.Model
	focus  int

	submitted bool
	canceled  bool

	labelStyle lipgloss.Style
	errorStyle lipgloss.Style
	helpStyle  lipgloss.Style
}

// New builds a form model. Each spec must name a field already added
// to the form.
func New(title string, form *validation.Form, specs []FieldSpec) Model {
	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		input := textinput.New()
		input.Placeholder = spec.Placeholder
		input.Prompt = "> "
		input.CharLimit = 256
		if spec.Secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		if i == 0 {
			input.Focus()
		}
		inputs[i] = input
	}

	return Model{
		Title:      title,
		form:       form,
		specs:      specs,
		inputs:     inputs,
		labelStyle: lipgloss.NewStyle().Bold(true),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		helpStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, isKey := message.(tea.KeyMsg)
	if !isKey {
		return m.updateFocused(message)
	}

	switch keyMessage.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.canceled = true
		return m, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		m.blurFocused()
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.blurFocused()
		m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil

	case tea.KeyEnter:
		if m.focus < len(m.inputs)-1 {
			m.blurFocused()
			m.setFocus(m.focus + 1)
			return m, nil
		}
		m.blurFocused()
		if m.form.Validate() {
			m.submitted = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m.updateFocused(message)
}

// updateFocused forwards a message to the focused input and pushes its
// new value through the field's on-change path.
func (m Model) updateFocused(message tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(message)
	m.form.SetValue(m.specs[m.focus].Name, m.inputs[m.focus].Value())
	return m, cmd
}

// blurFocused runs the field's on-blur evaluation when focus leaves it.
func (m *Model) blurFocused() {
	m.inputs[m.focus].Blur()
	m.form.Blur(m.specs[m.focus].Name)
}

func (m *Model) setFocus(index int) {
	m.focus = index
	m.inputs[index].Focus()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.submitted || m.canceled {
		return ""
	}

	view := m.labelStyle.Render(m.Title) + "\n\n"
	for i, spec := range m.specs {
		view += m.labelStyle.Render(spec.Label) + "\n"
		view += m.inputs[i].View() + "\n"
		if fieldError := m.form.Field(spec.Name).Error(); fieldError != "" {
			view += m.errorStyle.Render("  "+fieldError) + "\n"
		}
		view += "\n"
	}
	view += m.helpStyle.Render("enter submit · tab next field · esc cancel") + "\n"
	return view
}

// Submitted reports whether the form was completed and validated.
func (m Model) Submitted() bool { return m.submitted }

// Canceled reports whether the user aborted the form.
func (m Model) Canceled() bool { return m.canceled }

// Values returns the form's current field values by name.
func (m Model) Values() map[string]string { return m.form.Values() }

// Run drives the form to completion on the terminal and returns the
// final model. The returned error covers terminal failures only; check
// Submitted and Canceled for the outcome.
func Run(model Model) (Model, error) {
	program := tea.NewProgram(model)
	final, err := program.Run()
	if err != nil {
		return model, fmt.Errorf("formui: %w", err)
	}
	result, ok := final.(Model)
	if !ok {
		return model, fmt.Errorf("formui: unexpected final model %T", final)
	}
	return result, nil
}
