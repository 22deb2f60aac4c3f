// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package validation

// Form groups named fields and owns the cross-field wiring the engine
// itself deliberately does not have. Dependencies are declared explicitly:
// after DependsOn("confirmPassword", "password"), any change to "password"
// re-forces validation of "confirmPassword" — but only once the dependent
// holds text, so an untouched confirmation field does not light up red
// while the user is still typing the primary password.
type Form struct {
	order      []string
	fields     map[string]*Field
	dependents map[string][]string
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{
		fields:     make(map[string]*Field),
		dependents: make(map[string][]string),
	}
}

// Add registers a field under name. Field order is the insertion order;
// re-adding a name replaces the field but keeps its position.
func (f *Form) Add(name string, field *Field) {
	if _, exists := f.fields[name]; !exists {
		f.order = append(f.order, name)
	}
	f.fields[name] = field
}

// Field returns the named field, or nil if it was never added.
func (f *Form) Field(name string) *Field {
	return f.fields[name]
}

// Names returns the field names in insertion order.
func (f *Form) Names() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// DependsOn declares that the dependent field's rules read the other
// field's value (typically through a Custom rule closing over it), so a
// change to "on" must re-trigger the dependent's validation.
func (f *Form) DependsOn(dependent, on string) {
	f.dependents[on] = append(f.dependents[on], dependent)
}

// SetValue routes a user edit to the named field's OnChange and then
// re-validates any non-empty dependents of that field.
func (f *Form) SetValue(name, value string) {
	field := f.fields[name]
	if field == nil {
		return
	}
	field.OnChange(value)
	for _, dependentName := range f.dependents[name] {
		dependent := f.fields[dependentName]
		if dependent != nil && dependent.Value() != "" {
			dependent.ForceValidate()
		}
	}
}

// Blur routes focus-leave to the named field.
func (f *Form) Blur(name string) {
	if field := f.fields[name]; field != nil {
		field.OnBlur()
	}
}

// Validate force-validates every field and reports whether all passed.
// All fields are evaluated even after the first failure so each shows
// its own error.
func (f *Form) Validate() bool {
	ok := true
	for _, name := range f.order {
		if !f.fields[name].ForceValidate() {
			ok = false
		}
	}
	return ok
}

// Values returns the current raw text of every field by name.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for name, field := range f.fields {
		values[name] = field.Value()
	}
	return values
}

// Errors returns the fields with a surfaced error, by name. An empty map
// means the form is clean as of its last evaluation.
func (f *Form) Errors() map[string]string {
	errs := make(map[string]string)
	for name, field := range f.fields {
		if field.Error() != "" {
			errs[name] = field.Error()
		}
	}
	return errs
}

// Clear resets every field.
func (f *Form) Clear() {
	for _, field := range f.fields {
		field.Clear()
	}
}
