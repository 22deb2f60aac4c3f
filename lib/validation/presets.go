// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package validation

import "regexp"

// Shared patterns for the preset rule sets. The email pattern is
// deliberately loose — anything shaped like local@domain.tld — since the
// server re-validates and sends the verification mail anyway.
var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]+$`)
	phonePattern    = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
)

// PresetEmail validates an email address, evaluated on blur.
func PresetEmail() FieldConfig {
	return FieldConfig{
		Rules: Rules(
			Required("Email is required"),
			Pattern(emailPattern, "Please enter a valid email address"),
		),
	}
}

// PresetLoginEmail is the login form's email field: same rules as
// PresetEmail, but never evaluated mid-typing — login forms only report
// problems on submit.
func PresetLoginEmail() FieldConfig {
	config := PresetEmail()
	config.ValidateOnChange = false
	return config
}

// PresetLoginPassword is the login form's password field. Only presence
// is checked: the composition rules apply at signup, and rejecting a
// login password locally for failing them would lock out accounts created
// under older rules.
func PresetLoginPassword() FieldConfig {
	return FieldConfig{
		Rules: Rules(Required("Password is required")),
	}
}

// PresetFirstName validates a person's first name.
func PresetFirstName() FieldConfig {
	return nameField("First name")
}

// PresetLastName validates a person's last name.
func PresetLastName() FieldConfig {
	return nameField("Last name")
}

func nameField(label string) FieldConfig {
	return FieldConfig{
		Rules: Rules(
			Required(label+" is required"),
			MinLength(2, label+" must be at least 2 characters"),
			MaxLength(50, label+" cannot exceed 50 characters"),
			Pattern(namePattern, label+" can only contain letters, spaces, hyphens, and apostrophes"),
		),
	}
}

// PresetPassword is the signup password field with composition rules.
// The pattern restricts the charset; class presence (uppercase,
// lowercase, digit, special) is a Custom rule because Go's regexp has no
// lookahead and a predicate reads better than a contorted expression.
func PresetPassword() FieldConfig {
	return FieldConfig{
		Rules: Rules(
			Required("Password is required"),
			MinLength(8, "At least 8 characters required"),
			MaxLength(128, "Too long (max 128 characters)"),
			Pattern(passwordCharset, "Only letters, numbers and @$!%*?& are allowed"),
			Custom(passwordComposition, "Must include: uppercase, lowercase, number & special character"),
		),
	}
}

func passwordComposition(value string) bool {
	var lower, upper, digit, special bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}

// PresetPhone validates a phone number.
func PresetPhone() FieldConfig {
	return FieldConfig{
		Rules: Rules(
			Required("Phone number is required"),
			Pattern(phonePattern, "Please enter a valid phone number"),
		),
	}
}

// PresetConfirmPassword validates a confirmation field against the
// current value of its primary field, read through passwordValue so the
// rule always sees the latest text. Register the dependency with
// [Form.DependsOn] so edits to the primary re-validate the confirmation.
func PresetConfirmPassword(passwordValue func() string) FieldConfig {
	return FieldConfig{
		Rules: Rules(
			Required("Please confirm your password"),
			Custom(func(value string) bool { return value == passwordValue() }, "Passwords do not match"),
		),
	}
}
