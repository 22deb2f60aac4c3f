// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/OwinoMichael/AI-Legal-Assistance/client"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/formui"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/secret"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/validation"
)

// signupParams holds the parameters for the signup command. Flags are
// the scripting alternative to the interactive form.
type signupParams struct {
	FirstName    string `flag:"first-name"    desc:"first name"`
	LastName     string `flag:"last-name"     desc:"last name"`
	Email        string `flag:"email"         desc:"account email"`
	PasswordFile string `flag:"password-file" desc:"path to file containing the password, or - for stdin"`
}

// SignupCommand returns the "signup" command for creating an account.
// Without flags it opens an interactive form with the same live
// validation the web client applies: names, email shape, password
// composition, and a matching confirmation field. With flags set, all
// fields are validated in one pass before the request is sent.
//
// A successful signup does not authenticate: the backend sends a
// verification email, and the saved session records the pending state
// so "legalmind whoami" can report it.
func SignupCommand() *Command {
	var params signupParams

	return &Command{
		Name:    "signup",
		Summary: "Create a LegalMind account",
		Description: `Create a new LegalMind account.

Run without flags to fill in an interactive form with live validation.
For scripting, pass --first-name, --last-name, --email, and
--password-file; the same validation rules run before any request is
sent, so the server never sees input the form would have rejected.

Signing up does not log you in. The backend emails a verification
link; once verified, run "legalmind login".`,
		Usage: "legalmind signup [flags]",
		Examples: []Example{
			{
				Description: "Create an account interactively",
				Command:     "legalmind signup",
			},
			{
				Description: "Create an account non-interactively",
				Command:     "legalmind signup --first-name Ada --last-name Lovelace --email ada@example.com --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet {
			return FlagsFromParams("signup", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}

			request, err := collectSignup(&params)
			if err != nil {
				return err
			}
			if request == nil {
				// Form canceled.
				return &ExitError{Code: 1}
			}
			defer request.Password.Close()

			apiClient, cfg, err := Connect()
			if err != nil {
				return err
			}

			signupCtx, cancel := CallContext(ctx, cfg)
			defer cancel()

			if err := apiClient.Signup(signupCtx, *request); err != nil {
				return Classify(fmt.Errorf("signup failed: %w", err))
			}

			logger.Info("account created", "email", request.Email)
			fmt.Fprintf(os.Stderr, "Account created for %s.\n", request.Email)
			fmt.Fprintf(os.Stderr, "Check your inbox for the verification link, then run \"legalmind login\".\n")
			return nil
		},
	}
}

// collectSignup builds the signup request from flags when all are set,
// or from the interactive form otherwise. Returns (nil, nil) when the
// form is canceled.
func collectSignup(params *signupParams) (*client.SignupRequest, error) {
	if params.FirstName != "" || params.LastName != "" || params.Email != "" || params.PasswordFile != "" {
		return signupFromFlags(params)
	}
	return promptSignupForm()
}

// signupFromFlags validates the flag-supplied fields with the same
// rules the form applies and reads the password from the given source.
func signupFromFlags(params *signupParams) (*client.SignupRequest, error) {
	password, err := readLoginPassword(params.PasswordFile)
	if err != nil {
		return nil, err
	}

	form := signupForm(password.String)
	form.SetValue("firstName", params.FirstName)
	form.SetValue("lastName", params.LastName)
	form.SetValue("email", params.Email)
	form.SetValue("password", password.String())
	form.SetValue("confirm", password.String())

	if !form.Validate() {
		password.Close()
		return nil, signupValidationError(form)
	}

	return &client.SignupRequest{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Password:  password,
	}, nil
}

// promptSignupForm collects the account fields through the interactive
// form. Returns (nil, nil) when the user cancels.
func promptSignupForm() (*client.SignupRequest, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, Validation("no terminal available for interactive signup (use --first-name, --last-name, --email, --password-file)")
	}

	form := signupForm(nil)
	model := formui.New("Create a LegalMind account", form, []formui.FieldSpec{
		{Name: "firstName", Label: "First name"},
		{Name: "lastName", Label: "Last name"},
		{Name: "email", Label: "Email", Placeholder: "you@example.com"},
		{Name: "password", Label: "Password", Secret: true},
		{Name: "confirm", Label: "Confirm password", Secret: true},
	})

	final, err := formui.Run(model)
	if err != nil {
		return nil, Internal("interactive signup: %w", err)
	}
	if !final.Submitted() {
		return nil, nil
	}

	values := final.Values()
	password, err := secret.NewFromBytes([]byte(values["password"]))
	if err != nil {
		return nil, Internal("allocate password buffer: %w", err)
	}

	return &client.SignupRequest{
		FirstName: values["firstName"],
		LastName:  values["lastName"],
		Email:     values["email"],
		Password:  password,
	}, nil
}

// signupForm builds the validation form shared by the interactive and
// flag paths. passwordValue overrides the confirm field's source of
// truth; when nil, the confirm rule reads the form's own password
// field (the interactive case).
func signupForm(passwordValue func() string) *validation.Form {
	form := validation.NewForm()
	form.Add("firstName", validation.NewField(validation.PresetFirstName()))
	form.Add("lastName", validation.NewField(validation.PresetLastName()))
	form.Add("email", validation.NewField(validation.PresetEmail()))

	passwordField := validation.NewField(validation.PresetPassword())
	form.Add("password", passwordField)

	if passwordValue == nil {
		passwordValue = passwordField.Value
	}
	form.Add("confirm", validation.NewField(validation.PresetConfirmPassword(passwordValue)))
	form.DependsOn("confirm", "password")
	return form
}

// signupValidationError flattens the form's field errors into a single
// categorized error for the non-interactive path.
func signupValidationError(form *validation.Form) error {
	errorsByField := form.Errors()
	message := ""
	for _, name := range form.Names() {
		if fieldError, ok := errorsByField[name]; ok && fieldError != "" {
			if message != "" {
				message += "; "
			}
			message += name + ": " + fieldError
		}
	}
	return Validation("invalid signup fields: %s", message)
}
