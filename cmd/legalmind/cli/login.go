// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
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

// loginParams holds the parameters for the login command. All flags are
// credential handling only.
type loginParams struct {
	PasswordFile string `flag:"password-file" desc:"path to file containing the password, or - for stdin (default: prompt)"`
}

// LoginCommand returns the "login" command for authenticating an
// account. This posts the credentials to the backend and saves the
// resulting session to the well-known path
// (~/.config/legalmind/session.json). Subsequent CLI commands (case,
// document) load this session transparently, like SSH keys.
func LoginCommand() *Command {
	var params loginParams

	return &Command{
		Name:    "login",
		Summary: "Sign in and save the session locally",
		Description: `Log in to a LegalMind backend and save the session locally.

After login, commands like "legalmind case list" use the saved session
transparently — no flags needed. Authenticate once, then access is
seamless.

The session file is stored at ~/.config/legalmind/session.json (or
$LEGALMIND_SESSION_FILE if set, or $XDG_CONFIG_HOME/legalmind/
session.json). The file is written with mode 0600 (owner-only
read/write) since it contains an access token.

The password can be provided via --password-file (a path to a file
containing the password, or - for stdin) or prompted interactively.
When no email is given and stdin is a terminal, an interactive form
with live field validation opens instead.`,
		Usage: "legalmind login [email] [flags]",
		Examples: []Example{
			{
				Description: "Log in interactively (opens a form)",
				Command:     "legalmind login",
			},
			{
				Description: "Log in with a known email (prompts for password)",
				Command:     "legalmind login ada@example.com",
			},
			{
				Description: "Log in with password from a file",
				Command:     "legalmind login ada@example.com --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet {
			return FlagsFromParams("login", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 1 {
				return Validation("unexpected argument: %s", args[1])
			}

			var email string
			var password *secret.Buffer
			var err error

			if len(args) == 1 {
				email = args[0]
				if message := validateLoginEmail(email); message != "" {
					return Validation("email: %s", message)
				}
				password, err = readLoginPassword(params.PasswordFile)
				if err != nil {
					return err
				}
			} else {
				email, password, err = promptLoginForm()
				if err != nil {
					return err
				}
				if password == nil {
					// Form canceled.
					return &ExitError{Code: 1}
				}
			}
			defer password.Close()

			apiClient, cfg, err := Connect()
			if err != nil {
				return err
			}

			loginCtx, cancel := CallContext(ctx, cfg)
			defer cancel()

			record, err := apiClient.Login(loginCtx, email, password)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.Kind == client.ErrKindAccountNotVerified {
					// The verification hook already printed the hint.
					return &ExitError{Code: 1}
				}
				return Classify(fmt.Errorf("login failed: %w", err))
			}

			logger.Info("logged in", "email", record.Email, "verified", record.Verified)
			fmt.Fprintf(os.Stderr, "Logged in as %s\n", record.Email)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", apiClient.Store().Path())
			return nil
		},
	}
}

// validateLoginEmail runs the login email rules over a value supplied
// on the command line, returning the field error message or "".
func validateLoginEmail(email string) string {
	field := validation.NewField(validation.PresetLoginEmail())
	field.SetValue(email)
	field.ForceValidate()
	return field.Error()
}

// promptLoginForm collects credentials through the interactive form.
// Returns a nil buffer (and nil error) when the user cancels.
func promptLoginForm() (string, *secret.Buffer, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil, Validation("no terminal available for interactive login (pass an email and --password-file)")
	}

	form := validation.NewForm()
	form.Add("email", validation.NewField(validation.PresetLoginEmail()))
	form.Add("password", validation.NewField(validation.PresetLoginPassword()))

	model := formui.New("Sign in to LegalMind", form, []formui.FieldSpec{
		{Name: "email", Label: "Email", Placeholder: "you@example.com"},
		{Name: "password", Label: "Password", Secret: true},
	})

	final, err := formui.Run(model)
	if err != nil {
		return "", nil, Internal("interactive login: %w", err)
	}
	if !final.Submitted() {
		return "", nil, nil
	}

	values := final.Values()
	buffer, err := secret.NewFromBytes([]byte(values["password"]))
	if err != nil {
		return "", nil, Internal("allocate password buffer: %w", err)
	}
	return values["email"], buffer, nil
}

// readLoginPassword reads a password for the login command. If
// passwordFile is empty, prompts interactively on the terminal with
// echo disabled. Otherwise reads from the file path ("-" for stdin).
//
// Login does not require password confirmation. The server validates
// the password immediately.
func readLoginPassword(passwordFile string) (*secret.Buffer, error) {
	if passwordFile != "" {
		buffer, err := secret.ReadFromPath(passwordFile)
		if err != nil {
			return nil, Validation("read password from %s: %w", passwordFile, err)
		}
		return buffer, nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return nil, Validation("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, Internal("reading password: %w", err)
	}

	buffer, err := secret.NewFromBytes(passwordBytes)
	if err != nil {
		secret.Zero(passwordBytes)
		return nil, Internal("allocate password buffer: %w", err)
	}
	return buffer, nil
}
