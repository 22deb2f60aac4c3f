// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/OwinoMichael/AI-Legal-Assistance/lib/session"
)

// whoamiParams holds the parameters for the whoami command.
type whoamiParams struct {
	JSONOutput
	Verify bool `flag:"verify" desc:"verify the session against the backend"`
}

// whoamiOutput is the JSON output for the whoami command.
type whoamiOutput struct {
	Email       string `json:"email,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
	Status      string `json:"status"`
	SessionFile string `json:"session_file"`
	Verified    string `json:"verification,omitempty"`
}

// WhoAmICommand returns the "whoami" command for displaying the current
// account identity. Shows the saved session's email, account ID, and
// verification status. With --verify, checks the token against the
// backend to confirm the session is still valid.
func WhoAmICommand() *Command {
	var params whoamiParams

	return &Command{
		Name:    "whoami",
		Summary: "Show the current account identity",
		Description: `Display the currently logged-in account.

Shows the email, server-side account ID, and session status from the
saved session (created by "legalmind login" or "legalmind signup").

With --verify, the saved access token is checked against the backend
to confirm the session is still valid. Without --verify, only the
local session file is read (no network access).`,
		Usage: "legalmind whoami [flags]",
		Examples: []Example{
			{
				Description: "Show current identity",
				Command:     "legalmind whoami",
			},
			{
				Description: "Verify the session is still valid",
				Command:     "legalmind whoami --verify",
			},
		},
		Flags: func() *pflag.FlagSet {
			return FlagsFromParams("whoami", &params)
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store := session.NewStore(cfg.SessionFile(session.DefaultPath()))

			// Current returns nil when no session file exists; Status
			// handles that, the field reads must not.
			record := store.Current()
			output := whoamiOutput{
				Status:      record.Status().String(),
				SessionFile: store.Path(),
			}
			if record != nil {
				output.Email = record.Email
				output.UserID = record.UserID
			}

			if params.Verify && record.Status() != session.StatusAnonymous {
				apiClient, _, err := Connect()
				if err != nil {
					return err
				}

				verifyCtx, cancel := CallContext(ctx, cfg)
				defer cancel()

				if apiClient.ValidateToken(verifyCtx) {
					output.Verified = "valid"
				} else {
					output.Verified = "invalid"
					if done, err := params.EmitJSON(output); done {
						if err != nil {
							return err
						}
						return &ExitError{Code: 1}
					}
					printWhoami(output)
					fmt.Fprintln(os.Stderr, "Session expired or revoked — run \"legalmind login\" to refresh.")
					return &ExitError{Code: 1}
				}
			}

			if done, err := params.EmitJSON(output); done {
				return err
			}
			printWhoami(output)
			return nil
		},
	}
}

func printWhoami(output whoamiOutput) {
	if output.Email != "" {
		fmt.Fprintf(os.Stdout, "Email:        %s\n", output.Email)
	}
	if output.UserID != 0 {
		fmt.Fprintf(os.Stdout, "Account ID:   %d\n", output.UserID)
	}
	fmt.Fprintf(os.Stdout, "Status:       %s\n", output.Status)
	fmt.Fprintf(os.Stdout, "Session file: %s\n", output.SessionFile)
	if output.Verified != "" {
		fmt.Fprintf(os.Stdout, "Token:        %s\n", output.Verified)
	}
}
