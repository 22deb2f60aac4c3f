// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/OwinoMichael/AI-Legal-Assistance/lib/session"
)

// LogoutCommand returns the "logout" command. Logout is purely local:
// the backend issues stateless tokens, so discarding the session file
// is the whole operation. Logging out while already logged out is not
// an error.
func LogoutCommand() *Command {
	return &Command{
		Name:    "logout",
		Summary: "Discard the saved session",
		Description: `Remove the saved session file.

The backend holds no server-side session state, so this is a local
operation: the token simply stops being sent. Run "legalmind login"
to sign in again.`,
		Usage: "legalmind logout",
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store := session.NewStore(cfg.SessionFile(session.DefaultPath()))

			wasLoggedIn := store.Status() != session.StatusAnonymous
			store.Clear()

			if wasLoggedIn {
				logger.Info("logged out")
				fmt.Fprintln(os.Stderr, "Logged out.")
			} else {
				fmt.Fprintln(os.Stderr, "Not logged in.")
			}
			return nil
		},
	}
}
