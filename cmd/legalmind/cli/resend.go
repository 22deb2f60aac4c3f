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

// ResendCommand returns the "resend" command for requesting a fresh
// verification email. The email defaults to the one recorded by the
// last signup or unverified login attempt, so the common flow is
// signup, then a bare "legalmind resend" when the first email is lost.
func ResendCommand() *Command {
	return &Command{
		Name:    "resend",
		Summary: "Resend the account verification email",
		Description: `Request a new verification email.

The target email defaults to the address saved by "legalmind signup"
or a login attempt against an unverified account. Pass an email
explicitly to override.`,
		Usage: "legalmind resend [email]",
		Examples: []Example{
			{
				Description: "Resend to the pending account from the last signup",
				Command:     "legalmind resend",
			},
			{
				Description: "Resend to an explicit address",
				Command:     "legalmind resend ada@example.com",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 1 {
				return Validation("unexpected argument: %s", args[1])
			}

			apiClient, cfg, err := Connect()
			if err != nil {
				return err
			}

			email := ""
			if len(args) == 1 {
				email = args[0]
				if message := validateLoginEmail(email); message != "" {
					return Validation("email: %s", message)
				}
			} else {
				record := apiClient.Store().Current()
				if record.Status() == session.StatusAnonymous || record.Email == "" {
					return Validation("no pending account on file — pass the email: legalmind resend <email>")
				}
				email = record.Email
			}

			resendCtx, cancel := CallContext(ctx, cfg)
			defer cancel()

			if err := apiClient.ResendVerification(resendCtx, email); err != nil {
				return Classify(fmt.Errorf("resend verification: %w", err))
			}

			logger.Info("verification email requested", "email", email)
			fmt.Fprintf(os.Stderr, "Verification email sent to %s.\n", email)
			return nil
		},
	}
}
