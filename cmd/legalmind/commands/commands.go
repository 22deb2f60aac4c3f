// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete legalmind CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	casecmd "github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cases"
	"github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"
	documentcmd "github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/document"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/version"
)

// Root builds and returns the complete legalmind CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "legalmind",
		Description: `LegalMind: AI-assisted legal document analysis.

Organize legal matters into cases, upload documents, and run AI
analysis that summarizes them, extracts notable clauses, and answers
standard questions.`,
		Subcommands: []*cli.Command{
			cli.LoginCommand(),
			cli.SignupCommand(),
			cli.LogoutCommand(),
			cli.WhoAmICommand(),
			cli.ResendCommand(),
			casecmd.Command(),
			documentcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("legalmind %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Create an account, then sign in",
				Command:     "legalmind signup",
			},
			{
				Description: "See your cases",
				Command:     "legalmind case list",
			},
			{
				Description: "Upload a contract into a case",
				Command:     "legalmind document upload lease-2027.pdf --case 42",
			},
			{
				Description: "Analyze a document and read the summary",
				Command:     "legalmind document analyze 7",
			},
		},
	}
}
