// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package cases implements the "legalmind case" subcommand group:
// listing, creating, and inspecting the user's legal cases.
package cases

import "github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"

// Command returns the "case" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "case",
		Summary: "Case management commands",
		Description: `View and manage legal cases.

A case groups the documents for one legal matter. Cases are listed
page by page; create one, then attach documents with
"legalmind document upload".`,
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
			showCommand(),
		},
	}
}
