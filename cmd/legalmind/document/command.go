// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package document implements the "legalmind document" subcommand
// group: uploading, listing, downloading, and deleting case documents,
// and running the AI analysis over them.
package document

import "github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"

// Command returns the "document" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "document",
		Summary: "Document management and analysis commands",
		Description: `Manage the documents attached to a case.

Documents are uploaded into a case and analyzed server-side: the
"analyze" subcommand returns an AI-produced summary with extracted
clauses and question-and-answer pairs, rendered for the terminal.`,
		Subcommands: []*cli.Command{
			listCommand(),
			uploadCommand(),
			downloadCommand(),
			removeCommand(),
			analyzeCommand(),
		},
	}
}
