// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/OwinoMichael/AI-Legal-Assistance/client"
	"github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"
)

type listParams struct {
	cli.JSONOutput
	Case int64 `flag:"case,c" desc:"case ID" default:"0"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List the documents in a case",
		Usage:   "legalmind document list --case CASE [flags]",
		Examples: []cli.Example{
			{
				Description: "List documents in case 42",
				Command:     "legalmind document list --case 42",
			},
			{
				Description: "List as JSON",
				Command:     "legalmind document list --case 42 --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Case <= 0 {
				return cli.Validation("--case is required")
			}

			apiClient, cfg, err := cli.Connect()
			if err != nil {
				return err
			}
			if err := cli.RequireSession(apiClient.Store()); err != nil {
				return err
			}

			ctx, cancel := cli.CallContext(ctx, cfg)
			defer cancel()

			documents, err := apiClient.ListDocuments(ctx, params.Case)
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(documents); done {
				return err
			}

			if len(documents) == 0 {
				logger.Info("no documents in case", "case", params.Case)
				return nil
			}

			return writeDocumentTable(documents)
		},
	}
}

// writeDocumentTable renders documents as an aligned table.
func writeDocumentTable(documents []client.Document) error {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "ID\tFILE\tTYPE\tSIZE\tUPLOADED\n")
	for _, entry := range documents {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			entry.ID, entry.FileName, entry.FileType, formatSize(entry.FileSize), entry.CreatedAt)
	}
	return tw.Flush()
}

// formatSize renders a byte count with a binary unit suffix.
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	size := float64(bytes)
	exponent := 0
	for size >= unit && exponent < 4 {
		size /= unit
		exponent++
	}
	return fmt.Sprintf("%.1f %ciB", size, "KMGT"[exponent-1])
}
