// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"
)

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:    "rm",
		Summary: "Delete a document",
		Description: `Delete a document from its case. The stored file and any analysis
derived from it are removed server-side. This cannot be undone.`,
		Usage: "legalmind document rm <document-id>",
		Examples: []cli.Example{
			{
				Description: "Delete document 7",
				Command:     "legalmind document rm 7",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("document ID is required\n\nUsage: legalmind document rm <document-id>")
			}
			documentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return cli.Validation("invalid document ID %q", args[0])
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

			if err := apiClient.DeleteDocument(ctx, documentID); err != nil {
				return cli.Classify(err)
			}

			logger.Info("document deleted", "document", documentID)
			fmt.Fprintf(os.Stderr, "Deleted document %d\n", documentID)
			return nil
		},
	}
}
