// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"
)

type createParams struct {
	cli.JSONOutput
	Description string `flag:"description,m" desc:"case description"`
}

func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create a new case",
		Description: `Create a case to hold the documents for one legal matter.

The title is required; the description is free text. The new case's
ID is printed for use with "legalmind document upload --case".`,
		Usage: "legalmind case create <title> [flags]",
		Examples: []cli.Example{
			{
				Description: "Create a case",
				Command:     "legalmind case create \"Office lease renewal\"",
			},
			{
				Description: "Create a case with a description",
				Command:     "legalmind case create \"Office lease renewal\" --description \"2027 renewal of the Main St lease\"",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) == 0 {
				return cli.Validation("title is required\n\nUsage: legalmind case create <title>")
			}
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return cli.Validation("title must not be blank")
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

			created, err := apiClient.CreateCase(ctx, title, params.Description)
			if err != nil {
				return cli.Classify(err)
			}

			logger.Info("case created", "case", created.ID, "title", created.Title)

			if done, err := params.EmitJSON(created); done {
				return err
			}
			fmt.Fprintf(os.Stdout, "Created case %d: %s\n", created.ID, created.Title)
			return nil
		},
	}
}
