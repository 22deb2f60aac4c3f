// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/analysisview"
)

type analyzeParams struct {
	cli.JSONOutput
	Async bool `flag:"async" desc:"queue the analysis and return immediately"`
	Width int  `flag:"width" desc:"render width in columns (default: terminal width)" default:"0"`
}

func analyzeCommand() *cli.Command {
	var params analyzeParams

	return &cli.Command{
		Name:    "analyze",
		Summary: "Run the AI analysis over a document",
		Description: `Analyze a document and render the result.

The backend extracts the document text and produces a summary,
notable clauses, and question-and-answer pairs. A fresh analysis can
take a few minutes for long filings; the command waits for the result
and renders it as formatted terminal output. If a current analysis
already exists, it returns immediately.

With --async, the analysis is queued server-side and the command
returns at once; run analyze again later to fetch the result.`,
		Usage: "legalmind document analyze <document-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Analyze document 7 and render the summary",
				Command:     "legalmind document analyze 7",
			},
			{
				Description: "Queue an analysis without waiting",
				Command:     "legalmind document analyze 7 --async",
			},
			{
				Description: "Get the raw analysis as JSON",
				Command:     "legalmind document analyze 7 --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("analyze", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("document ID is required\n\nUsage: legalmind document analyze <document-id>")
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

			if params.Async {
				ctx, cancel := cli.CallContext(ctx, cfg)
				defer cancel()

				if err := apiClient.RequestSummaryAsync(ctx, documentID); err != nil {
					return cli.Classify(err)
				}
				logger.Info("analysis queued", "document", documentID)
				fmt.Fprintf(os.Stderr, "Analysis queued for document %d. Run \"legalmind document analyze %d\" to fetch the result.\n", documentID, documentID)
				return nil
			}

			ctx, cancel := cli.AnalysisContext(ctx, cfg)
			defer cancel()

			summary, err := apiClient.SummarizeDocument(ctx, documentID)
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(summary); done {
				return err
			}

			fmt.Fprint(os.Stdout, analysisview.RenderSummary(summary, analysisview.DefaultTheme(), renderWidth(params.Width)))
			return nil
		},
	}
}

// renderWidth resolves the render width: the flag wins, then the
// terminal width, then 80 columns for piped output.
func renderWidth(flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
