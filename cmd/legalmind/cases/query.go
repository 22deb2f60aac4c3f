// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/OwinoMichael/AI-Legal-Assistance/client"
	"github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/analysisview"
)

// --- list ---

type listParams struct {
	cli.JSONOutput
	Page          int    `flag:"page,p" desc:"page number (0-based)" default:"0"`
	Size          int    `flag:"size"   desc:"page size" default:"20"`
	SortBy        string `flag:"sort"   desc:"sort field (createdAt, title)" default:"createdAt"`
	SortDirection string `flag:"order"  desc:"sort direction (asc, desc)" default:"desc"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List cases, newest first",
		Description: `List the cases owned by the logged-in account, one page at a time.

The footer shows the page position; pass --page to move through the
listing. Sorting happens server-side.`,
		Usage: "legalmind case list [flags]",
		Examples: []cli.Example{
			{
				Description: "List the newest cases",
				Command:     "legalmind case list",
			},
			{
				Description: "Second page, sorted by title",
				Command:     "legalmind case list --page 1 --sort title --order asc",
			},
			{
				Description: "List as JSON",
				Command:     "legalmind case list --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
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

			page, err := apiClient.ListCases(ctx, client.ListOptions{
				Page:          params.Page,
				Size:          params.Size,
				SortBy:        params.SortBy,
				SortDirection: params.SortDirection,
			})
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(page); done {
				return err
			}

			if len(page.Content) == 0 {
				logger.Info("no cases found")
				return nil
			}

			return writeCaseTable(page)
		},
	}
}

// writeCaseTable renders one page of cases as an aligned table with a
// page-position footer.
func writeCaseTable(page *client.CasePage) error {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "ID\tTITLE\tCREATED\tDESCRIPTION\n")
	for _, entry := range page.Content {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", entry.ID, entry.Title, entry.CreatedAt, truncate(entry.Description, 60))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nPage %d of %d (%d cases)\n", page.Number+1, page.TotalPages, page.TotalElements)
	return nil
}

// truncate shortens s to at most n runes, marking the cut with an
// ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// --- show ---

type showParams struct {
	cli.JSONOutput
	Documents bool `flag:"documents,d" desc:"also list the case's documents"`
	Summaries bool `flag:"summary,s"   desc:"also render the analysis summary of each document"`
}

// showResult is the JSON output for the show command.
type showResult struct {
	Case      client.Case               `json:"case"`
	Documents []client.Document         `json:"documents,omitempty"`
	Summaries map[int64]*client.Summary `json:"summaries,omitempty"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show case details",
		Description: `Display one case. With --documents, the case's uploaded documents
are listed as well. With --summary, the analysis summary of each
document is fetched and rendered; documents that were changed since
their last analysis are re-analyzed server-side, which can take a
while.`,
		Usage: "legalmind case show <case-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Show a case",
				Command:     "legalmind case show 42",
			},
			{
				Description: "Show a case with its documents",
				Command:     "legalmind case show 42 --documents",
			},
			{
				Description: "Show a case with each document's analysis",
				Command:     "legalmind case show 42 --summary",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("case ID is required\n\nUsage: legalmind case show <case-id>")
			}
			caseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return cli.Validation("invalid case ID %q", args[0])
			}

			apiClient, cfg, err := cli.Connect()
			if err != nil {
				return err
			}
			if err := cli.RequireSession(apiClient.Store()); err != nil {
				return err
			}

			callCtx, cancel := cli.CallContext(ctx, cfg)
			defer cancel()

			caseDetail, err := apiClient.GetCase(callCtx, caseID)
			if err != nil {
				return cli.Classify(err)
			}

			result := showResult{Case: *caseDetail}
			if params.Documents || params.Summaries {
				documents, err := apiClient.ListDocuments(callCtx, caseID)
				if err != nil {
					return cli.Classify(err)
				}
				result.Documents = documents
			}

			if params.Summaries && len(result.Documents) > 0 {
				// Stale analyses are recomputed server-side, so these
				// calls get the longer analysis bound.
				analysisCtx, cancelAnalysis := cli.AnalysisContext(ctx, cfg)
				defer cancelAnalysis()

				result.Summaries = make(map[int64]*client.Summary, len(result.Documents))
				for _, entry := range result.Documents {
					summary, err := apiClient.SummarizeDocument(analysisCtx, entry.ID)
					if err != nil {
						return cli.Classify(fmt.Errorf("analyze %s: %w", entry.FileName, err))
					}
					result.Summaries[entry.ID] = summary
				}
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "Case:        %d\n", result.Case.ID)
			fmt.Fprintf(os.Stdout, "Title:       %s\n", result.Case.Title)
			fmt.Fprintf(os.Stdout, "Created:     %s\n", result.Case.CreatedAt)
			if result.Case.Description != "" {
				fmt.Fprintf(os.Stdout, "Description: %s\n", result.Case.Description)
			}

			if params.Documents || params.Summaries {
				fmt.Fprintln(os.Stdout)
				if len(result.Documents) == 0 {
					fmt.Fprintln(os.Stdout, "No documents uploaded.")
					return nil
				}
				tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
				fmt.Fprintf(tw, "ID\tFILE\tTYPE\tSIZE\tUPLOADED\n")
				for _, document := range result.Documents {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
						document.ID, document.FileName, document.FileType,
						formatSize(document.FileSize), document.CreatedAt)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			if params.Summaries {
				theme := analysisview.DefaultTheme()
				width := renderWidth()
				for _, document := range result.Documents {
					fmt.Fprintf(os.Stdout, "\n── %s ──\n\n", document.FileName)
					fmt.Fprint(os.Stdout, analysisview.RenderSummary(result.Summaries[document.ID], theme, width))
				}
			}
			return nil
		},
	}
}

// renderWidth resolves the summary render width: the terminal width,
// or 80 columns for piped output.
func renderWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
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
