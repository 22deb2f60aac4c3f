// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package analysisview renders document analysis results for the
// terminal: the model's markdown summary, the extracted clause list,
// and the question/answer pairs, styled with lipgloss and wrapped to
// the terminal width.
package analysisview

import (
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/OwinoMichael/AI-Legal-Assistance/client"
)

// Theme holds the colors used by the renderer.
type Theme struct {
	Heading lipgloss.Color
	Text    lipgloss.Color
	Faint   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Warning lipgloss.Color
}

// DefaultTheme is tuned for dark terminals.
func DefaultTheme() Theme {
	return Theme{
		Heading: lipgloss.Color("39"),
		Text:    lipgloss.Color("252"),
		Faint:   lipgloss.Color("245"),
		Border:  lipgloss.Color("240"),
		Accent:  lipgloss.Color("42"),
		Warning: lipgloss.Color("214"),
	}
}

// RenderSummary lays out a full analysis result: summary text first,
// then extracted clauses, then question/answer pairs. Sections with no
// content are omitted. A stale summary gets a warning banner so the
// reader knows the document changed since analysis.
func RenderSummary(summary *client.Summary, theme Theme, width int) string {
	if width <= 0 {
		width = 80
	}

	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	heading := lipRenderer.NewStyle().Bold(true).Foreground(theme.Heading)
	faint := lipRenderer.NewStyle().Foreground(theme.Faint)
	accent := lipRenderer.NewStyle().Foreground(theme.Accent)
	warning := lipRenderer.NewStyle().Bold(true).Foreground(theme.Warning)

	var sections []string

	if !summary.UpToDate {
		sections = append(sections, warning.Render(
			"⚠ This summary predates the latest document change. Re-run the analysis for current results."))
	}

	if strings.TrimSpace(summary.SummaryText) != "" {
		sections = append(sections,
			heading.Render("Summary")+"\n\n"+
				strings.TrimRight(RenderMarkdown(summary.SummaryText, theme, width), "\n"))
	}

	if len(summary.ExtractedClauses) > 0 {
		var clauses strings.Builder
		clauses.WriteString(heading.Render("Extracted clauses"))
		clauses.WriteString("\n")
		for _, clause := range summary.ExtractedClauses {
			clauses.WriteString("\n")
			wrapped := ansi.Wrap(clause, width-4, " ,.;-")
			for i, line := range strings.Split(wrapped, "\n") {
				if i == 0 {
					clauses.WriteString("  " + accent.Render("§") + " " + line)
				} else {
					clauses.WriteString("\n    " + line)
				}
			}
		}
		sections = append(sections, clauses.String())
	}

	if len(summary.QuestionAnswers) > 0 {
		questions := make([]string, 0, len(summary.QuestionAnswers))
		for question := range summary.QuestionAnswers {
			questions = append(questions, question)
		}
		sort.Strings(questions)

		var qa strings.Builder
		qa.WriteString(heading.Render("Questions & answers"))
		for _, question := range questions {
			qa.WriteString("\n\n  " + lipRenderer.NewStyle().Bold(true).Render(question))
			answer := ansi.Wrap(summary.QuestionAnswers[question], width-4, " ,.;-")
			for _, line := range strings.Split(answer, "\n") {
				qa.WriteString("\n    " + line)
			}
		}
		sections = append(sections, qa.String())
	}

	if summary.AnalyzedAt != "" {
		sections = append(sections, faint.Render("Analyzed at "+summary.AnalyzedAt))
	}

	if len(sections) == 0 {
		return faint.Render("No analysis available for this document.") + "\n"
	}
	return strings.Join(sections, "\n\n") + "\n"
}
