// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package analysisview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/OwinoMichael/AI-Legal-Assistance/client"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestRenderMarkdownReflowsSoftBreaks(t *testing.T) {
	input := "This agreement binds\nboth parties for the stated\nterm."
	rendered := plain(RenderMarkdown(input, DefaultTheme(), 80))

	if strings.Count(strings.TrimSpace(rendered), "\n") != 0 {
		t.Errorf("soft breaks not reflowed:\n%q", rendered)
	}
	if !strings.Contains(rendered, "binds both parties") {
		t.Errorf("missing reflowed text:\n%q", rendered)
	}
}

func TestRenderMarkdownWrapsToWidth(t *testing.T) {
	input := strings.Repeat("indemnification ", 20)
	rendered := plain(RenderMarkdown(input, DefaultTheme(), 40))

	for _, line := range strings.Split(rendered, "\n") {
		if len(line) > 40 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestRenderMarkdownLists(t *testing.T) {
	input := "Key obligations:\n\n1. Pay on time\n2. Keep records\n\n- confidentiality\n- non-solicitation"
	rendered := plain(RenderMarkdown(input, DefaultTheme(), 80))

	for _, want := range []string{"1. Pay on time", "2. Keep records", "- confidentiality"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("missing %q in:\n%s", want, rendered)
		}
	}
}

func TestRenderMarkdownFencedCode(t *testing.T) {
	input := "Clause reference:\n\n```text\nSection 4.2(b): Termination for convenience.\nSection 9.1: Governing law.\n```\n"
	rendered := plain(RenderMarkdown(input, DefaultTheme(), 80))

	for _, want := range []string{
		"Section 4.2(b): Termination for convenience.",
		"Section 9.1: Governing law.",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("missing code line %q in:\n%s", want, rendered)
		}
	}
	// Code lines are indented under the paragraph text.
	if !strings.Contains(rendered, "  Section 4.2(b)") {
		t.Errorf("code block not indented:\n%s", rendered)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown("   \n", DefaultTheme(), 80); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}

func TestRenderSummarySections(t *testing.T) {
	summary := &client.Summary{
		SummaryText:      "A mutual NDA. **Two-year** term.",
		ExtractedClauses: []string{"Confidentiality: information must be protected for two years."},
		QuestionAnswers:  map[string]string{"Who signs?": "Both parties."},
		AnalyzedAt:       "2026-08-29T10:15:30",
		UpToDate:         true,
	}

	rendered := plain(RenderSummary(summary, DefaultTheme(), 80))

	for _, want := range []string{
		"Summary",
		"A mutual NDA.",
		"Extracted clauses",
		"Confidentiality",
		"Questions & answers",
		"Who signs?",
		"Both parties.",
		"Analyzed at 2026-08-29T10:15:30",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("missing %q in:\n%s", want, rendered)
		}
	}
	if strings.Contains(rendered, "predates") {
		t.Error("stale warning shown for an up-to-date summary")
	}
}

func TestRenderSummaryStaleWarning(t *testing.T) {
	summary := &client.Summary{SummaryText: "Old analysis.", UpToDate: false}
	rendered := plain(RenderSummary(summary, DefaultTheme(), 80))

	if !strings.Contains(rendered, "predates the latest document change") {
		t.Errorf("missing stale warning:\n%s", rendered)
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	rendered := plain(RenderSummary(&client.Summary{UpToDate: true}, DefaultTheme(), 80))
	if !strings.Contains(rendered, "No analysis available") {
		t.Errorf("unexpected empty render: %q", rendered)
	}
}
