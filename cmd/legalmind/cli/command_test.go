// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "legalmind",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "case",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "case"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"case"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "case" {
		t.Errorf("dispatched to %q, want %q", called, "case")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "legalmind",
		Subcommands: []*Command{
			{
				Name: "document",
				Subcommands: []*Command{
					{
						Name: "upload",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							called = "document upload"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"document", "upload", "lease.pdf"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "document upload" {
		t.Errorf("dispatched to %q, want %q", called, "document upload")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "lease.pdf" {
		t.Errorf("args = %v, want [lease.pdf]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var caseID int64
	var target string

	command := &Command{
		Name: "upload",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("upload", pflag.ContinueOnError)
			flagSet.Int64Var(&caseID, "case", 0, "case ID")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--case", "42", "lease.pdf"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if caseID != 42 {
		t.Errorf("caseID = %d, want 42", caseID)
	}
	if target != "lease.pdf" {
		t.Errorf("target = %q, want %q", target, "lease.pdf")
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "legalmind",
		Subcommands: []*Command{
			{Name: "case", Run: func(_ context.Context, _ []string, _ *slog.Logger) error { return nil }},
			{Name: "document", Run: func(_ context.Context, _ []string, _ *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"documnet"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "document"`) {
		t.Errorf("error = %q, want suggestion for 'document'", err.Error())
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.Bool("json", false, "output as JSON")
			flagSet.Int("page", 0, "page number")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--jsno"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --json") {
		t.Errorf("error = %q, want suggestion for '--json'", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.Bool("json", false, "output as JSON")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "legalmind",
		Subcommands: []*Command{
			{Name: "case", Summary: "Case management commands"},
		},
	}

	err := root.Execute(context.Background(), nil)
	if err == nil {
		t.Fatal("Execute() = nil, want 'subcommand required' error")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{
		Name:    "legalmind",
		Summary: "LegalMind terminal client",
		Subcommands: []*Command{
			{Name: "login", Summary: "Sign in and save the session locally"},
			{Name: "case", Summary: "Case management commands"},
		},
		Examples: []Example{
			{Description: "See your cases", Command: "legalmind case list"},
		},
	}

	var buffer bytes.Buffer
	root.PrintHelp(&buffer)
	help := buffer.String()

	for _, want := range []string{
		"LegalMind terminal client",
		"legalmind <command> [flags]",
		"login",
		"Sign in and save the session locally",
		"# See your cases",
		"legalmind case list",
		"Run 'legalmind <command> --help'",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestSuggestCommand_Threshold(t *testing.T) {
	commands := []*Command{
		{Name: "upload"},
		{Name: "download"},
		{Name: "analyze"},
	}

	if got := suggestCommand("uplaod", commands); got != "upload" {
		t.Errorf("suggestCommand(uplaod) = %q, want upload", got)
	}
	if got := suggestCommand("qqqqqqqq", commands); got != "" {
		t.Errorf("suggestCommand(qqqqqqqq) = %q, want no suggestion", got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"case", "", 4},
		{"case", "case", 0},
		{"case", "cases", 1},
		{"documnet", "document", 2},
		{"analyze", "analyse", 1},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
