// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// The legalmind command is the terminal client for the LegalMind
// backend: account management, case and document handling, and
// AI-assisted document analysis.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like whoami --verify)
		// return an ExitError with the desired exit code. Don't print a
		// redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.Root().Execute(ctx, os.Args[1:])
}
