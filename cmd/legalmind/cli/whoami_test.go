// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OwinoMichael/AI-Legal-Assistance/lib/session"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns what it wrote.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	saved := os.Stdout
	os.Stdout = writer
	defer func() { os.Stdout = saved }()

	runErr := fn()
	writer.Close()

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read captured stdout: %v", err)
	}
	return string(output), runErr
}

func TestWhoAmI_AnonymousSession(t *testing.T) {
	// Point the session at a file that does not exist: the logged-out case.
	t.Setenv("LEGALMIND_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("LEGALMIND_CONFIG", "")

	output, err := captureStdout(t, func() error {
		return WhoAmICommand().Execute(context.Background(), nil)
	})
	if err != nil {
		t.Fatalf("whoami without a session: %v", err)
	}
	if !strings.Contains(output, "anonymous") {
		t.Errorf("output missing anonymous status:\n%s", output)
	}
	if strings.Contains(output, "Email:") {
		t.Errorf("output shows an email with no session:\n%s", output)
	}
}

func TestWhoAmI_SavedRecord(t *testing.T) {
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	t.Setenv("LEGALMIND_SESSION_FILE", sessionPath)
	t.Setenv("LEGALMIND_CONFIG", "")

	store := session.NewStore(sessionPath)
	record := session.Record{Token: "tok", Email: "ada@example.com", UserID: 7, Verified: true}
	if err := store.Set(record); err != nil {
		t.Fatalf("Set: %v", err)
	}

	output, err := captureStdout(t, func() error {
		return WhoAmICommand().Execute(context.Background(), nil)
	})
	if err != nil {
		t.Fatalf("whoami with a session: %v", err)
	}
	for _, want := range []string{"ada@example.com", "authenticated", sessionPath} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
