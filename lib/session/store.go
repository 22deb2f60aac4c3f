// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package session owns the durable authenticated-session record. The
// record is a single JSON file at a well-known path, written whole and
// replaced whole — there are no partial field updates, so a reader never
// observes a half-written session. The Store is the only reader/writer;
// everything else goes through it.
//
// A record with no token is never authenticated. Signup writes such a
// record (email only, verified=false) so the UI can show the
// "check your email" state without another round trip; its status is
// StatusPendingVerification, distinct from StatusAuthenticated.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Record is the durable session state. Created on successful login or
// signup, replaced as a whole on every update, removed on logout or when
// the server reports the session invalid.
type Record struct {
	// Token is the opaque bearer credential issued at login. Empty for
	// a pending (post-signup, pre-verification) record.
	Token string `json:"token,omitempty"`

	// Email identifies the account.
	Email string `json:"email"`

	// UserID is the server-side account ID, present once logged in.
	UserID int64 `json:"id,omitempty"`

	// Verified reports whether the account completed email
	// verification. An unverified session authenticates HTTP calls but
	// gates access to protected surfaces.
	Verified bool `json:"verified"`
}

// Status classifies a record for route-guard decisions.
type Status int

const (
	// StatusAnonymous: no usable record.
	StatusAnonymous Status = iota

	// StatusPendingVerification: a record exists but either carries no
	// token (post-signup) or is not verified. It may authenticate HTTP
	// calls (when it has a token) but must not unlock protected
	// content.
	StatusPendingVerification

	// StatusAuthenticated: token present and account verified.
	StatusAuthenticated
)

// String returns the status name for logs and CLI output.
func (s Status) String() string {
	switch s {
	case StatusPendingVerification:
		return "pending-verification"
	case StatusAuthenticated:
		return "authenticated"
	}
	return "anonymous"
}

// Status classifies the record. A nil record is anonymous.
func (r *Record) Status() Status {
	switch {
	case r == nil || (r.Token == "" && r.Email == ""):
		return StatusAnonymous
	case r.Token == "" || !r.Verified:
		return StatusPendingVerification
	default:
		return StatusAuthenticated
	}
}

// Store reads and writes the session record. Safe for concurrent use;
// concurrent writers race at last-writer-wins granularity of the whole
// record, mirroring multi-tab behavior in the browser original.
type Store struct {
	path string

	mu          sync.Mutex
	subscribers []func(Status)
}

// DefaultPath returns the well-known session file location:
// $LEGALMIND_SESSION_FILE if set, else legalmind/session.json under
// $XDG_CONFIG_HOME or ~/.config.
func DefaultPath() string {
	if envPath := os.Getenv("LEGALMIND_SESSION_FILE"); envPath != "" {
		return envPath
	}
	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "legalmind-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "legalmind", "session.json")
}

// NewStore creates a store over the given file path, or over
// [DefaultPath] when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the session file path.
func (s *Store) Path() string { return s.path }

// Current reads and parses the record. A missing file means no session.
// A file that fails to parse is treated the same way — the corrupted
// record is deleted and nil is returned rather than an error; there is
// nothing a caller could do with a broken session except discard it.
func (s *Store) Current() *Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		os.Remove(s.path)
		return nil
	}
	if record.Status() == StatusAnonymous {
		return nil
	}
	return &record
}

// Status classifies the current record.
func (s *Store) Status() Status {
	return s.Current().Status()
}

// Set replaces the record. The parent directory is created with mode
// 0700 and the file written with mode 0600 — it holds a bearer token.
// Subscribers are notified with the new status.
func (s *Store) Set(record Record) error {
	data, err := json.MarshalIndent(&record, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return err
	}
	s.notify(record.Status())
	return nil
}

// Clear deletes the record. Idempotent: clearing a store with no session
// is a no-op and notifies nobody.
func (s *Store) Clear() {
	if err := os.Remove(s.path); err != nil {
		return
	}
	s.notify(StatusAnonymous)
}

// AuthorizationHeader returns the value for the Authorization header
// derived from the current record: "Bearer <token>", or "" when no
// token-bearing session exists.
func (s *Store) AuthorizationHeader() string {
	record := s.Current()
	if record == nil || record.Token == "" {
		return ""
	}
	return "Bearer " + record.Token
}

// Subscribe registers fn to run after every status change made through
// this store. Replaces the browser's storage-change listener: it keeps
// UI-visible auth flags in sync, not in-flight requests.
func (s *Store) Subscribe(fn func(Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(status Status) {
	s.mu.Lock()
	subscribers := make([]func(Status), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(status)
	}
}
