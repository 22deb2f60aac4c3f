// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}
	if cfg.Server.URL != "http://localhost:8080" {
		t.Errorf("expected url=http://localhost:8080, got %s", cfg.Server.URL)
	}
	if cfg.RequestTimeout() != 2*time.Minute {
		t.Errorf("expected request timeout 2m, got %s", cfg.RequestTimeout())
	}
	if cfg.Upload.MaxSizeMB != 50 {
		t.Errorf("expected max_size_mb=50, got %d", cfg.Upload.MaxSizeMB)
	}
}

func TestLoadWithoutConfigUsesDefaults(t *testing.T) {
	t.Setenv("LEGALMIND_CONFIG", "")
	os.Unsetenv("LEGALMIND_CONFIG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.URL != "http://localhost:8080" {
		t.Errorf("expected default url, got %s", cfg.Server.URL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "legalmind.yaml")
	configContent := `
environment: staging
server:
  url: https://staging.legalmind.example
  request_timeout: 30s
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("LEGALMIND_CONFIG", configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}
	if cfg.Server.URL != "https://staging.legalmind.example" {
		t.Errorf("unexpected url %s", cfg.Server.URL)
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Errorf("expected request timeout 30s, got %s", cfg.RequestTimeout())
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "legalmind.yaml")
	configContent := `
environment: production

server:
  url: http://localhost:8080

upload:
  max_size_mb: 10

production:
  server:
    url: https://api.legalmind.example
  upload:
    max_size_mb: 100
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Server.URL != "https://api.legalmind.example" {
		t.Errorf("expected production url override, got %s", cfg.Server.URL)
	}
	if cfg.Upload.MaxSizeMB != 100 {
		t.Errorf("expected max_size_mb=100 from production override, got %d", cfg.Upload.MaxSizeMB)
	}
}

func TestSessionFileExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/paralegal")

	configPath := filepath.Join(t.TempDir(), "legalmind.yaml")
	configContent := `
session:
  file: ${HOME}/.config/legalmind/session.json
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	want := "/home/paralegal/.config/legalmind/session.json"
	if got := cfg.SessionFile("fallback"); got != want {
		t.Errorf("SessionFile() = %q, want %q", got, want)
	}

	cfg.Session.File = ""
	if got := cfg.SessionFile("fallback"); got != "fallback" {
		t.Errorf("SessionFile() fallback = %q", got)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input string
		vars  map[string]string
		want  string
	}{
		{"${HOME}/legalmind", map[string]string{"HOME": "/home/user"}, "/home/user/legalmind"},
		{"${MISSING:-default}", map[string]string{}, "default"},
		{"${PRESENT:-default}", map[string]string{"PRESENT": "value"}, "value"},
		{"no variables here", map[string]string{}, "no variables here"},
	}

	for _, tt := range tests {
		if got := expandVars(tt.input, tt.vars); got != tt.want {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid default config", modify: func(c *Config) {}, wantErr: false},
		{name: "invalid environment", modify: func(c *Config) { c.Environment = "invalid" }, wantErr: true},
		{name: "empty server url", modify: func(c *Config) { c.Server.URL = "" }, wantErr: true},
		{name: "malformed timeout", modify: func(c *Config) { c.Server.RequestTimeout = "soon" }, wantErr: true},
		{name: "negative upload cap", modify: func(c *Config) { c.Upload.MaxSizeMB = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
