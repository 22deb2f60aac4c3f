// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the LegalMind CLI.
//
// Configuration is loaded from a single YAML file named by the
// LEGALMIND_CONFIG environment variable.
//
// When it is not set, built-in defaults apply. The config file may
// contain environment-specific sections (development, staging,
// production) that override base values when the environment matches.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for the LegalMind CLI.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Server configures the LegalMind backend connection.
	Server ServerConfig `yaml:"server"`

	// Session configures local session persistence.
	Session SessionConfig `yaml:"session"`

	// Upload configures document upload behavior.
	Upload UploadConfig `yaml:"upload"`

	// Per-environment overrides, applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Server  *ServerConfig  `yaml:"server,omitempty"`
	Session *SessionConfig `yaml:"session,omitempty"`
	Upload  *UploadConfig  `yaml:"upload,omitempty"`
}

// ServerConfig configures the LegalMind backend connection.
type ServerConfig struct {
	// URL is the base URL of the backend.
	// Default: http://localhost:8080
	URL string `yaml:"url"`

	// RequestTimeout is the per-request timeout as a Go duration string.
	// Document analysis can take minutes; the default is generous.
	// Default: 2m
	RequestTimeout string `yaml:"request_timeout"`
}

// SessionConfig configures local session persistence.
type SessionConfig struct {
	// File is the path of the session record. Empty means the default
	// under the user config directory.
	File string `yaml:"file"`
}

// UploadConfig configures document upload behavior.
type UploadConfig struct {
	// MaxSizeMB caps the size of a document accepted for upload.
	// Default: 50
	MaxSizeMB int `yaml:"max_size_mb"`
}

// Default returns the default configuration. These defaults are the
// base before loading a config file, and the effective configuration
// when no file is given.
func Default() *Config {
	return &Config{
		Environment: Development,
		Server: ServerConfig{
			URL:            "http://localhost:8080",
			RequestTimeout: "2m",
		},
		Upload: UploadConfig{
			MaxSizeMB: 50,
		},
	}
}

// Load loads configuration from the path in the LEGALMIND_CONFIG
// environment variable. When the variable is unset, the built-in
// defaults are returned.
func Load() (*Config, error) {
	configPath := os.Getenv("LEGALMIND_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The file is
// the single source of truth; environment variables do not override
// its values. The only expansion performed is ${HOME} and similar path
// variables for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.Server != nil {
		if overrides.Server.URL != "" {
			c.Server.URL = overrides.Server.URL
		}
		if overrides.Server.RequestTimeout != "" {
			c.Server.RequestTimeout = overrides.Server.RequestTimeout
		}
	}
	if overrides.Session != nil && overrides.Session.File != "" {
		c.Session.File = overrides.Session.File
	}
	if overrides.Upload != nil && overrides.Upload.MaxSizeMB != 0 {
		c.Upload.MaxSizeMB = overrides.Upload.MaxSizeMB
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Session.File = expandVars(c.Session.File, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}
	if c.Server.URL == "" {
		errs = append(errs, fmt.Errorf("server.url is required"))
	}
	if c.Server.RequestTimeout != "" {
		if _, err := time.ParseDuration(c.Server.RequestTimeout); err != nil {
			errs = append(errs, fmt.Errorf("server.request_timeout: %w", err))
		}
	}
	if c.Upload.MaxSizeMB < 0 {
		errs = append(errs, fmt.Errorf("upload.max_size_mb must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// RequestTimeout returns the parsed per-request timeout, or the default
// when the configured value is empty or malformed.
func (c *Config) RequestTimeout() time.Duration {
	if c.Server.RequestTimeout == "" {
		return 2 * time.Minute
	}
	parsed, err := time.ParseDuration(c.Server.RequestTimeout)
	if err != nil {
		return 2 * time.Minute
	}
	return parsed
}

// SessionFile returns the configured session path, falling back to the
// default location under the user config directory.
func (c *Config) SessionFile(defaultPath string) string {
	if c.Session.File != "" {
		return c.Session.File
	}
	return defaultPath
}

// MaxUploadBytes returns the upload size cap in bytes. Zero means
// unlimited.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxSizeMB) << 20
}
