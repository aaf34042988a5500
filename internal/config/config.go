// Copyright 2026 The reviewmd Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for reviewmd with support
// for multiple configuration sources and a well-defined precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file ($XDG_CONFIG_HOME/reviewmd/config.yaml)
//  4. Built-in defaults
//
// Flag precedence is applied by the command layer; this package resolves the
// file, environment, and default layers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns the XDG location of the config file:
// $XDG_CONFIG_HOME/reviewmd/config.yaml, falling back to
// ~/.config/reviewmd/config.yaml.
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "reviewmd", "config.yaml")
}

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it must exist;
// otherwise the default XDG location is tried and silently skipped when
// absent. Environment variables are applied after the config file, allowing
// runtime overrides.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		path := DefaultConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := loadConfigFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}
}

// Validate checks if the configuration contains valid values. This should be
// called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.GitHub.GraphQLEndpoint == "" {
		return fmt.Errorf("GitHub GraphQL endpoint cannot be empty")
	}
	if c.GitHub.TokenEnv == "" {
		return fmt.Errorf("token environment variable name cannot be empty")
	}
	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("retry max_attempts must be positive, got: %d", c.Retry.MaxAttempts)
	}
	if c.Retry.InitialBackoffSeconds < 0 || c.Retry.MaxBackoffSeconds < 0 || c.Retry.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("retry durations cannot be negative")
	}
	return nil
}

// WriteStarter writes a commented starter config file to path, creating
// parent directories as needed. It refuses to overwrite an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	starter := `# reviewmd configuration.
# Flags and environment variables take precedence over values set here.

# token: ghp_yourtoken
# include_resolved: false
# include_outdated: false
# output: false
# output_file: ""

github:
  graphql_endpoint: https://api.github.com/graphql
  token_env: GITHUB_TOKEN

retry:
  max_attempts: 3
  initial_backoff_seconds: 1
  max_backoff_seconds: 30
  request_timeout_seconds: 30
`

	// 0600: the file may hold a token.
	if err := os.WriteFile(path, []byte(starter), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
