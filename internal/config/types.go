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

// Package config types define the configuration structures used throughout
// reviewmd. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

import (
	"time"

	"github.com/reviewmd/reviewmd/internal/github"
)

// Config represents the complete configuration for reviewmd. It consolidates
// settings from various sources and provides a unified interface for
// accessing configuration values throughout the application.
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Retry  RetryConfig  `yaml:"retry"`

	// Token is a personal access token stored in the config file. Flags and
	// environment variables take precedence over it.
	Token string `yaml:"token"`

	IncludeResolved bool `yaml:"include_resolved"`
	IncludeOutdated bool `yaml:"include_outdated"`

	// Output switches the default destination from stdout to a generated
	// file name; OutputFile names an explicit destination.
	Output     bool   `yaml:"output"`
	OutputFile string `yaml:"output_file"`
}

// GitHubConfig contains GitHub-specific settings including the GraphQL
// endpoint and authentication configuration. This allows easy configuration
// for GitHub Enterprise deployments by specifying a custom endpoint.
type GitHubConfig struct {
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env"`
}

// RetryConfig controls the transport retry behavior. Durations are expressed
// in seconds so the YAML stays plain integers.
type RetryConfig struct {
	MaxAttempts           int `yaml:"max_attempts"`
	InitialBackoffSeconds int `yaml:"initial_backoff_seconds"`
	MaxBackoffSeconds     int `yaml:"max_backoff_seconds"`
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// DefaultConfig returns a Config with sensible defaults suitable for public
// GitHub.com usage. Every value can be overridden by the config file,
// environment variables, or flags.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_TOKEN",
		},
		Retry: RetryConfig{
			MaxAttempts:           3,
			InitialBackoffSeconds: 1,
			MaxBackoffSeconds:     30,
			RequestTimeoutSeconds: 30,
		},
	}
}

// TransportRetryConfig converts the YAML retry settings to the transport's
// native form.
func (c *Config) TransportRetryConfig() *github.RetryConfig {
	return &github.RetryConfig{
		MaxAttempts:    c.Retry.MaxAttempts,
		InitialBackoff: time.Duration(c.Retry.InitialBackoffSeconds) * time.Second,
		MaxBackoff:     time.Duration(c.Retry.MaxBackoffSeconds) * time.Second,
		RequestTimeout: time.Duration(c.Retry.RequestTimeoutSeconds) * time.Second,
	}
}
