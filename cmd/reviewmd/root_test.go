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

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewmd/reviewmd/internal/config"
	revErrors "github.com/reviewmd/reviewmd/internal/errors"
)

func TestParsePRURL(t *testing.T) {
	tests := []struct {
		url     string
		owner   string
		repo    string
		number  int
		wantErr bool
	}{
		{url: "https://github.com/acme/widget/pull/123", owner: "acme", repo: "widget", number: 123},
		{url: "https://github.com/acme/widget/pull/123/", owner: "acme", repo: "widget", number: 123},
		{url: "https://github.com/golang/go/pull/1", owner: "golang", repo: "go", number: 1},
		{url: "https://github.com/acme/widget/pull/123/files", wantErr: true},
		{url: "https://github.com/acme/widget/issues/123", wantErr: true},
		{url: "https://gitlab.com/acme/widget/pull/123", wantErr: true},
		{url: "github.com/acme/widget/pull/123", wantErr: true},
		{url: "https://github.com/acme/pull/123", wantErr: true},
		{url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			owner, repo, number, err := parsePRURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid GitHub PR URL format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
			assert.Equal(t, tt.number, number)
		})
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid token", revErrors.ErrInvalidToken, 2},
		{"pr not found", revErrors.ErrPRNotFound, 2},
		{"no pr for branch", revErrors.ErrNoPRForBranch, 2},
		{"rate limit", revErrors.ErrRateLimit, 2},
		{"network failure", revErrors.ErrNetworkFailure, 3},
		{"wrapped network failure", fmt.Errorf("request failed after 3 attempts: %w", revErrors.ErrNetworkFailure), 3},
		{"graphql error", revErrors.ErrGraphQL, 1},
		{"generic error", errors.New("something else"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErrorToExitCode(tt.err)
			assert.Equal(t, tt.wantCode, got)
		})
	}
}

func TestResolveToken(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GitHub.TokenEnv = "REVIEWMD_TEST_TOKEN"

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("REVIEWMD_TEST_TOKEN", "env-token")
		cfg.Token = "file-token"
		assert.Equal(t, "flag-token", resolveToken("flag-token", cfg))
	})

	t.Run("env beats config file", func(t *testing.T) {
		t.Setenv("REVIEWMD_TEST_TOKEN", "env-token")
		cfg.Token = "file-token"
		assert.Equal(t, "env-token", resolveToken("", cfg))
	})

	t.Run("config file as fallback", func(t *testing.T) {
		t.Setenv("REVIEWMD_TEST_TOKEN", "")
		cfg.Token = "file-token"
		assert.Equal(t, "file-token", resolveToken("", cfg))
	})
}

func TestRootCommandRejectsInvalidURL(t *testing.T) {
	// Full command execution up to URL parsing; stops before any network
	// traffic.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCommand("test")
	cmd.SetArgs([]string{"not-a-url"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid GitHub PR URL format")
}

func TestConfigInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cmd := newRootCommand("test")
	cmd.SetArgs([]string{"config-init"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	// Second run refuses to overwrite.
	cmd = newRootCommand("test")
	cmd.SetArgs([]string{"config-init"})
	require.Error(t, cmd.Execute())
}
