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

package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit and the given origin URL.
func initRepo(t *testing.T, remoteURL string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	if remoteURL != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{remoteURL},
		})
		require.NoError(t, err)
	}

	return dir
}

func TestDiscover(t *testing.T) {
	dir := initRepo(t, "git@github.com:acme/widget.git")

	info, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, "acme", info.Owner)
	assert.Equal(t, "widget", info.Repo)
	assert.Equal(t, "master", info.Branch)
	assert.Equal(t, "github.com", info.Host)
}

func TestDiscoverFromSubdirectory(t *testing.T) {
	dir := initRepo(t, "https://github.com/acme/widget.git")
	sub := filepath.Join(dir, "internal", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := Discover(sub)
	require.NoError(t, err)
	assert.Equal(t, "acme", info.Owner)
	assert.Equal(t, "widget", info.Repo)
}

func TestDiscoverNoRemote(t *testing.T) {
	dir := initRepo(t, "")

	_, err := Discover(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote")
}

func TestDiscoverNonGitHubRemote(t *testing.T) {
	dir := initRepo(t, "git@gitlab.com:acme/widget.git")

	_, err := Discover(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a GitHub remote")
}

func TestDiscoverOutsideRepository(t *testing.T) {
	_, err := Discover(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in a git repository")
}

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		url     string
		host    string
		owner   string
		repo    string
		wantErr bool
	}{
		{url: "git@github.com:acme/widget.git", host: "github.com", owner: "acme", repo: "widget"},
		{url: "git@github.com:acme/widget", host: "github.com", owner: "acme", repo: "widget"},
		{url: "https://github.com/acme/widget.git", host: "github.com", owner: "acme", repo: "widget"},
		{url: "https://github.com/acme/widget", host: "github.com", owner: "acme", repo: "widget"},
		{url: "ssh://git@github.com/acme/widget.git", host: "github.com", owner: "acme", repo: "widget"},
		{url: "git@github.example.com:team/service.git", host: "github.example.com", owner: "team", repo: "service"},
		{url: "https://github.com/acme/widget.repo.git", host: "github.com", owner: "acme", repo: "widget.repo"},
		{url: "not-a-url", wantErr: true},
		{url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			host, owner, repo, err := ParseRemoteURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, host)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}
