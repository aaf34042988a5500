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

// Package gitrepo inspects the local git repository to infer which pull
// request the user is working on: current branch plus the GitHub remote's
// owner/repo.
package gitrepo

import (
	"fmt"
	"regexp"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Info describes the local checkout: the current branch and the GitHub
// repository its remote points at.
type Info struct {
	Owner  string
	Repo   string
	Branch string
	Host   string
}

// remoteURLPattern matches both SSH and HTTPS GitHub remote URLs:
//
//	git@github.com:owner/repo.git
//	ssh://git@github.com/owner/repo.git
//	https://github.com/owner/repo.git
var remoteURLPattern = regexp.MustCompile(`^(?:ssh://)?(?:git@|https://)([^/:]+)[/:]([^/]+)/(.+?)(?:\.git)?/?$`)

// Discover opens the repository containing path (walking up like git does)
// and returns branch and remote information. Detached HEAD and non-GitHub
// remotes are errors; the caller should fall back to an explicit PR URL.
func Discover(path string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return nil, fmt.Errorf("detached HEAD state, cannot infer a branch; pass the PR URL explicitly")
	}
	branch := head.Name().Short()

	url, err := remoteURL(repo, branch)
	if err != nil {
		return nil, err
	}

	host, owner, name, err := ParseRemoteURL(url)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(strings.ToLower(host), "github") {
		return nil, fmt.Errorf("remote %q is not a GitHub remote", url)
	}

	return &Info{Owner: owner, Repo: name, Branch: branch, Host: host}, nil
}

// remoteURL returns the URL of the branch's configured remote, falling back
// to origin.
func remoteURL(repo *git.Repository, branch string) (string, error) {
	remoteName := "origin"
	if cfg, err := repo.Config(); err == nil {
		if b, ok := cfg.Branches[branch]; ok && b.Remote != "" {
			remoteName = b.Remote
		}
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		if remoteName != "origin" {
			remote, err = repo.Remote("origin")
		}
		if err != nil {
			return "", fmt.Errorf("no usable git remote found: %w", err)
		}
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL configured", remoteName)
	}
	return urls[0], nil
}

// ParseRemoteURL extracts host, owner, and repository name from a git remote
// URL in SSH or HTTPS form.
func ParseRemoteURL(url string) (host, owner, repo string, err error) {
	m := remoteURLPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return "", "", "", fmt.Errorf("unrecognized git remote URL: %q", url)
	}
	return m[1], m[2], m[3], nil
}
