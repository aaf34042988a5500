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
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/spf13/cobra"

	"github.com/reviewmd/reviewmd/internal/config"
	revErrors "github.com/reviewmd/reviewmd/internal/errors"
	"github.com/reviewmd/reviewmd/internal/format"
	"github.com/reviewmd/reviewmd/internal/github"
	"github.com/reviewmd/reviewmd/internal/gitrepo"
	"github.com/reviewmd/reviewmd/internal/output"
	"github.com/reviewmd/reviewmd/internal/review"
)

// newRootCommand builds the reviewmd command tree.
func newRootCommand(version string) *cobra.Command {
	var (
		configPath      string
		token           string
		includeResolved bool
		includeOutdated bool
		toFile          bool
		outputFile      string
	)

	cmd := &cobra.Command{
		Use:   "reviewmd [pr-url]",
		Short: "Fetch GitHub PR review comments and render them as markdown",
		Long: `reviewmd fetches all review-thread comments of a GitHub pull request via
the GraphQL API and renders them as a markdown document.

The pull request can be given as a URL (https://github.com/owner/repo/pull/123).
Without an argument, reviewmd inspects the current git repository and looks up
the open pull request for the checked-out branch.

Authentication uses, in order: the --token flag, the GITHUB_TOKEN environment
variable, the config file, and finally the gh CLI's stored credentials.
Unauthenticated requests work but are rate limited much harder by GitHub.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			// Flags beat config file values, but only when actually set.
			if cmd.Flags().Changed("include-resolved") {
				cfg.IncludeResolved = includeResolved
			}
			if cmd.Flags().Changed("include-outdated") {
				cfg.IncludeOutdated = includeOutdated
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = toFile
			}
			if cmd.Flags().Changed("output-file") {
				cfg.OutputFile = outputFile
			}

			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}

			return runFetch(cmd.Context(), cfg, token, arg)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: "+config.DefaultConfigPath()+")")
	cmd.Flags().StringVar(&token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().BoolVar(&includeResolved, "include-resolved", false, "Include comments from resolved review threads")
	cmd.Flags().BoolVar(&includeOutdated, "include-outdated", false, "Include outdated comments")
	cmd.Flags().BoolVarP(&toFile, "output", "o", false, "Write to an auto-named file instead of stdout")
	cmd.Flags().StringVar(&outputFile, "output-file", "", "Write to the given file path")

	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

// runFetch resolves the target PR, fetches its comments, and writes the
// rendered document.
func runFetch(ctx context.Context, cfg *config.Config, tokenFlag, prURL string) error {
	token := resolveToken(tokenFlag, cfg)
	if token == "" {
		fmt.Fprintln(os.Stderr, "Warning: no GitHub token found; unauthenticated requests are heavily rate limited")
	}

	client := github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint, cfg.TransportRetryConfig())

	var owner, repo string
	var number int
	var err error

	if prURL != "" {
		owner, repo, number, err = parsePRURL(prURL)
		if err != nil {
			return err
		}
	} else {
		info, dErr := gitrepo.Discover(".")
		if dErr != nil {
			return fmt.Errorf("%w\nPass the PR URL explicitly: reviewmd https://github.com/owner/repo/pull/123", dErr)
		}
		owner, repo = info.Owner, info.Repo

		number, err = client.FindPRByBranch(ctx, owner, repo, info.Branch)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Found PR #%d for branch %s in %s/%s\n", number, info.Branch, owner, repo)
	}

	comments, stats, err := review.Fetch(ctx, client, owner, repo, number, review.Options{
		IncludeResolved: cfg.IncludeResolved,
		IncludeOutdated: cfg.IncludeOutdated,
	})
	if err != nil {
		return err
	}

	doc := format.Markdown(comments, owner, repo, number)

	writer, err := newDocumentWriter(cfg, owner, repo, number)
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := writer.WriteDocument(doc); err != nil {
		return err
	}

	if writer.Path != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d comments to %s\n", len(comments), writer.Path)
	}
	fmt.Fprintf(os.Stderr, "Fetched %d comments in %d requests (%d thread pages, %d threads needed extra pages)\n",
		len(comments), stats.Requests, stats.ThreadPages, stats.PaginatedThreads)

	return nil
}

// newDocumentWriter picks the destination: explicit file, generated file
// name, or stdout.
func newDocumentWriter(cfg *config.Config, owner, repo string, number int) (*output.Writer, error) {
	switch {
	case cfg.OutputFile != "":
		return output.NewFileWriter(cfg.OutputFile)
	case cfg.Output:
		return output.NewFileWriter(format.Filename(owner, repo, number, time.Now()))
	default:
		return output.NewWriter(os.Stdout), nil
	}
}

// prURLPattern matches canonical GitHub pull request URLs.
var prURLPattern = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/pull/(\d+)/?$`)

// parsePRURL extracts owner, repo, and PR number from a GitHub PR URL.
func parsePRURL(url string) (owner, repo string, number int, err error) {
	m := prURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", 0, fmt.Errorf("invalid GitHub PR URL format. Expected: https://github.com/owner/repo/pull/123, got: %s", url)
	}

	number, err = strconv.Atoi(m[3])
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid PR number in URL %s: %w", url, err)
	}
	return m[1], m[2], number, nil
}

// resolveToken returns the first token found: flag, environment, config
// file, then the gh CLI's stored credentials. Empty means unauthenticated.
func resolveToken(tokenFlag string, cfg *config.Config) string {
	if tokenFlag != "" {
		return tokenFlag
	}
	if token := os.Getenv(cfg.GitHub.TokenEnv); token != "" {
		return token
	}
	if cfg.Token != "" {
		return cfg.Token
	}
	if token, _ := auth.TokenForHost("github.com"); token != "" {
		return token
	}
	return ""
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	switch {
	case errors.Is(err, revErrors.ErrInvalidToken),
		errors.Is(err, revErrors.ErrPRNotFound),
		errors.Is(err, revErrors.ErrNoPRForBranch),
		errors.Is(err, revErrors.ErrRateLimit):
		return 2
	case errors.Is(err, revErrors.ErrNetworkFailure):
		return 3
	default:
		return 1
	}
}
