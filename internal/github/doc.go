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

// Package github provides a client for interacting with GitHub's GraphQL API
// to fetch pull request review threads and their comments. It abstracts the
// complexity of GraphQL queries and exposes page-level operations so callers
// can drive cursor pagination themselves.
//
// The package includes:
//   - A Client interface for fetching review thread pages, nested comment
//     pages, and resolving a branch to its open pull request
//   - A GraphQL implementation using the shurcooL/graphql library
//   - An HTTP transport chain that injects authentication headers and retries
//     transient failures with exponential backoff
//   - Mock client for testing
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql", nil)
//	page, err := client.FetchReviewThreads(ctx, "golang", "go", 12345, "")
//	if err != nil {
//	    // Handle error
//	}
//	for _, thread := range page.Threads {
//	    // Process review thread
//	}
package github
