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

// Package main implements the reviewmd command-line interface. The tool
// fetches all review-thread comments of a GitHub pull request and renders
// them as a markdown document.
//
// The CLI supports:
//   - Fetching by PR URL, or inferring the PR from the current git branch
//   - Filtering resolved and outdated comments (excluded by default)
//   - Output to stdout, a named file, or an auto-generated file name
//   - Token resolution via flag, environment, config file, or the gh CLI
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	reviewmd [pr-url] [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	reviewmd https://github.com/golang/go/pull/12345 --include-outdated
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication, not-found, or rate-limit error
//   - 3: Network error
package main
