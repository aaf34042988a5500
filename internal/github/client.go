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

package github

import "context"

// Client defines the page-level interface for interacting with GitHub's API.
// Each method fetches exactly one page; callers drive the cursor walk. This
// interface allows for easy mocking in tests.
type Client interface {
	// FetchReviewThreads retrieves one page of review threads for the given
	// pull request. An empty cursor requests the first page. Returns
	// ErrPRNotFound (wrapped) when the pull request does not exist.
	FetchReviewThreads(ctx context.Context, owner, repo string, number int, cursor string) (*ThreadPage, error)

	// FetchThreadComments retrieves one page of comments for a single review
	// thread, addressed by its node ID. Used when a thread's first comment
	// page, delivered inline with the thread page, was incomplete.
	FetchThreadComments(ctx context.Context, threadID, cursor string) (*CommentPage, error)

	// FindPRByBranch returns the number of the first open pull request whose
	// head ref matches branch. Returns ErrNoPRForBranch (wrapped) when no
	// open PR exists for the branch. Always a single-page query.
	FindPRByBranch(ctx context.Context, owner, repo, branch string) (int, error)
}
