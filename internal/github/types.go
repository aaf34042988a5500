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

import "time"

// ReviewComment is one raw review comment as returned by the GraphQL API.
// A nil Position marks the comment as outdated: its anchor line no longer
// exists in the current diff.
type ReviewComment struct {
	ID          string
	AuthorLogin string
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Path        string
	DiffHunk    string
	Position    *int
	Line        *int
	URL         string
}

// CommentPage is one page of comments belonging to a single review thread.
// EndCursor is only meaningful while HasNextPage is true.
type CommentPage struct {
	Comments    []ReviewComment
	HasNextPage bool
	EndCursor   string
}

// ReviewThread is one review thread node from a thread page. Comments holds
// the first comment page fetched alongside the thread; when its HasNextPage
// flag is set, the remaining pages must be fetched by thread ID via
// Client.FetchThreadComments.
type ReviewThread struct {
	ID         string
	IsResolved bool
	Comments   CommentPage
}

// ThreadPage is one page of review threads for a pull request.
type ThreadPage struct {
	Threads     []ReviewThread
	HasNextPage bool
	EndCursor   string
}

// pageSize is the number of nodes requested per page for both review threads
// and comments. 100 is GitHub's maximum.
const pageSize = 100

// branchLookupLimit bounds the single-page PR-by-branch query. A branch
// rarely has more than one open PR; 10 leaves headroom.
const branchLookupLimit = 10
