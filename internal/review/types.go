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

package review

import "time"

// User identifies the author of a comment.
type User struct {
	Login string `json:"login"`
}

// Comment is the canonical review comment record handed to rendering. Field
// names follow GitHub's REST representation so downstream consumers see a
// familiar shape regardless of the GraphQL origin. Immutable once
// constructed.
type Comment struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Path      string    `json:"path"`
	DiffHunk  string    `json:"diff_hunk"`
	Line      *int      `json:"line"`
	Position  *int      `json:"position"`
	HTMLURL   string    `json:"html_url"`

	// Side is "LEFT" for outdated comments and "RIGHT" otherwise. This is a
	// heuristic derived from outdatedness, not the API's own side field.
	Side string `json:"side"`
}

// Options controls which comments are included in the result. Both flags
// default to false: resolved and outdated comments are excluded.
type Options struct {
	IncludeOutdated bool
	IncludeResolved bool
}

// Stats records page-walk activity during one fetch operation. Useful for
// terminal summaries and for asserting request counts in tests.
type Stats struct {
	// Requests is the total number of client calls issued.
	Requests int
	// ThreadPages is the number of review thread pages fetched.
	ThreadPages int
	// PaginatedThreads counts threads whose comment list needed follow-up
	// pages.
	PaginatedThreads int
}
