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

import "github.com/reviewmd/reviewmd/internal/github"

// IsOutdated reports whether a comment is outdated. A null position is the
// sole signal: the comment's anchor line no longer exists in the current
// diff.
func IsOutdated(c github.ReviewComment) bool {
	return c.Position == nil
}

// include decides whether a comment belongs in the result. Resolution is a
// thread-level property applied to every comment inside the thread. The
// decision depends only on (resolved, position) and the caller's flags; it is
// never influenced by transport behavior.
func include(c github.ReviewComment, resolved bool, opts Options) bool {
	if resolved && !opts.IncludeResolved {
		return false
	}
	if IsOutdated(c) && !opts.IncludeOutdated {
		return false
	}
	return true
}

// normalize maps a raw comment node to the canonical record. The side
// derivation is a heuristic: the GraphQL response does not expose the side
// directly, so outdated comments are labeled "LEFT" (old side) and current
// ones "RIGHT". Preserved as documented behavior, not an API guarantee.
func normalize(c github.ReviewComment) Comment {
	side := "RIGHT"
	if IsOutdated(c) {
		side = "LEFT"
	}

	return Comment{
		ID:        c.ID,
		User:      User{Login: c.AuthorLogin},
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Path:      c.Path,
		DiffHunk:  c.DiffHunk,
		Line:      c.Line,
		Position:  c.Position,
		HTMLURL:   c.URL,
		Side:      side,
	}
}
