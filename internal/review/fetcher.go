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

import (
	"context"
	"sort"

	"github.com/reviewmd/reviewmd/internal/github"
)

// Fetch retrieves all review comments of a pull request, filtered per opts
// and sorted by creation time ascending (stable: ties keep discovery order).
// The result is never nil. Any error aborts the whole fetch; no partial data
// is returned.
func Fetch(ctx context.Context, client github.Client, owner, repo string, number int, opts Options) ([]Comment, *Stats, error) {
	stats := &Stats{}
	comments := make([]Comment, 0)

	pager := newThreadPager(client, owner, repo, number)
	for {
		page, err := pager.next(ctx)
		if err != nil {
			return nil, nil, err
		}
		if page == nil {
			break
		}
		stats.Requests++
		stats.ThreadPages++

		for _, thread := range page.Threads {
			// Resolved threads are dropped wholesale before any nested
			// pagination; their comments can never be included.
			if thread.IsResolved && !opts.IncludeResolved {
				continue
			}

			raw, err := collectThreadComments(ctx, client, thread, stats)
			if err != nil {
				return nil, nil, err
			}

			for _, comment := range raw {
				if include(comment, thread.IsResolved, opts) {
					comments = append(comments, normalize(comment))
				}
			}
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})

	return comments, stats, nil
}

// collectThreadComments returns the full comment list of one thread. The
// inline first page usually suffices; when it reports another page, the
// remainder is fetched by thread ID. Raw pages are folded into the result
// and discarded.
func collectThreadComments(ctx context.Context, client github.Client, thread github.ReviewThread, stats *Stats) ([]github.ReviewComment, error) {
	raw := thread.Comments.Comments
	if !thread.Comments.HasNextPage {
		return raw, nil
	}

	stats.PaginatedThreads++
	pager := newCommentPager(client, thread.ID, thread.Comments.EndCursor)
	for {
		page, err := pager.next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return raw, nil
		}
		stats.Requests++
		raw = append(raw, page.Comments...)
	}
}
