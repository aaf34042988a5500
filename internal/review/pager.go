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

	"github.com/reviewmd/reviewmd/internal/github"
)

// Both pagers share the same walking contract: each call to next issues one
// request with the current cursor and advances it from the response. A nil
// page with a nil error marks exhaustion. Pagers are not restartable
// mid-walk; a fresh fetch starts a fresh pager.

// threadPager walks the review thread pages of one pull request.
type threadPager struct {
	client github.Client
	owner  string
	repo   string
	number int

	cursor string
	done   bool
}

func newThreadPager(client github.Client, owner, repo string, number int) *threadPager {
	return &threadPager{
		client: client,
		owner:  owner,
		repo:   repo,
		number: number,
	}
}

func (p *threadPager) next(ctx context.Context) (*github.ThreadPage, error) {
	if p.done {
		return nil, nil
	}

	page, err := p.client.FetchReviewThreads(ctx, p.owner, p.repo, p.number, p.cursor)
	if err != nil {
		p.done = true
		return nil, err
	}

	p.cursor = page.EndCursor
	p.done = !page.HasNextPage
	return page, nil
}

// commentPager walks the remaining comment pages of a single review thread,
// starting from the cursor where the inline first page ended.
type commentPager struct {
	client   github.Client
	threadID string

	cursor string
	done   bool
}

func newCommentPager(client github.Client, threadID, cursor string) *commentPager {
	return &commentPager{
		client:   client,
		threadID: threadID,
		cursor:   cursor,
	}
}

func (p *commentPager) next(ctx context.Context) (*github.CommentPage, error) {
	if p.done {
		return nil, nil
	}

	page, err := p.client.FetchThreadComments(ctx, p.threadID, p.cursor)
	if err != nil {
		p.done = true
		return nil, err
	}

	p.cursor = page.EndCursor
	p.done = !page.HasNextPage
	return page, nil
}
