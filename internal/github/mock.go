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

import (
	"context"
	"fmt"

	revErrors "github.com/reviewmd/reviewmd/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for
// testing. Thread pages are served in order; comment pages are served in
// order per thread ID. The zero value behaves like a PR with no threads.
type MockClient struct {
	// ThreadPages to serve, one per FetchReviewThreads call.
	ThreadPages []ThreadPage

	// CommentPages to serve per thread ID, one per FetchThreadComments call.
	CommentPages map[string][]CommentPage

	// OpenPRs maps branch names to PR numbers for FindPRByBranch.
	OpenPRs map[string]int

	// Error, when set, is returned by every method.
	Error error

	// Behavior flags
	ShouldFailNotFound bool

	// Track calls for verification
	ThreadCalls  int
	CommentCalls map[string]int
	LastOwner    string
	LastRepo     string
	LastNumber   int
	LastCursor   string
}

// NewMockClient creates a mock client with no review threads.
func NewMockClient() *MockClient {
	return &MockClient{
		ThreadPages:  []ThreadPage{{}},
		CommentPages: make(map[string][]CommentPage),
		CommentCalls: make(map[string]int),
	}
}

// FetchReviewThreads implements the Client interface
func (m *MockClient) FetchReviewThreads(ctx context.Context, owner, repo string, number int, cursor string) (*ThreadPage, error) {
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastNumber = number
	m.LastCursor = cursor

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.Error != nil {
		return nil, m.Error
	}

	if m.ShouldFailNotFound {
		return nil, fmt.Errorf("PR #%d not found in %s/%s: %w", number, owner, repo, revErrors.ErrPRNotFound)
	}

	if m.ThreadCalls >= len(m.ThreadPages) {
		return nil, fmt.Errorf("unexpected thread page request (call %d, cursor %q)", m.ThreadCalls+1, cursor)
	}

	page := m.ThreadPages[m.ThreadCalls]
	m.ThreadCalls++
	return &page, nil
}

// FetchThreadComments implements the Client interface
func (m *MockClient) FetchThreadComments(ctx context.Context, threadID, cursor string) (*CommentPage, error) {
	if m.CommentCalls == nil {
		m.CommentCalls = make(map[string]int)
	}

	if m.Error != nil {
		return nil, m.Error
	}

	pages := m.CommentPages[threadID]
	call := m.CommentCalls[threadID]
	if call >= len(pages) {
		return nil, fmt.Errorf("unexpected comment page request for thread %q (call %d)", threadID, call+1)
	}

	m.CommentCalls[threadID] = call + 1
	page := pages[call]
	return &page, nil
}

// FindPRByBranch implements the Client interface
func (m *MockClient) FindPRByBranch(ctx context.Context, owner, repo, branch string) (int, error) {
	if m.Error != nil {
		return 0, m.Error
	}

	if number, ok := m.OpenPRs[branch]; ok {
		return number, nil
	}
	return 0, fmt.Errorf("branch %q in %s/%s: %w", branch, owner, repo, revErrors.ErrNoPRForBranch)
}

// Requests returns the total number of page requests the mock has served.
func (m *MockClient) Requests() int {
	total := m.ThreadCalls
	for _, calls := range m.CommentCalls {
		total += calls
	}
	return total
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithThreadPages sets the thread pages to serve, in order.
func WithThreadPages(pages ...ThreadPage) MockClientOption {
	return func(m *MockClient) {
		m.ThreadPages = pages
	}
}

// WithCommentPages sets the comment pages served for one thread ID, in order.
func WithCommentPages(threadID string, pages ...CommentPage) MockClientOption {
	return func(m *MockClient) {
		m.CommentPages[threadID] = pages
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithOpenPR registers an open PR for a branch name.
func WithOpenPR(branch string, number int) MockClientOption {
	return func(m *MockClient) {
		if m.OpenPRs == nil {
			m.OpenPRs = make(map[string]int)
		}
		m.OpenPRs[branch] = number
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
