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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	revErrors "github.com/reviewmd/reviewmd/internal/errors"
	"github.com/reviewmd/reviewmd/test/testutil"
)

func newTestClient(endpoint string) *GraphQLClient {
	return NewGraphQLClient("test-token", endpoint, testRetryConfig(3))
}

func TestFetchReviewThreadsParsesPage(t *testing.T) {
	pos := 4
	server := testutil.NewResponseSequenceServer(t,
		testutil.ThreadPageResponse([]map[string]interface{}{
			testutil.ThreadNode("RT_1", false, []map[string]interface{}{
				testutil.CommentNode("RC_1", "alice", "2026-03-01T12:00:00Z", &pos),
				testutil.CommentNode("RC_2", "bob", "2026-03-01T13:00:00Z", nil),
			}, false, ""),
			testutil.ThreadNode("RT_2", true, nil, true, "comment-cursor"),
		}, true, "thread-cursor"),
	)
	defer server.Close()

	page, err := newTestClient(server.URL).FetchReviewThreads(context.Background(), "acme", "widget", 7, "")
	require.NoError(t, err)

	assert.True(t, page.HasNextPage)
	assert.Equal(t, "thread-cursor", page.EndCursor)
	require.Len(t, page.Threads, 2)

	first := page.Threads[0]
	assert.Equal(t, "RT_1", first.ID)
	assert.False(t, first.IsResolved)
	require.Len(t, first.Comments.Comments, 2)
	assert.Equal(t, "alice", first.Comments.Comments[0].AuthorLogin)
	require.NotNil(t, first.Comments.Comments[0].Position)
	assert.Equal(t, 4, *first.Comments.Comments[0].Position)
	assert.Nil(t, first.Comments.Comments[1].Position, "null position must survive parsing")
	assert.Equal(t, 2026, first.Comments.Comments[0].CreatedAt.Year())

	second := page.Threads[1]
	assert.True(t, second.IsResolved)
	assert.True(t, second.Comments.HasNextPage)
	assert.Equal(t, "comment-cursor", second.Comments.EndCursor)
}

func TestFetchReviewThreadsDeletedAuthor(t *testing.T) {
	pos := 1
	node := testutil.CommentNode("RC_1", "ghost", "2026-03-01T12:00:00Z", &pos)
	node["author"] = nil

	server := testutil.NewResponseSequenceServer(t,
		testutil.ThreadPageResponse([]map[string]interface{}{
			testutil.ThreadNode("RT_1", false, []map[string]interface{}{node}, false, ""),
		}, false, ""),
	)
	defer server.Close()

	page, err := newTestClient(server.URL).FetchReviewThreads(context.Background(), "acme", "widget", 7, "")
	require.NoError(t, err)
	require.Len(t, page.Threads, 1)
	assert.Equal(t, "", page.Threads[0].Comments.Comments[0].AuthorLogin)
}

func TestFetchReviewThreadsPRNotFound(t *testing.T) {
	server := testutil.NewResponseSequenceServer(t, testutil.NullPRResponse())
	defer server.Close()

	_, err := newTestClient(server.URL).FetchReviewThreads(context.Background(), "acme", "widget", 999, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, revErrors.ErrPRNotFound)
	assert.Contains(t, err.Error(), "PR #999 not found in acme/widget")
	assert.Equal(t, 1, server.Requests(), "a missing PR fails before any pagination")
}

func TestFetchReviewThreadsGraphQLErrorIsFatal(t *testing.T) {
	server := testutil.NewResponseSequenceServer(t,
		testutil.GraphQLErrorResponse("Something went wrong while executing your query"),
	)
	defer server.Close()

	_, err := newTestClient(server.URL).FetchReviewThreads(context.Background(), "acme", "widget", 7, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, revErrors.ErrGraphQL)
	assert.Equal(t, 1, server.Requests(), "a GraphQL errors payload must not be retried")
}

func TestFetchReviewThreadsRetriesServerErrors(t *testing.T) {
	server := testutil.NewStatusSequenceServer(t,
		[]int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusOK},
		testutil.ThreadPageResponse(nil, false, ""),
	)
	defer server.Close()

	page, err := newTestClient(server.URL).FetchReviewThreads(context.Background(), "acme", "widget", 7, "")
	require.NoError(t, err)
	assert.Empty(t, page.Threads)
	assert.Equal(t, 3, server.Requests())
}

func TestFetchThreadCommentsParsesPage(t *testing.T) {
	pos := 9
	server := testutil.NewResponseSequenceServer(t,
		testutil.ThreadCommentsResponse([]map[string]interface{}{
			testutil.CommentNode("RC_5", "carol", "2026-03-02T09:00:00Z", &pos),
		}, true, "next-cursor"),
	)
	defer server.Close()

	page, err := newTestClient(server.URL).FetchThreadComments(context.Background(), "RT_1", "inline-end")
	require.NoError(t, err)
	require.Len(t, page.Comments, 1)
	assert.Equal(t, "RC_5", page.Comments[0].ID)
	assert.True(t, page.HasNextPage)
	assert.Equal(t, "next-cursor", page.EndCursor)
}

func TestFetchThreadCommentsMissingNode(t *testing.T) {
	server := testutil.NewResponseSequenceServer(t, map[string]interface{}{
		"data": map[string]interface{}{"node": nil},
	})
	defer server.Close()

	_, err := newTestClient(server.URL).FetchThreadComments(context.Background(), "RT_gone", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, revErrors.ErrGraphQL)
}

func TestFindPRByBranch(t *testing.T) {
	tests := []struct {
		name    string
		refs    []testutil.PRRef
		want    int
		wantErr error
	}{
		{
			name: "single open PR",
			refs: []testutil.PRRef{{Number: 42, HeadRefName: "feature/login", State: "OPEN"}},
			want: 42,
		},
		{
			name: "first matching open PR wins",
			refs: []testutil.PRRef{
				{Number: 42, HeadRefName: "feature/login", State: "OPEN"},
				{Number: 57, HeadRefName: "feature/login", State: "OPEN"},
			},
			want: 42,
		},
		{
			name: "closed PRs ignored",
			refs: []testutil.PRRef{
				{Number: 42, HeadRefName: "feature/login", State: "CLOSED"},
				{Number: 57, HeadRefName: "feature/login", State: "OPEN"},
			},
			want: 57,
		},
		{
			name:    "no open PR",
			refs:    nil,
			wantErr: revErrors.ErrNoPRForBranch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewResponseSequenceServer(t, testutil.BranchPRsResponse(tt.refs...))
			defer server.Close()

			number, err := newTestClient(server.URL).FindPRByBranch(context.Background(), "acme", "widget", "feature/login")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, number)
		})
	}
}

func TestMapErrorClassification(t *testing.T) {
	server := testutil.NewErrorServer(t, http.StatusUnauthorized)
	defer server.Close()

	_, err := newTestClient(server.URL).FetchReviewThreads(context.Background(), "acme", "widget", 7, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, revErrors.ErrInvalidToken)
}
