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
	"net/http"
	"time"

	"github.com/shurcooL/graphql"

	"github.com/reviewmd/reviewmd/internal/apierror"
	revErrors "github.com/reviewmd/reviewmd/internal/errors"
)

// GraphQLClient implements the GitHub Client interface using the GraphQL API.
// All requests go through a transport chain that injects authentication
// headers and retries transient failures with exponential backoff.
type GraphQLClient struct {
	client    *graphql.Client
	inspector apierror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided
// token and endpoint. An empty token yields unauthenticated requests. A nil
// retry config selects DefaultRetryConfig. The underlying HTTP client is safe
// for reuse across repeated calls; it carries no per-request state beyond the
// fixed headers set at construction.
func NewGraphQLClient(token, endpoint string, retry *RetryConfig) *GraphQLClient {
	if retry == nil {
		retry = DefaultRetryConfig()
	}

	// Create optimized transport with connection pooling
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: newRetryTransport(&authTransport{
			token: token,
			base:  transport,
		}, retry),
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		inspector: apierror.NewInspector(),
	}
}

// pageInfoFragment mirrors the GraphQL pageInfo object carried by every
// paginated connection.
type pageInfoFragment struct {
	HasNextPage graphql.Boolean
	EndCursor   graphql.String
}

// commentNode mirrors one review comment node. Author is a pointer because
// GitHub returns null for comments whose author account was deleted.
type commentNode struct {
	ID     graphql.String
	Author *struct {
		Login graphql.String
	}
	Body      graphql.String
	CreatedAt time.Time
	UpdatedAt time.Time
	Path      graphql.String
	DiffHunk  graphql.String
	Position  *graphql.Int
	URL       graphql.String
	Line      *graphql.Int
}

// FetchReviewThreads retrieves one page of review threads for a pull request.
// Each thread node carries its first page of comments; threads whose comment
// connection reports another page must be completed via FetchThreadComments.
func (c *GraphQLClient) FetchReviewThreads(ctx context.Context, owner, repo string, number int, cursor string) (*ThreadPage, error) {
	var query struct {
		Repository struct {
			PullRequest *struct {
				ReviewThreads struct {
					PageInfo pageInfoFragment
					Nodes    []struct {
						ID         graphql.String
						IsResolved graphql.Boolean
						Comments   struct {
							PageInfo pageInfoFragment
							Nodes    []commentNode
						} `graphql:"comments(first: $pageSize)"`
					}
				} `graphql:"reviewThreads(first: $pageSize, after: $cursor)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner":    graphql.String(owner),
		"repo":     graphql.String(repo),
		"number":   graphql.Int(int32(number)), // #nosec G115 - PR numbers fit in int32
		"pageSize": graphql.Int(pageSize),
		"cursor":   optionalCursor(cursor),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err)
	}

	// The repository resolved but the PR did not: fail before any iteration.
	if query.Repository.PullRequest == nil {
		return nil, fmt.Errorf("PR #%d not found in %s/%s: %w",
			number, owner, repo, revErrors.ErrPRNotFound)
	}

	threads := query.Repository.PullRequest.ReviewThreads
	page := &ThreadPage{
		HasNextPage: bool(threads.PageInfo.HasNextPage),
		EndCursor:   string(threads.PageInfo.EndCursor),
		Threads:     make([]ReviewThread, 0, len(threads.Nodes)),
	}

	for _, node := range threads.Nodes {
		thread := ReviewThread{
			ID:         string(node.ID),
			IsResolved: bool(node.IsResolved),
			Comments: CommentPage{
				Comments:    convertComments(node.Comments.Nodes),
				HasNextPage: bool(node.Comments.PageInfo.HasNextPage),
				EndCursor:   string(node.Comments.PageInfo.EndCursor),
			},
		}
		page.Threads = append(page.Threads, thread)
	}

	return page, nil
}

// FetchThreadComments retrieves one page of comments for a single review
// thread, addressed by node ID. The thread is already resolved at this point,
// so the query goes through the node lookup rather than owner/repo/number.
func (c *GraphQLClient) FetchThreadComments(ctx context.Context, threadID, cursor string) (*CommentPage, error) {
	var query struct {
		Node *struct {
			Thread struct {
				Comments struct {
					PageInfo pageInfoFragment
					Nodes    []commentNode
				} `graphql:"comments(first: $pageSize, after: $cursor)"`
			} `graphql:"... on PullRequestReviewThread"`
		} `graphql:"node(id: $id)"`
	}

	variables := map[string]interface{}{
		"id":       graphql.ID(threadID),
		"pageSize": graphql.Int(pageSize),
		"cursor":   optionalCursor(cursor),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err)
	}

	if query.Node == nil {
		return nil, fmt.Errorf("review thread %q vanished during pagination: %w",
			threadID, revErrors.ErrGraphQL)
	}

	comments := query.Node.Thread.Comments
	return &CommentPage{
		Comments:    convertComments(comments.Nodes),
		HasNextPage: bool(comments.PageInfo.HasNextPage),
		EndCursor:   string(comments.PageInfo.EndCursor),
	}, nil
}

// FindPRByBranch returns the number of the first open pull request whose head
// ref equals branch. Single page, no cursor walk.
func (c *GraphQLClient) FindPRByBranch(ctx context.Context, owner, repo, branch string) (int, error) {
	var query struct {
		Repository struct {
			PullRequests struct {
				Nodes []struct {
					Number      graphql.Int
					HeadRefName graphql.String
					State       graphql.String
				}
			} `graphql:"pullRequests(first: $limit, states: [OPEN], headRefName: $branch)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner":  graphql.String(owner),
		"repo":   graphql.String(repo),
		"branch": graphql.String(branch),
		"limit":  graphql.Int(branchLookupLimit),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return 0, c.mapError(err)
	}

	for _, node := range query.Repository.PullRequests.Nodes {
		if string(node.State) == "OPEN" && string(node.HeadRefName) == branch {
			return int(node.Number), nil
		}
	}

	return 0, fmt.Errorf("branch %q in %s/%s: %w", branch, owner, repo, revErrors.ErrNoPRForBranch)
}

// mapError maps GraphQL and transport errors to our domain errors with
// actionable messages.
func (c *GraphQLClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", revErrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", revErrors.ErrInvalidToken)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API: %w", err)
	}

	// Protocol fault: non-2xx status or a GraphQL errors payload. The
	// underlying error already carries the status code and response body.
	return fmt.Errorf("GitHub GraphQL API error: %v: %w", err, revErrors.ErrGraphQL)
}

// optionalCursor maps an empty cursor to GraphQL null, requesting the first
// page.
func optionalCursor(cursor string) *graphql.String {
	if cursor == "" {
		return (*graphql.String)(nil)
	}
	value := graphql.String(cursor)
	return &value
}

// convertComments maps raw comment nodes to the domain model.
func convertComments(nodes []commentNode) []ReviewComment {
	comments := make([]ReviewComment, 0, len(nodes))
	for _, node := range nodes {
		comment := ReviewComment{
			ID:        string(node.ID),
			Body:      string(node.Body),
			CreatedAt: node.CreatedAt,
			UpdatedAt: node.UpdatedAt,
			Path:      string(node.Path),
			DiffHunk:  string(node.DiffHunk),
			URL:       string(node.URL),
		}
		if node.Author != nil {
			comment.AuthorLogin = string(node.Author.Login)
		}
		if node.Position != nil {
			position := int(*node.Position)
			comment.Position = &position
		}
		if node.Line != nil {
			line := int(*node.Line)
			comment.Line = &line
		}
		comments = append(comments, comment)
	}
	return comments
}
