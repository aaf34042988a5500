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

package testutil

import (
	"fmt"
	"net/http"
	"testing"
)

// Builders for GitHub GraphQL response bodies. They produce the JSON shapes
// the client queries expect, so tests can describe pages declaratively.

// CommentNode builds one review comment node. A nil position marks the
// comment outdated.
func CommentNode(id, author, createdAt string, position *int) map[string]interface{} {
	node := map[string]interface{}{
		"id":        id,
		"author":    map[string]interface{}{"login": author},
		"body":      fmt.Sprintf("comment %s body", id),
		"createdAt": createdAt,
		"updatedAt": createdAt,
		"path":      "main.go",
		"diffHunk":  "@@ -1,2 +1,2 @@",
		"position":  position,
		"url":       fmt.Sprintf("https://github.com/acme/widget/pull/7#discussion_%s", id),
		"line":      10,
	}
	return node
}

// ThreadNode builds one review thread node carrying its inline first comment
// page.
func ThreadNode(id string, resolved bool, comments []map[string]interface{}, hasNextPage bool, endCursor string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"isResolved": resolved,
		"comments": map[string]interface{}{
			"pageInfo": pageInfo(hasNextPage, endCursor),
			"nodes":    comments,
		},
	}
}

// ThreadPageResponse builds a full reviewThreads query response.
func ThreadPageResponse(threads []map[string]interface{}, hasNextPage bool, endCursor string) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"repository": map[string]interface{}{
				"pullRequest": map[string]interface{}{
					"reviewThreads": map[string]interface{}{
						"pageInfo": pageInfo(hasNextPage, endCursor),
						"nodes":    threads,
					},
				},
			},
		},
	}
}

// NullPRResponse builds a response where the repository exists but the pull
// request does not.
func NullPRResponse() map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"repository": map[string]interface{}{
				"pullRequest": nil,
			},
		},
	}
}

// ThreadCommentsResponse builds a node-lookup response for one thread's
// comment page.
func ThreadCommentsResponse(comments []map[string]interface{}, hasNextPage bool, endCursor string) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"node": map[string]interface{}{
				"comments": map[string]interface{}{
					"pageInfo": pageInfo(hasNextPage, endCursor),
					"nodes":    comments,
				},
			},
		},
	}
}

// PRRef is one pull request entry in a branch lookup response.
type PRRef struct {
	Number      int
	HeadRefName string
	State       string
}

// BranchPRsResponse builds a pullRequests-by-branch query response.
func BranchPRsResponse(refs ...PRRef) map[string]interface{} {
	nodes := make([]map[string]interface{}, 0, len(refs))
	for _, ref := range refs {
		nodes = append(nodes, map[string]interface{}{
			"number":      ref.Number,
			"headRefName": ref.HeadRefName,
			"state":       ref.State,
		})
	}
	return map[string]interface{}{
		"data": map[string]interface{}{
			"repository": map[string]interface{}{
				"pullRequests": map[string]interface{}{
					"nodes": nodes,
				},
			},
		},
	}
}

// GraphQLErrorResponse builds a 200 response carrying a GraphQL errors
// payload.
func GraphQLErrorResponse(message string) map[string]interface{} {
	return map[string]interface{}{
		"errors": []map[string]interface{}{
			{"message": message},
		},
	}
}

func pageInfo(hasNextPage bool, endCursor string) map[string]interface{} {
	info := map[string]interface{}{
		"hasNextPage": hasNextPage,
	}
	if endCursor != "" {
		info["endCursor"] = endCursor
	} else {
		info["endCursor"] = nil
	}
	return info
}

// AssertGraphQLRequest validates the basic shape of a GraphQL request.
func AssertGraphQLRequest(t *testing.T, r *http.Request) {
	t.Helper()
	if r.Method != http.MethodPost {
		t.Errorf("expected POST method, got: %s", r.Method)
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type: application/json, got: %s", ct)
	}
}
