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

// Package testutil provides common test helpers for reviewmd
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// MockServer wraps an httptest server with an atomic request counter.
type MockServer struct {
	*httptest.Server
	requestCount int32
}

// Requests returns the number of requests the server has received.
func (s *MockServer) Requests() int {
	return int(atomic.LoadInt32(&s.requestCount))
}

// NewMockServer creates a mock server that counts requests and delegates to
// the given handler.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	s := &MockServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.requestCount, 1)
		handler(w, r)
	}))
	return s
}

// NewErrorServer creates a mock server that always returns the specified
// status code.
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	})
}

// NewStatusSequenceServer creates a mock server that answers request N with
// the Nth status code, serving the given GraphQL response body on 200.
// Requests past the end of the sequence repeat the last entry.
func NewStatusSequenceServer(t *testing.T, statuses []int, success map[string]interface{}) *MockServer {
	t.Helper()
	s := &MockServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := atomic.AddInt32(&s.requestCount, 1)

		idx := int(count) - 1
		if idx >= len(statuses) {
			idx = len(statuses) - 1
		}
		code := statuses[idx]

		if code != http.StatusOK {
			w.WriteHeader(code)
			_, _ = w.Write([]byte(http.StatusText(code)))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(success)
	}))
	return s
}

// NewResponseSequenceServer creates a mock server that serves the given
// GraphQL response bodies in order, one per request. Requests past the end
// fail the test.
func NewResponseSequenceServer(t *testing.T, responses ...map[string]interface{}) *MockServer {
	t.Helper()
	s := &MockServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := atomic.AddInt32(&s.requestCount, 1)

		idx := int(count) - 1
		if idx >= len(responses) {
			t.Errorf("unexpected request %d, only %d responses configured", count, len(responses))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(responses[idx])
	}))
	return s
}
