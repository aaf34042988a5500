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
	"io"
	"net/http"
	"time"

	"github.com/reviewmd/reviewmd/internal/apierror"
	revErrors "github.com/reviewmd/reviewmd/internal/errors"
	"github.com/reviewmd/reviewmd/pkg/version"
)

// RetryConfig configures the transport retry behavior for API calls.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts per request, including the
	// first one.
	MaxAttempts int
	// InitialBackoff is the sleep before the second attempt. Doubled after
	// each failure. Zero disables sleeping, which tests rely on.
	InitialBackoff time.Duration
	// MaxBackoff caps the exponential growth.
	MaxBackoff time.Duration
	// RequestTimeout bounds each individual attempt. There is no overall
	// deadline across attempts; callers wanting one must wrap the context.
	RequestTimeout time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     30 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

// authTransport adds authentication and API identification headers to every
// request. The Authorization header is omitted when no token is configured;
// unauthenticated calls are permitted but rate limited harder by GitHub.
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("reviewmd/%s", version.Version))
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	return t.base.RoundTrip(req)
}

// retryTransport adds exponential backoff retry logic for transient failures:
// network-level errors and server-side 5xx status codes. Any other non-2xx
// response passes through untouched so the GraphQL layer can surface it as a
// fatal protocol fault.
type retryTransport struct {
	base      http.RoundTripper
	config    *RetryConfig
	inspector apierror.Inspector
}

// newRetryTransport creates a new transport with retry logic.
func newRetryTransport(base http.RoundTripper, config *RetryConfig) http.RoundTripper {
	return &retryTransport{
		base:      base,
		config:    config,
		inspector: apierror.NewInspector(),
	}
}

// RoundTrip implements http.RoundTripper with retry logic.
func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var lastErr error
	backoff := t.config.InitialBackoff

	for attempt := 1; attempt <= t.config.MaxAttempts; attempt++ {
		resp, err := t.send(req)

		// Success - return immediately
		if err == nil && !isRetryableStatusCode(resp.StatusCode) {
			return resp, nil
		}

		if err != nil {
			if !t.inspector.IsRetryable(err) {
				return nil, err
			}
			lastErr = err
		} else {
			// Retryable status code; drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("received status %d", resp.StatusCode)
		}

		// Don't sleep after the last attempt
		if attempt < t.config.MaxAttempts {
			select {
			case <-time.After(backoff):
				backoff *= 2
				if backoff > t.config.MaxBackoff {
					backoff = t.config.MaxBackoff
				}
			case <-req.Context().Done():
				return nil, req.Context().Err()
			}
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %v: %w",
		t.config.MaxAttempts, lastErr, revErrors.ErrNetworkFailure)
}

// send executes one attempt with its own timeout and a fresh request body.
func (t *retryTransport) send(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	cancel := context.CancelFunc(func() {})
	if t.config.RequestTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, t.config.RequestTimeout)
	}

	attempt := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}
		attempt.Body = body
	}

	resp, err := t.base.RoundTrip(attempt)
	if err != nil {
		cancel()
		return nil, err
	}

	// The attempt context must stay alive until the body has been consumed.
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// isRetryableStatusCode checks if an HTTP status code should trigger a retry.
func isRetryableStatusCode(code int) bool {
	switch code {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// cancelOnClose releases the per-attempt context when the response body is
// closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
