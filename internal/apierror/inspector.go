package apierror

import (
	"errors"
	"strings"

	revErrors "github.com/reviewmd/reviewmd/internal/errors"
)

// Inspector provides methods for classifying GitHub API errors.
type Inspector interface {
	// IsAuthError returns true if the error represents an authentication or
	// authorization failure.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a resource not
	// found error.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if the error represents a network
	// connectivity error.
	IsNetworkError(err error) bool

	// IsRetryable returns true if the error is a transient fault worth
	// retrying: network failures only. Protocol faults are never retryable.
	IsRetryable(err error) bool
}

// GitHubErrorInspector implements the Inspector interface for GitHub API errors.
type GitHubErrorInspector struct{}

// NewInspector creates a new GitHubErrorInspector.
func NewInspector() Inspector {
	return &GitHubErrorInspector{}
}

// IsAuthError checks if the error is an authentication or authorization error.
func (i *GitHubErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, revErrors.ErrInvalidToken) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "forbidden") ||
		strings.Contains(errStr, "bad credentials")
}

// IsNotFoundError checks if the error is a not found error.
func (i *GitHubErrorInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, revErrors.ErrPRNotFound) || errors.Is(err, revErrors.ErrNoPRForBranch) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "404") ||
		strings.Contains(errStr, "not found") ||
		strings.Contains(errStr, "could not resolve to a repository") ||
		strings.Contains(errStr, "could not resolve to a pullrequest")
}

// IsRateLimitError checks if the error is a rate limit error.
func (i *GitHubErrorInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, revErrors.ErrRateLimit) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429")
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *GitHubErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, revErrors.ErrNetworkFailure) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}

// IsRetryable reports whether a fresh attempt could plausibly succeed.
func (i *GitHubErrorInspector) IsRetryable(err error) bool {
	return i.IsNetworkError(err)
}
