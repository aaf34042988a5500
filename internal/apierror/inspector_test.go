package apierror

import (
	"errors"
	"fmt"
	"testing"

	revErrors "github.com/reviewmd/reviewmd/internal/errors"
)

func TestIsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", revErrors.ErrInvalidToken, true},
		{"wrapped sentinel", fmt.Errorf("context: %w", revErrors.ErrInvalidToken), true},
		{"401 status", errors.New("non-200 OK status code: 401 Unauthorized"), true},
		{"bad credentials", errors.New("Bad credentials"), true},
		{"unrelated", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pr sentinel", revErrors.ErrPRNotFound, true},
		{"branch sentinel", revErrors.ErrNoPRForBranch, true},
		{"404 status", errors.New("non-200 OK status code: 404 Not Found"), true},
		{"graphql resolution", errors.New("Could not resolve to a Repository with the name 'acme/gone'"), true},
		{"unrelated", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	if !inspector.IsRateLimitError(errors.New("API rate limit exceeded")) {
		t.Error("expected rate limit message to classify")
	}
	if !inspector.IsRateLimitError(revErrors.ErrRateLimit) {
		t.Error("expected sentinel to classify")
	}
	if inspector.IsRateLimitError(errors.New("non-200 OK status code: 401 Unauthorized")) {
		t.Error("auth error misclassified as rate limit")
	}
}

func TestIsNetworkErrorAndRetryable(t *testing.T) {
	inspector := NewInspector()

	networkErrs := []error{
		errors.New("dial tcp 10.0.0.1:443: connection refused"),
		errors.New("Get \"https://api.github.com/graphql\": context deadline exceeded"),
		errors.New("lookup api.github.com: no such host"),
		revErrors.ErrNetworkFailure,
	}
	for _, err := range networkErrs {
		if !inspector.IsNetworkError(err) {
			t.Errorf("IsNetworkError(%v) = false, want true", err)
		}
		if !inspector.IsRetryable(err) {
			t.Errorf("IsRetryable(%v) = false, want true", err)
		}
	}

	// Protocol faults are never retryable.
	protocol := errors.New("non-200 OK status code: 404 Not Found")
	if inspector.IsRetryable(protocol) {
		t.Errorf("IsRetryable(%v) = true, want false", protocol)
	}
}
