package errors

import (
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		checkFn  func(error) bool
		expected bool
	}{
		{
			name:     "ErrNotFound is recognized",
			err:      ErrNotFound,
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNotFound is recognized",
			err:      NotFoundf("course %s", "cs999"),
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "different error is not ErrNotFound",
			err:      ErrUpstream,
			checkFn:  IsNotFound,
			expected: false,
		},
		{
			name:     "ErrInvalidInput is recognized",
			err:      InvalidInputf("prompt is required"),
			checkFn:  IsInvalidInput,
			expected: true,
		},
		{
			name:     "ErrNotConfigured is recognized",
			err:      NotConfiguredf("GEMINI_API_KEY not set"),
			checkFn:  IsNotConfigured,
			expected: true,
		},
		{
			name:     "ErrUpstream is recognized",
			err:      Upstreamf("openalex returned 500"),
			checkFn:  IsUpstream,
			expected: true,
		},
		{
			name:     "ErrRateLimitExceeded is recognized",
			err:      ErrRateLimitExceeded,
			checkFn:  IsRateLimitExceeded,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checkFn(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("career_goal", "must not be empty")

	expected := "validation failed on career_goal: must not be empty"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	if !IsInvalidInput(err) {
		t.Error("validation errors should satisfy IsInvalidInput")
	}
}

func TestFormattedSentinels(t *testing.T) {
	err := NotFoundf("professor %q", "Ada")
	want := `resource not found: professor "Ada"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
