package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		category ErrorCategory
		status   int
	}{
		{
			name:     "validation",
			err:      NewValidationError("bad input"),
			category: CategoryValidation,
			status:   http.StatusBadRequest,
		},
		{
			name:     "storage",
			err:      NewStorageError("write failed", errors.New("disk full")),
			category: CategoryStorage,
			status:   http.StatusInternalServerError,
		},
		{
			name:     "model unavailable",
			err:      NewModelUnavailableError(errors.New("not enough records")),
			category: CategoryModelUnavailable,
			status:   http.StatusConflict,
		},
		{
			name:     "timeout",
			err:      NewTimeoutError("deadline", nil),
			category: CategoryTimeout,
			status:   http.StatusGatewayTimeout,
		},
		{
			name:     "rate limit",
			err:      NewRateLimitError("60"),
			category: CategoryRateLimit,
			status:   http.StatusTooManyRequests,
		},
		{
			name:     "external api",
			err:      NewExternalAPIError("OpenAI", errors.New("502")),
			category: CategoryExternalAPI,
			status:   http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Error())
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestToAppError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.Nil(t, ToAppError(nil))
	})

	t.Run("app error is returned unchanged", func(t *testing.T) {
		original := NewValidationError("bad input")
		assert.Same(t, original, ToAppError(original))
	})

	t.Run("network errors map to external api", func(t *testing.T) {
		err := ToAppError(errors.New("dial tcp: connection refused"))
		assert.Equal(t, CategoryExternalAPI, err.Category)
	})

	t.Run("timeout strings map to timeout", func(t *testing.T) {
		err := ToAppError(errors.New("context deadline exceeded"))
		assert.Equal(t, CategoryTimeout, err.Category)
	})

	t.Run("context cancellation maps to timeout", func(t *testing.T) {
		err := ToAppError(fmt.Errorf("request failed: %w", context.Canceled))
		assert.Equal(t, CategoryTimeout, err.Category)
	})

	t.Run("unknown errors map to internal", func(t *testing.T) {
		err := ToAppError(errors.New("something odd"))
		assert.Equal(t, CategoryInternal, err.Category)
		assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	})
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(NewTimeoutError("deadline", nil)))
	assert.True(t, IsRetryableError(NewExternalAPIError("OpenAI", nil)))
	assert.True(t, IsRetryableError(NewRateLimitError("60")))

	assert.False(t, IsRetryableError(NewValidationError("bad input")))
	assert.False(t, IsRetryableError(NewModelUnavailableError(nil)))
	assert.False(t, IsRetryableError(errors.New("opaque")))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "context"))

	cause := errors.New("root cause")
	wrapped := WrapError(cause, "loading record %s", "abc")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "loading record abc")
}
