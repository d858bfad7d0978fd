package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/errors"
)

func fastRetryConfig(maxAttempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:     maxAttempts,
		InitialDelay:    time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffFactor:   2.0,
		JitterEnabled:   false,
		RetryableErrors: func(error) bool { return true },
	}
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	attempts := 0
	err := RetryWithConfig(context.Background(), fastRetryConfig(3), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	attempts := 0
	wantErr := errors.New("persistent")
	err := RetryWithConfig(context.Background(), fastRetryConfig(3), func() error {
		attempts++
		return wantErr
	})

	assert.Equal(t, wantErr, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	config := fastRetryConfig(5)
	config.RetryableErrors = func(err error) bool {
		return apperrors.IsRetryableError(err)
	}

	attempts := 0
	err := RetryWithConfig(context.Background(), config, func() error {
		attempts++
		return apperrors.NewValidationError("bad input", "")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := RetryWithConfig(ctx, fastRetryConfig(10), func() error {
		attempts++
		cancel()
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestCalculateDelayBackoff(t *testing.T) {
	config := fastRetryConfig(5)

	assert.Equal(t, time.Millisecond, calculateDelay(config, 0))
	assert.Equal(t, 2*time.Millisecond, calculateDelay(config, 1))
	assert.Equal(t, 4*time.Millisecond, calculateDelay(config, 2))

	// Delay is capped at MaxDelay
	assert.Equal(t, 5*time.Millisecond, calculateDelay(config, 10))
}
