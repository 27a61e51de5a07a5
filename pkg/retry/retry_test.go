package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), FixedConfig(3, time.Millisecond), "test", func() error {
		calls++
		if calls < 3 {
			return errors.New("boom")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUpAfterMaxRetries(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Do(context.Background(), FixedConfig(3, time.Millisecond), "test", func() error {
		calls++
		return boom
	})

	assert.Same(t, boom, err)
	assert.Equal(t, 4, calls, "one attempt plus three retries")
}

func TestDo_NonRetryableReturnsImmediately(t *testing.T) {
	boom := errors.New("boom")
	cfg := FixedConfig(3, time.Millisecond)
	cfg.RetryableErrors = func(error) bool { return false }

	calls := 0
	err := Do(context.Background(), cfg, "test", func() error {
		calls++
		return boom
	})

	assert.Same(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroRetriesReturnsErrorUnwrapped(t *testing.T) {
	boom := errors.New("boom")
	err := Do(context.Background(), FixedConfig(0, time.Millisecond), "test", func() error {
		return boom
	})
	assert.Same(t, boom, err)
}

func TestDo_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, FixedConfig(3, time.Hour), "test", func() error {
		calls++
		cancel()
		return errors.New("boom")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	value, err := DoWithResult(context.Background(), FixedConfig(1, time.Millisecond), "test", func() (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestCalculateDelay(t *testing.T) {
	fixed := CampaignAPIConfig()
	for attempt := 0; attempt < 3; attempt++ {
		assert.Equal(t, 500*time.Millisecond, calculateDelay(attempt, fixed))
	}

	backoff := DefaultConfig()
	backoff.Jitter = false
	assert.Equal(t, 100*time.Millisecond, calculateDelay(0, backoff))
	assert.Equal(t, 400*time.Millisecond, calculateDelay(2, backoff))
	assert.Equal(t, 5*time.Second, calculateDelay(10, backoff))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(errors.New("connection reset")))
}
