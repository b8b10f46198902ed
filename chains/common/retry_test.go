package common_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-labs/intentsync/chains/common"
)

func fastConfig(retryable func(error) bool) *common.RetryConfig {
	if retryable == nil {
		retryable = func(error) bool { return true }
	}
	return &common.RetryConfig{
		MaxRetries:     3,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		BackoffFactor:  2.0,
		RetryableError: retryable,
	}
}

func TestExecuteWithRetryRecoversFromTransientFailures(t *testing.T) {
	rm := common.NewRetryManager(fastConfig(nil), zerolog.Nop())

	calls := 0
	err := rm.ExecuteWithRetry(context.Background(), "filter_logs", func() error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteWithRetryStopsOnNonRetryableError(t *testing.T) {
	fatal := errors.New("invalid argument")
	rm := common.NewRetryManager(fastConfig(func(err error) bool {
		return !errors.Is(err, fatal)
	}), zerolog.Nop())

	calls := 0
	err := rm.ExecuteWithRetry(context.Background(), "block_number", func() error {
		calls++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls, "non-retryable errors must not be retried")
}

func TestExecuteWithRetryExhaustsAttempts(t *testing.T) {
	down := errors.New("endpoint down")
	rm := common.NewRetryManager(fastConfig(nil), zerolog.Nop())

	calls := 0
	err := rm.ExecuteWithRetry(context.Background(), "block_number", func() error {
		calls++
		return down
	})

	assert.ErrorIs(t, err, down)
	assert.Equal(t, 4, calls, "initial attempt plus MaxRetries")
}

func TestExecuteWithRetryHonorsContext(t *testing.T) {
	rm := common.NewRetryManager(fastConfig(nil), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := rm.ExecuteWithRetry(ctx, "filter_logs", func() error {
		calls++
		return errors.New("never reached")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}
