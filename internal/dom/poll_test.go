// File: internal/dom/poll_test.go
package dom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoll(t *testing.T) {
	t.Run("returns immediately on first success", func(t *testing.T) {
		start := time.Now()
		calls := 0
		err := Poll(context.Background(), 50*time.Millisecond, time.Second, func(ctx context.Context) (bool, error) {
			calls++
			return true, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Less(t, time.Since(start), 40*time.Millisecond, "first attempt should not be delayed")
	})

	t.Run("succeeds after several attempts", func(t *testing.T) {
		calls := 0
		err := Poll(context.Background(), 10*time.Millisecond, time.Second, func(ctx context.Context) (bool, error) {
			calls++
			return calls >= 4, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("reports timeout no earlier than the wait budget", func(t *testing.T) {
		const (
			interval = 20 * time.Millisecond
			maxWait  = 100 * time.Millisecond
		)
		start := time.Now()
		err := Poll(context.Background(), interval, maxWait, func(ctx context.Context) (bool, error) {
			return false, nil
		})
		elapsed := time.Since(start)

		require.ErrorIs(t, err, ErrTimeout)
		assert.GreaterOrEqual(t, elapsed, maxWait, "failure must not be reported before the budget elapses")
		// Bounded by maxWait + interval, with scheduling slack.
		assert.Less(t, elapsed, maxWait+interval+80*time.Millisecond)
	})

	t.Run("propagates attempt errors", func(t *testing.T) {
		boom := errors.New("boom")
		err := Poll(context.Background(), 10*time.Millisecond, time.Second, func(ctx context.Context) (bool, error) {
			return false, boom
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(30 * time.Millisecond)
			cancel()
		}()
		err := Poll(ctx, 10*time.Millisecond, 5*time.Second, func(ctx context.Context) (bool, error) {
			return false, nil
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSleep(t *testing.T) {
	t.Run("waits out the duration", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, Sleep(context.Background(), 30*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("zero duration is a no-op", func(t *testing.T) {
		require.NoError(t, Sleep(context.Background(), 0))
	})

	t.Run("returns early on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Sleep(ctx, time.Second)
		require.ErrorIs(t, err, context.Canceled)
	})
}
