// File: internal/dom/poll.go
package dom

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// ErrTimeout reports that a poll exhausted its wait budget without the
// condition becoming true.
var ErrTimeout = errors.New("dom: poll wait budget exhausted")

// Poll invokes attempt at a fixed interval until it reports success, the wait
// budget elapses, or ctx is cancelled. The first attempt runs immediately.
// Failure is reported no earlier than maxWait after the call and no later
// than one interval past that, matching the bounded-patience contract every
// lookup call site shares.
func Poll(ctx context.Context, interval, maxWait time.Duration, attempt func(context.Context) (bool, error)) error {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	deadline := time.Now().Add(maxWait)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		ok, err := attempt(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			return ErrTimeout
		}
	}
}

// Sleep pauses for d or until ctx is cancelled, whichever comes first.
// Every wait point of the engine funnels through here so a cancelled run
// never blocks on a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
