package timer

import (
	"context"
	"time"
)

// Sleeper blocks for one tick.
type Sleeper interface {
	Sleep(ctx context.Context, duration time.Duration) error
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(ctx context.Context, duration time.Duration) error

// Sleep calls fn.
func (fn SleeperFunc) Sleep(ctx context.Context, duration time.Duration) error {
	return fn(ctx, duration)
}

type wallClock struct{}

// Sleep waits for duration or until ctx is done.
func (wallClock) Sleep(ctx context.Context, duration time.Duration) error {
	t := time.NewTimer(duration)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
