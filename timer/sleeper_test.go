package timer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWallClockSleeps(t *testing.T) {
	start := time.Now()
	if err := (wallClock{}).Sleep(context.Background(), 5*time.Millisecond); err != nil {
		t.Fatalf("sleep: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Fatalf("expected to sleep at least 5ms, slept %s", elapsed)
	}
}

func TestWallClockStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := (wallClock{}).Sleep(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSleeperFunc(t *testing.T) {
	var got time.Duration
	sleeper := SleeperFunc(func(ctx context.Context, duration time.Duration) error {
		got = duration
		return nil
	})
	if err := sleeper.Sleep(context.Background(), time.Minute); err != nil {
		t.Fatalf("sleep: %v", err)
	}
	if got != time.Minute {
		t.Fatalf("expected 1m, got %s", got)
	}
}
