package timer

import (
	"errors"
	"fmt"
)

// Default durations, in minutes.
const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 20
	DefaultCycles            = 4
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid timer config")

// Config holds the durations fixed at startup.
type Config struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	// Cycles is the number of work phases before a long break.
	// 0 and 1 both disable long breaks.
	Cycles int
}

// DefaultConfig returns the classic 25/5/20 schedule with four cycles.
func DefaultConfig() Config {
	return Config{
		WorkMinutes:       DefaultWorkMinutes,
		ShortBreakMinutes: DefaultShortBreakMinutes,
		LongBreakMinutes:  DefaultLongBreakMinutes,
		Cycles:            DefaultCycles,
	}
}

// UseCycles reports whether long breaks are enabled.
func (cfg Config) UseCycles() bool {
	return cfg.Cycles != 0 && cfg.Cycles != 1
}

// Validate checks that every duration is positive and cycles is not negative.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.WorkMinutes <= 0 {
		errs = append(errs, fmt.Errorf("work duration must be positive, got %d", cfg.WorkMinutes))
	}
	if cfg.ShortBreakMinutes <= 0 {
		errs = append(errs, fmt.Errorf("short break duration must be positive, got %d", cfg.ShortBreakMinutes))
	}
	if cfg.LongBreakMinutes <= 0 {
		errs = append(errs, fmt.Errorf("long break duration must be positive, got %d", cfg.LongBreakMinutes))
	}
	if cfg.Cycles < 0 {
		errs = append(errs, fmt.Errorf("cycles must not be negative, got %d", cfg.Cycles))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
