// Package timer implements the pomodoro phase state machine.
package timer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultTick is the interval between redraws.
const DefaultTick = time.Minute

// ErrNotifyFailed wraps notification errors that abort a strict timer.
var ErrNotifyFailed = errors.New("notification failed")

// errPhaseLimit stops the loops once MaxPhases phases have completed.
var errPhaseLimit = errors.New("phase limit reached")

// Display redraws the status screen.
type Display interface {
	Render(Snapshot) error
}

// Notifier delivers a desktop alert.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Snapshot is the timer state handed to the display on every redraw.
type Snapshot struct {
	Config          Config
	Phase           Phase
	Remaining       int
	CyclesRemaining int
	Pass            int
}

// Options configures a Timer.
type Options struct {
	Display  Display
	Notifier Notifier
	// Sleeper defaults to the wall clock.
	Sleeper Sleeper
	// Tick defaults to DefaultTick.
	Tick time.Duration
	// StrictNotify makes a notification failure stop the timer.
	StrictNotify bool
	// MaxPhases stops Run after that many completed phases. 0 runs forever.
	MaxPhases int
	// Logger defaults to a no-op logger.
	Logger Logger
}

// Timer alternates work and break phases.
type Timer struct {
	config  Config
	options Options

	phase           Phase
	remaining       int
	cyclesRemaining int
	pass            int
	completed       int
}

// New creates a Timer for cfg.
func New(cfg Config, opts Options) (*Timer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Sleeper == nil {
		opts.Sleeper = wallClock{}
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}
	if opts.MaxPhases < 0 {
		opts.MaxPhases = 0
	}

	return &Timer{
		config:          cfg,
		options:         opts,
		phase:           PhaseWorking,
		remaining:       cfg.WorkMinutes,
		cyclesRemaining: cfg.Cycles,
	}, nil
}

// Config returns the configuration the timer was created with.
func (t *Timer) Config() Config {
	return t.config
}

// Snapshot returns the current timer state.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		Config:          t.config,
		Phase:           t.phase,
		Remaining:       t.remaining,
		CyclesRemaining: t.cyclesRemaining,
		Pass:            t.pass,
	}
}

// Run repeats passes until ctx is cancelled, the phase limit is reached,
// or a strict notification fails. It returns nil only for the phase limit.
func (t *Timer) Run(ctx context.Context) error {
	for {
		err := t.RunPass(ctx)
		if errors.Is(err, errPhaseLimit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// RunPass runs one outer pass: work and short breaks until the cycle count
// runs out, then a long break. With cycles disabled it never returns on
// its own.
func (t *Timer) RunPass(ctx context.Context) error {
	t.pass++
	t.cyclesRemaining = t.config.Cycles
	t.phase = PhaseWorking
	t.remaining = t.config.WorkMinutes
	if err := t.redraw(); err != nil {
		return err
	}

	useCycles := t.config.UseCycles()
	for t.cyclesRemaining > 0 || !useCycles {
		if err := t.runPhase(ctx, PhaseWorking); err != nil {
			return err
		}
		if useCycles {
			t.cyclesRemaining--
		}

		next := PhaseShortBreak
		if useCycles && t.cyclesRemaining == 0 {
			next = PhaseLongBreak
		}
		if err := t.runPhase(ctx, next); err != nil {
			return err
		}
	}
	return nil
}

func (t *Timer) runPhase(ctx context.Context, phase Phase) error {
	t.phase = phase
	t.remaining = phase.Minutes(t.config)
	t.options.Logger.Phase(PhaseLog{
		Phase:           phase,
		Minutes:         t.remaining,
		Tick:            t.options.Tick,
		CyclesRemaining: t.cyclesRemaining,
		Pass:            t.pass,
	})
	if err := t.notify(ctx, phase.Message()); err != nil {
		return err
	}

	for t.remaining > 0 {
		if err := t.tick(ctx); err != nil {
			return err
		}
	}

	t.completed++
	if t.options.MaxPhases > 0 && t.completed >= t.options.MaxPhases {
		return errPhaseLimit
	}
	return nil
}

func (t *Timer) tick(ctx context.Context) error {
	if err := t.redraw(); err != nil {
		return err
	}
	if err := t.options.Sleeper.Sleep(ctx, t.options.Tick); err != nil {
		return err
	}
	t.remaining--
	return nil
}

func (t *Timer) redraw() error {
	if t.options.Display == nil {
		return nil
	}
	if err := t.options.Display.Render(t.Snapshot()); err != nil {
		return fmt.Errorf("redraw: %w", err)
	}
	return nil
}

func (t *Timer) notify(ctx context.Context, message string) error {
	if t.options.Notifier == nil {
		return nil
	}
	err := t.options.Notifier.Notify(ctx, message)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if t.options.StrictNotify {
		return fmt.Errorf("%w: %q: %w", ErrNotifyFailed, message, err)
	}
	t.options.Logger.NotifyFailure(NotifyFailureLog{
		Message: message,
		Err:     err,
	})
	return nil
}
