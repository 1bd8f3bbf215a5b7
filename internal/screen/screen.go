// Package screen redraws the plain-text status screen.
package screen

import (
	"fmt"
	"io"
	"strings"

	"github.com/amonks/pomo/timer"
)

// ClearSequence clears the terminal and homes the cursor.
const ClearSequence = "\x1b[2J\x1b[1;1H"

// Label heads every redraw. It is printed unstyled.
const Label = "POMO"

// Options configures a Screen.
type Options struct {
	// Live shows the running countdown of the active phase and the cycles
	// left in the current pass. By default the configured values are shown
	// unchanged on every redraw.
	Live bool
}

// Screen writes the status screen to a terminal.
type Screen struct {
	out  io.Writer
	live bool
}

// New creates a Screen writing to out.
func New(out io.Writer, opts Options) *Screen {
	if out == nil {
		out = io.Discard
	}
	return &Screen{
		out:  out,
		live: opts.Live,
	}
}

// Render clears the terminal and prints the status lines.
func (s *Screen) Render(snapshot timer.Snapshot) error {
	var builder strings.Builder
	builder.WriteString(ClearSequence)
	builder.WriteString(Label)
	builder.WriteString("\n")
	for _, line := range Lines(snapshot, s.live) {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	if _, err := io.WriteString(s.out, builder.String()); err != nil {
		return fmt.Errorf("write screen: %w", err)
	}
	return nil
}

// Lines returns the four field lines shown under the label.
func Lines(snapshot timer.Snapshot, live bool) []string {
	cfg := snapshot.Config
	work := cfg.WorkMinutes
	short := cfg.ShortBreakMinutes
	long := cfg.LongBreakMinutes
	cycles := cfg.Cycles
	if live {
		switch snapshot.Phase {
		case timer.PhaseWorking:
			work = snapshot.Remaining
		case timer.PhaseShortBreak:
			short = snapshot.Remaining
		case timer.PhaseLongBreak:
			long = snapshot.Remaining
		}
		cycles = snapshot.CyclesRemaining
	}
	return []string{
		fmt.Sprintf("W:%d", work),
		fmt.Sprintf("S:%d", short),
		fmt.Sprintf("L:%d", long),
		fmt.Sprintf("C:%d", cycles),
	}
}
