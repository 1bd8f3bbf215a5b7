package timer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amonks/pomo/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	lineWidth  = 80
	bodyIndent = 4
)

// Logger captures structured timer log entries.
type Logger interface {
	Phase(PhaseLog)
	NotifyFailure(NotifyFailureLog)
}

// PhaseLog describes a phase entry.
type PhaseLog struct {
	Phase           Phase
	Minutes         int
	Tick            time.Duration
	CyclesRemaining int
	Pass            int
}

// NotifyFailureLog describes a notification that could not be delivered.
type NotifyFailureLog struct {
	Message string
	Err     error
}

type noopLogger struct{}

func (noopLogger) Phase(PhaseLog)                 {}
func (noopLogger) NotifyFailure(NotifyFailureLog) {}

// ConsoleLoggerOptions configures a ConsoleLogger.
type ConsoleLoggerOptions struct {
	// Verbose logs every phase entry. Notification failures are always logged.
	Verbose bool
	// Styled enables ANSI styling of headers.
	Styled bool
}

// ConsoleLogger writes formatted log output, typically to stderr.
type ConsoleLogger struct {
	writer      io.Writer
	verbose     bool
	headerStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewConsoleLogger builds a logger for interactive output.
func NewConsoleLogger(writer io.Writer, opts ConsoleLoggerOptions) *ConsoleLogger {
	if writer == nil {
		writer = io.Discard
	}
	logger := &ConsoleLogger{
		writer:      writer,
		verbose:     opts.Verbose,
		headerStyle: lipgloss.NewStyle(),
		errorStyle:  lipgloss.NewStyle(),
	}
	if opts.Styled {
		logger.headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
		logger.errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	}
	return logger
}

// Phase logs a phase entry when verbose.
func (logger *ConsoleLogger) Phase(entry PhaseLog) {
	if logger == nil || !logger.verbose {
		return
	}
	label := fmt.Sprintf("Pass %d: %s for %s", entry.Pass, entry.Phase, ui.FormatDurationShort(time.Duration(entry.Minutes)*entry.Tick))
	body := entry.Phase.Message()
	if entry.Phase == PhaseWorking && entry.CyclesRemaining > 0 {
		body = fmt.Sprintf("%s (%d %s left before the long break)", body, entry.CyclesRemaining, pluralCycles(entry.CyclesRemaining))
	}
	logger.writeBlock(logger.headerStyle.Render(label+":"), formatLogBody(body))
}

// NotifyFailure logs a failed notification.
func (logger *ConsoleLogger) NotifyFailure(entry NotifyFailureLog) {
	if logger == nil {
		return
	}
	detail := "-"
	if entry.Err != nil {
		detail = entry.Err.Error()
	}
	logger.writeBlock(
		logger.errorStyle.Render(fmt.Sprintf("Notification %q failed:", entry.Message)),
		formatLogBody(detail),
	)
}

func (logger *ConsoleLogger) writeBlock(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(logger.writer, line)
	}
}

func formatLogBody(body string) string {
	body = strings.TrimRight(body, "\r\n")
	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	wrapped := wordwrap.String(body, lineWidth-bodyIndent)
	prefix := strings.Repeat(" ", bodyIndent)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func pluralCycles(count int) string {
	if count == 1 {
		return "cycle"
	}
	return "cycles"
}
