// Package main implements the pomo CLI tool.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/amonks/pomo/internal/notify"
	"github.com/amonks/pomo/internal/screen"
	"github.com/amonks/pomo/internal/ui"
	"github.com/amonks/pomo/timer"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomodoro timer, everything is in minutes",
	Long: `Pomodoro timer, everything is in minutes.

pomo alternates work and short breaks, with a long break every --cycles
work sessions, and sends a desktop notification through notify-send at the
start of each phase. It runs until interrupted.

Defaults can be set in ~/.config/pomo/config.toml; flags override them.`,
	Args: cobra.NoArgs,
	RunE: runPomo,
}

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (err exitError) Error() string {
	return "interrupted"
}

func (err exitError) ExitCode() int {
	return err.code
}

func runPomo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags(), rootFlags.configPath)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}
	settings := resolveSettings(cmd.Flags(), rootFlags, cfg)
	if err := settings.validate(); err != nil {
		return err
	}
	sender, err := notify.New(settings.notify)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	stderr := cmd.ErrOrStderr()
	logger := timer.NewConsoleLogger(stderr, timer.ConsoleLoggerOptions{
		Verbose: settings.verbose,
		Styled:  styleEnabled(stderr),
	})
	pomo, err := timer.New(settings.timer, timer.Options{
		Display:      screen.New(cmd.OutOrStdout(), screen.Options{Live: settings.live}),
		Notifier:     sender,
		Tick:         settings.tick,
		StrictNotify: settings.strict,
		MaxPhases:    settings.maxPhases,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := interruptContext(cmd.Context())
	defer stop()

	err = pomo.Run(ctx)
	if err != nil && errors.Is(err, context.Canceled) && ctx.Err() != nil {
		cmd.SilenceErrors = true
		return exitError{code: 130}
	}
	return err
}

// interruptContext cancels the returned context on SIGINT or SIGTERM.
func interruptContext(parent context.Context) (context.Context, func()) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-interrupts:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(interrupts)
		cancel()
	}
}

func styleEnabled(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return ui.StyleEnabled(file)
}
