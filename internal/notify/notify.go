// Package notify sends desktop alerts through notify-send.
package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
)

// Defaults match the notify-send invocation pomo has always used.
const (
	DefaultCommand = "notify-send"
	DefaultUrgency = "critical"
	DefaultAppName = "pomo"
)

// Urgency levels accepted by notify-send.
var Urgencies = []string{"low", "normal", "critical"}

// ErrUnavailable is returned when the notification command cannot be found.
var ErrUnavailable = errors.New("notification command unavailable")

// ErrInvalidUrgency is returned for an urgency notify-send does not accept.
var ErrInvalidUrgency = errors.New("invalid urgency")

// Options configures a Sender.
type Options struct {
	// Command defaults to notify-send.
	Command string
	// Urgency defaults to critical.
	Urgency string
	// AppName defaults to pomo.
	AppName string
}

// Sender delivers one-shot desktop notifications.
type Sender struct {
	command string
	urgency string
	appName string
}

// New creates a Sender, filling in defaults for empty options.
func New(opts Options) (*Sender, error) {
	sender := &Sender{
		command: strings.TrimSpace(opts.Command),
		urgency: strings.ToLower(strings.TrimSpace(opts.Urgency)),
		appName: strings.TrimSpace(opts.AppName),
	}
	if sender.command == "" {
		sender.command = DefaultCommand
	}
	if sender.urgency == "" {
		sender.urgency = DefaultUrgency
	}
	if sender.appName == "" {
		sender.appName = DefaultAppName
	}
	if err := ValidateUrgency(sender.urgency); err != nil {
		return nil, err
	}
	return sender, nil
}

// ValidateUrgency checks urgency against the levels notify-send accepts.
func ValidateUrgency(urgency string) error {
	if slices.Contains(Urgencies, urgency) {
		return nil
	}
	return fmt.Errorf("%w %q (valid: %s)", ErrInvalidUrgency, urgency, strings.Join(Urgencies, ", "))
}

// Args returns the arguments passed to the command for message.
func (s *Sender) Args(message string) []string {
	return []string{"-u", s.urgency, "-a", s.appName, message}
}

// Notify runs the notification command and waits for it to exit.
func (s *Sender) Notify(ctx context.Context, message string) error {
	cmd := exec.CommandContext(ctx, s.command, s.Args(message)...)
	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, s.command, err)
	}
	detail := strings.TrimSpace(string(output))
	if detail == "" {
		return fmt.Errorf("run %s: %w", s.command, err)
	}
	return fmt.Errorf("run %s: %w: %s", s.command, err, detail)
}
