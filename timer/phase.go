package timer

// Phase identifies which interval the timer is counting down.
type Phase int

const (
	PhaseWorking Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

// Notification messages sent when a phase is entered.
const (
	MessageStartWorking = "start working"
	MessageShortBreak   = "take a short break"
	MessageLongBreak    = "take a long break"
)

// String returns a human-readable phase name.
func (phase Phase) String() string {
	switch phase {
	case PhaseWorking:
		return "working"
	case PhaseShortBreak:
		return "short break"
	case PhaseLongBreak:
		return "long break"
	default:
		return "unknown"
	}
}

// Message returns the notification text sent on entry to the phase.
func (phase Phase) Message() string {
	switch phase {
	case PhaseWorking:
		return MessageStartWorking
	case PhaseShortBreak:
		return MessageShortBreak
	case PhaseLongBreak:
		return MessageLongBreak
	default:
		return ""
	}
}

// Minutes returns the configured duration of the phase.
func (phase Phase) Minutes(cfg Config) int {
	switch phase {
	case PhaseWorking:
		return cfg.WorkMinutes
	case PhaseShortBreak:
		return cfg.ShortBreakMinutes
	case PhaseLongBreak:
		return cfg.LongBreakMinutes
	default:
		return 0
	}
}
