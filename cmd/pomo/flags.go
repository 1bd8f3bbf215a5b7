package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/amonks/pomo/internal/config"
	"github.com/amonks/pomo/internal/notify"
	"github.com/amonks/pomo/timer"
	"github.com/spf13/pflag"
)

// flagValues holds the parsed command-line flags.
type flagValues struct {
	work         int
	shortBreak   int
	longBreak    int
	cycles       int
	live         bool
	strictNotify bool
	verbose      bool
	maxPhases    int
	configPath   string
	tick         time.Duration
}

var rootFlags flagValues

// timerFlagAliases maps alternate long names onto the canonical flags.
var timerFlagAliases = map[string]string{
	"work-time": "work",
	"short":     "short-break",
	"long":      "long-break",
}

func init() {
	registerFlags(rootCmd.Flags(), &rootFlags)
}

func registerFlags(flags *pflag.FlagSet, values *flagValues) {
	flags.IntVarP(&values.work, "work", "w", timer.DefaultWorkMinutes, "Work duration in minutes")
	flags.IntVarP(&values.shortBreak, "short-break", "s", timer.DefaultShortBreakMinutes, "Short break duration in minutes")
	flags.IntVarP(&values.longBreak, "long-break", "l", timer.DefaultLongBreakMinutes, "Long break duration in minutes")
	flags.IntVarP(&values.cycles, "cycles", "c", timer.DefaultCycles, "Cycles before the long break (0 or 1 will disable long breaks)")
	flags.BoolVar(&values.live, "live", false, "Show the live countdown instead of the configured durations")
	flags.BoolVar(&values.strictNotify, "strict-notify", false, "Exit when a notification cannot be delivered")
	flags.BoolVar(&values.verbose, "verbose", false, "Log every phase to stderr")
	flags.IntVar(&values.maxPhases, "phases", 0, "Stop after this many phases (0 runs forever)")
	flags.StringVar(&values.configPath, "config", "", "Config file (default ~/.config/pomo/config.toml)")
	flags.DurationVar(&values.tick, "tick", timer.DefaultTick, "Tick interval")
	_ = flags.MarkHidden("tick")

	setFlagAliases(flags, timerFlagAliases)
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}

// runSettings is the merged result of config file and flags.
type runSettings struct {
	timer     timer.Config
	notify    notify.Options
	live      bool
	strict    bool
	verbose   bool
	maxPhases int
	tick      time.Duration
}

func loadConfig(flags *pflag.FlagSet, path string) (*config.Config, error) {
	if flags.Changed("config") {
		return config.LoadFile(path)
	}
	return config.Load()
}

// resolveSettings prefers flags the user set over config file values.
func resolveSettings(flags *pflag.FlagSet, values flagValues, cfg *config.Config) runSettings {
	if cfg == nil {
		cfg = config.Default()
	}

	settings := runSettings{
		timer:     cfg.TimerConfig(),
		notify:    cfg.NotifyOptions(),
		live:      cfg.Timer.Live,
		strict:    cfg.Notify.Strict,
		verbose:   values.verbose,
		maxPhases: values.maxPhases,
		tick:      values.tick,
	}
	if flags.Changed("work") {
		settings.timer.WorkMinutes = values.work
	}
	if flags.Changed("short-break") {
		settings.timer.ShortBreakMinutes = values.shortBreak
	}
	if flags.Changed("long-break") {
		settings.timer.LongBreakMinutes = values.longBreak
	}
	if flags.Changed("cycles") {
		settings.timer.Cycles = values.cycles
	}
	if flags.Changed("live") {
		settings.live = values.live
	}
	if flags.Changed("strict-notify") {
		settings.strict = values.strictNotify
	}
	return settings
}

// validate checks the merged settings before the timer starts.
func (settings runSettings) validate() error {
	var errs []error
	if err := settings.timer.Validate(); err != nil {
		errs = append(errs, err)
	}
	if settings.maxPhases < 0 {
		errs = append(errs, fmt.Errorf("phases must not be negative, got %d", settings.maxPhases))
	}
	return errors.Join(errs...)
}
