// Package config handles loading the pomo config.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/pomo/internal/notify"
	"github.com/amonks/pomo/internal/paths"
	"github.com/amonks/pomo/timer"
)

// Config represents the config.toml file.
type Config struct {
	Timer  Timer  `toml:"timer"`
	Notify Notify `toml:"notify"`
}

// Timer contains the default durations, in minutes.
type Timer struct {
	Work       int `toml:"work"`
	ShortBreak int `toml:"short-break"`
	LongBreak  int `toml:"long-break"`
	// Cycles before a long break. 0 or 1 disable long breaks.
	Cycles int `toml:"cycles"`
	// Live shows the running countdown instead of the configured values.
	Live bool `toml:"live"`
}

// Notify contains notification settings.
type Notify struct {
	Command string `toml:"command"`
	Urgency string `toml:"urgency"`
	AppName string `toml:"app-name"`
	// Strict aborts the timer when a notification cannot be delivered.
	Strict bool `toml:"strict"`
}

// Default returns the built-in configuration.
func Default() *Config {
	defaults := timer.DefaultConfig()
	return &Config{
		Timer: Timer{
			Work:       defaults.WorkMinutes,
			ShortBreak: defaults.ShortBreakMinutes,
			LongBreak:  defaults.LongBreakMinutes,
			Cycles:     defaults.Cycles,
		},
		Notify: Notify{
			Command: notify.DefaultCommand,
			Urgency: notify.DefaultUrgency,
			AppName: notify.DefaultAppName,
		},
	}
}

// TimerConfig converts the timer section into a timer.Config.
func (cfg *Config) TimerConfig() timer.Config {
	return timer.Config{
		WorkMinutes:       cfg.Timer.Work,
		ShortBreakMinutes: cfg.Timer.ShortBreak,
		LongBreakMinutes:  cfg.Timer.LongBreak,
		Cycles:            cfg.Timer.Cycles,
	}
}

// NotifyOptions converts the notify section into notify.Options.
func (cfg *Config) NotifyOptions() notify.Options {
	return notify.Options{
		Command: cfg.Notify.Command,
		Urgency: cfg.Notify.Urgency,
		AppName: cfg.Notify.AppName,
	}
}

// Validate checks every section.
func (cfg *Config) Validate() error {
	return errors.Join(cfg.TimerConfig().Validate(), cfg.validateNotify())
}

// validateNotify checks the notify section. Timer values are checked after
// flags are merged in, since a flag may replace a bad file value.
func (cfg *Config) validateNotify() error {
	urgency := strings.ToLower(strings.TrimSpace(cfg.Notify.Urgency))
	if urgency == "" {
		return nil
	}
	return notify.ValidateUrgency(urgency)
}

// Load loads the config file from the default location.
// Returns the default config if the file does not exist.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return loadConfigFile(path, true)
}

// LoadFile loads the config file at path, which must exist.
func LoadFile(path string) (*Config, error) {
	return loadConfigFile(path, false)
}

func loadConfigFile(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if optional && errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := Default()
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("parse config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validateNotify(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}
