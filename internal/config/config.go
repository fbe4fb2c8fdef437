// Package config provides TOML-based configuration for hooksdemo.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	Timer   TimerConfig   `toml:"timer"`
	Profile ProfileConfig `toml:"profile"`
	Input   InputConfig   `toml:"input"`
	Log     LogConfig     `toml:"log"`
}

// TimerConfig controls the periodic ticker of the timer widget.
type TimerConfig struct {
	Interval  Duration `toml:"interval"`
	Milestone int      `toml:"milestone"` // emit a diagnostic every N ticks
}

// ProfileConfig is the user record set on login.
type ProfileConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// InputConfig configures the focus/input widget.
type InputConfig struct {
	Placeholder string `toml:"placeholder"`
	Name        string `toml:"name"` // text written by the "add name" action
	CharLimit   int    `toml:"char_limit"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	File  string `toml:"file"`  // empty discards logs
	Level string `toml:"level"` // debug, info, warn, error
}

// Duration wraps time.Duration with TOML-friendly string parsing.
// Supports standard Go duration strings: "500ms", "1s", "2m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Timer.Interval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("timer.interval must be positive, got %s", c.Timer.Interval.Duration))
	}
	if c.Timer.Milestone <= 0 {
		errs = append(errs, fmt.Errorf("timer.milestone must be positive, got %d", c.Timer.Milestone))
	}
	if c.Input.CharLimit < 0 {
		errs = append(errs, fmt.Errorf("input.char_limit must not be negative, got %d", c.Input.CharLimit))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", name)
	}
}
