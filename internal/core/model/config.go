package model

import "time"

// Default durations and flags used when no settings are persisted.
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultAutoAdvance       = false
	DefaultSoundEnabled      = true
)

// Bounds of a duration field, in minutes. MaxMinutes is one day.
const (
	MinMinutes = 1
	MaxMinutes = 24 * 60
)

// LongBreakEvery is the number of completed focus intervals between long breaks.
const LongBreakEvery = 4

// Config contains the user-editable timer settings. It is a value type;
// the engine swaps whole snapshots and never mutates one in place.
type Config struct {
	FocusMinutes      int  `yaml:"focus_minutes" toml:"focus_minutes" json:"focus_minutes"`
	ShortBreakMinutes int  `yaml:"short_break_minutes" toml:"short_break_minutes" json:"short_break_minutes"`
	LongBreakMinutes  int  `yaml:"long_break_minutes" toml:"long_break_minutes" json:"long_break_minutes"`
	AutoAdvance       bool `yaml:"auto_advance" toml:"auto_advance" json:"auto_advance"`
	SoundEnabled      bool `yaml:"sound_enabled" toml:"sound_enabled" json:"sound_enabled"`
}

// DefaultConfig returns the stock 25/5/15 configuration.
func DefaultConfig() Config {
	return Config{
		FocusMinutes:      DefaultFocusMinutes,
		ShortBreakMinutes: DefaultShortBreakMinutes,
		LongBreakMinutes:  DefaultLongBreakMinutes,
		AutoAdvance:       DefaultAutoAdvance,
		SoundEnabled:      DefaultSoundEnabled,
	}
}

// Validate reports the first duration field outside [MinMinutes, MaxMinutes].
func (config Config) Validate() error {
	if !ValidMinutes(config.FocusMinutes) {
		return &InvalidConfigError{Field: "focus_minutes", Value: config.FocusMinutes}
	}
	if !ValidMinutes(config.ShortBreakMinutes) {
		return &InvalidConfigError{Field: "short_break_minutes", Value: config.ShortBreakMinutes}
	}
	if !ValidMinutes(config.LongBreakMinutes) {
		return &InvalidConfigError{Field: "long_break_minutes", Value: config.LongBreakMinutes}
	}
	return nil
}

// ValidMinutes reports whether minutes is an accepted duration field value.
func ValidMinutes(minutes int) bool {
	return minutes >= MinMinutes && minutes <= MaxMinutes
}

// DurationFor returns the interval length of mode under config.
// Unknown modes fall back to the focus duration.
func DurationFor(mode Mode, config Config) time.Duration {
	switch mode {
	case ModeShortBreak:
		return time.Duration(config.ShortBreakMinutes) * time.Minute
	case ModeLongBreak:
		return time.Duration(config.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(config.FocusMinutes) * time.Minute
	}
}
