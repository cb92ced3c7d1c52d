package model

import "fmt"

// Mode is the kind of interval the timer is counting down.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Modes lists every mode in tab order.
var Modes = []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}

// Valid reports whether mode is one of the known modes.
func (mode Mode) Valid() bool {
	switch mode {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

// Label is the heading shown above the countdown.
func (mode Mode) Label() string {
	switch mode {
	case ModeFocus:
		return "Time to Focus"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return string(mode)
	}
}

// DoneMessage is the toast text shown when an interval of mode completes.
func (mode Mode) DoneMessage() string {
	switch mode {
	case ModeFocus:
		return "Focus session complete!"
	case ModeShortBreak:
		return "Break over — back to work!"
	case ModeLongBreak:
		return "Long break done. Ready?"
	default:
		return ""
	}
}

// ParseMode accepts the canonical names plus the short aliases used on the command line.
func ParseMode(value string) (Mode, error) {
	switch value {
	case "focus", "pomodoro", "work":
		return ModeFocus, nil
	case "short_break", "short":
		return ModeShortBreak, nil
	case "long_break", "long":
		return ModeLongBreak, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// NextMode returns the mode that follows a completed interval of mode,
// given the completed focus count after any increment for that interval.
func NextMode(mode Mode, completedFocus int) Mode {
	if mode != ModeFocus {
		return ModeFocus
	}
	if completedFocus > 0 && completedFocus%LongBreakEvery == 0 {
		return ModeLongBreak
	}
	return ModeShortBreak
}
