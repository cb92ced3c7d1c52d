package timekeeper

import (
	"fmt"
	"strings"
	"time"

	"pomodoro/internal/core/model"
)

// State is the session state owned by a TimeKeeper.
type State struct {
	Mode           model.Mode
	Remaining      time.Duration
	Total          time.Duration
	Running        bool
	CompletedFocus int
	Task           string

	// Version is the sequence number of the last event produced for this
	// state. A snapshot and an event with the same Version agree.
	Version uint64
}

// NewState returns the idle state for a fresh focus interval.
func NewState(config model.Config) State {
	total := model.DurationFor(model.ModeFocus, config)
	return State{
		Mode:      model.ModeFocus,
		Remaining: total,
		Total:     total,
	}
}

// Progress returns the remaining fraction of the interval in [0, 1].
func (state State) Progress() float64 {
	if state.Total <= 0 {
		return 1
	}
	ratio := float64(state.Remaining) / float64(state.Total)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Clock formats Remaining as MM:SS. Minutes are not wrapped at 60.
func (state State) Clock() string {
	seconds := int(state.Remaining / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Dots returns how many of the LongBreakEvery session markers are filled.
func (state State) Dots() int {
	return state.CompletedFocus % model.LongBreakEvery
}

// Command identifies an input to Reduce.
type Command int

const (
	CommandStart Command = iota
	CommandPause
	CommandReset
	CommandSkip
	CommandSwitch
	CommandTick
	CommandSetTask
	CommandConfigure
	CommandAdvance
)

// Input is a single command for Reduce.
type Input struct {
	Command Command
	// Mode is the target of CommandSwitch and CommandAdvance.
	Mode model.Mode
	// Task is the text for CommandSetTask.
	Task string
	// Config is the new snapshot for CommandConfigure; it must already be valid.
	Config model.Config
	// Start asks CommandAdvance to begin the next interval.
	Start bool
}

// Effect tells the owner what to do with the tick source.
type Effect int

const (
	EffectNone Effect = iota
	EffectStartTicker
	EffectStopTicker
)

// Advance is a completion transition that has not been applied yet.
type Advance struct {
	Mode  model.Mode
	Start bool
}

// Result is the outcome of Reduce.
type Result struct {
	State  State
	Config model.Config
	Events []Event
	Effect Effect
	// Advance is set when an interval completed naturally.
	Advance *Advance
}

// Reduce computes the next state and the events it emits. It has no side
// effects: the caller owns the tick source and the timing of Advance.
func Reduce(state State, config model.Config, input Input, now time.Time) Result {
	result := Result{State: state, Config: config}

	switch input.Command {
	case CommandStart:
		if state.Running {
			return result
		}
		if state.Remaining <= 0 {
			state.Total = model.DurationFor(state.Mode, config)
			state.Remaining = state.Total
		}
		state.Running = true
		result.State = state
		result.Effect = EffectStartTicker
		result.Events = append(result.Events, Event{Type: EventRunningChanged, State: state, At: now})

	case CommandPause:
		if !state.Running {
			return result
		}
		state.Running = false
		result.State = state
		result.Effect = EffectStopTicker
		result.Events = append(result.Events, Event{Type: EventRunningChanged, State: state, At: now})

	case CommandReset:
		wasRunning := state.Running
		state.Running = false
		state.Total = model.DurationFor(state.Mode, config)
		state.Remaining = state.Total
		result.State = state
		result.Effect = EffectStopTicker
		if wasRunning {
			result.Events = append(result.Events, Event{Type: EventRunningChanged, State: state, At: now})
		}
		result.Events = append(result.Events, Event{Type: EventReset, State: state, At: now})

	case CommandSwitch:
		result = switchTo(result, input.Mode, now)

	case CommandSkip:
		next := model.NextMode(state.Mode, state.CompletedFocus+focusIncrement(state.Mode))
		result = switchTo(result, next, now)

	case CommandAdvance:
		result = switchTo(result, input.Mode, now)
		if input.Start {
			started := Reduce(result.State, config, Input{Command: CommandStart}, now)
			result.State = started.State
			result.Effect = started.Effect
			result.Events = append(result.Events, started.Events...)
		}

	case CommandTick:
		result = tick(result, now)

	case CommandSetTask:
		state.Task = strings.TrimSpace(input.Task)
		result.State = state
		result.Events = append(result.Events, Event{Type: EventTaskChanged, State: state, At: now})

	case CommandConfigure:
		result.Config = input.Config
		result.Events = append(result.Events, Event{Type: EventConfigChanged, State: state, Config: input.Config, At: now})
	}

	return result
}

func switchTo(result Result, mode model.Mode, now time.Time) Result {
	state := result.State
	wasRunning := state.Running
	state.Running = false
	state.Mode = mode
	state.Total = model.DurationFor(mode, result.Config)
	state.Remaining = state.Total
	result.State = state
	result.Effect = EffectStopTicker
	if wasRunning {
		result.Events = append(result.Events, Event{Type: EventRunningChanged, State: state, At: now})
	}
	result.Events = append(result.Events, Event{Type: EventModeChanged, State: state, At: now})
	return result
}

func tick(result Result, now time.Time) Result {
	state := result.State
	if !state.Running {
		return result
	}

	state.Remaining -= time.Second
	if state.Remaining < 0 {
		state.Remaining = 0
	}
	result.State = state
	result.Events = append(result.Events, Event{Type: EventTick, State: state, At: now})
	if state.Remaining > 0 {
		return result
	}

	completed := state.Mode
	state.Running = false
	state.CompletedFocus += focusIncrement(completed)
	result.State = state
	result.Effect = EffectStopTicker
	result.Events = append(result.Events, Event{
		Type:         EventCompleted,
		State:        state,
		AutoAdvanced: result.Config.AutoAdvance,
		At:           now,
	})
	result.Advance = &Advance{
		Mode:  model.NextMode(completed, state.CompletedFocus),
		Start: result.Config.AutoAdvance,
	}
	return result
}

func focusIncrement(mode model.Mode) int {
	if mode == model.ModeFocus {
		return 1
	}
	return 0
}
