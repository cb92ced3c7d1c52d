package timekeeper

import (
	"time"

	"pomodoro/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventTick           EventType = "tick"
	EventModeChanged    EventType = "mode_changed"
	EventCompleted      EventType = "completed"
	EventConfigChanged  EventType = "config_changed"
	EventReset          EventType = "reset"
	EventRunningChanged EventType = "running_changed"
	EventTaskChanged    EventType = "task_changed"
)

// Event represents a TimeKeeper update for observers.
//
// Every event carries the full state after the change so a shell can
// re-render from any single event.
type Event struct {
	Type EventType
	State

	// AutoAdvanced is set on EventCompleted when the next interval starts by itself.
	AutoAdvanced bool
	// Config is set on EventConfigChanged.
	Config model.Config
	At     time.Time
}

// Listener receives events synchronously, in the order they were produced.
type Listener func(Event)
