package window

import (
	"fyne.io/fyne/v2"

	"pomodoro/internal/core/model"
)

// Action is a keyboard command of the timer window.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionReset
	ActionSkip
	ActionFocus
	ActionShortBreak
	ActionLongBreak
	ActionEditTask
	ActionSettings
)

// ActionForKey maps a key to its action. Keys typed into the task entry
// never reach this mapping.
func ActionForKey(name fyne.KeyName) Action {
	switch name {
	case fyne.KeySpace:
		return ActionToggle
	case fyne.KeyR:
		return ActionReset
	case fyne.KeyS:
		return ActionSkip
	case fyne.Key1:
		return ActionFocus
	case fyne.Key2:
		return ActionShortBreak
	case fyne.Key3:
		return ActionLongBreak
	case fyne.KeyT:
		return ActionEditTask
	case fyne.KeyComma:
		return ActionSettings
	default:
		return ActionNone
	}
}

// Mode returns the mode selected by a mode action.
func (action Action) Mode() (model.Mode, bool) {
	switch action {
	case ActionFocus:
		return model.ModeFocus, true
	case ActionShortBreak:
		return model.ModeShortBreak, true
	case ActionLongBreak:
		return model.ModeLongBreak, true
	default:
		return "", false
	}
}
