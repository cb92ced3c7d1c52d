package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnSkip        func()
	OnSwitch      func(model.Mode)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	modeItems  map[model.Mode]*fyne.MenuItem
	menu       *fyne.Menu
	status     string
}

// New creates a tray manager with the provided callbacks. app may be nil,
// in which case the menu is built but never installed.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		modeItems: make(map[model.Mode]*fyne.MenuItem, len(model.Modes)),
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() { call(manager.callbacks.OnToggle) })

	modes := fyne.NewMenuItem("Mode", nil)
	children := make([]*fyne.MenuItem, 0, len(model.Modes))
	for index, mode := range model.Modes {
		mode := mode
		item := fyne.NewMenuItem(fmt.Sprintf("%d  %s", index+1, mode.Label()), func() {
			if manager.callbacks.OnSwitch != nil {
				manager.callbacks.OnSwitch(mode)
			}
		})
		manager.modeItems[mode] = item
		children = append(children, item)
	}
	modes.ChildMenu = fyne.NewMenu("", children...)

	manager.menu = fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() { call(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) }),
		fyne.NewMenuItem("Skip", func() { call(manager.callbacks.OnSkip) }),
		modes,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() { call(manager.callbacks.OnPreferences) }),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	)
	if app != nil {
		app.SetSystemTrayMenu(manager.menu)
	}

	return manager
}

// SetState updates the status line, the start/pause label and the active mode.
func (manager *Manager) SetState(state timekeeper.State) {
	manager.status = StatusText(state)
	manager.statusItem.Label = "Status: " + manager.status
	if state.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	for mode, item := range manager.modeItems {
		item.Checked = mode == state.Mode
	}
	manager.refreshMenu()
}

// Status returns the current status text.
func (manager *Manager) Status() string {
	return manager.status
}

// ToggleLabel returns the label of the start/pause item.
func (manager *Manager) ToggleLabel() string {
	return manager.toggleItem.Label
}

// StatusText summarises state for the tray and the window title.
func StatusText(state timekeeper.State) string {
	status := fmt.Sprintf("%s %s", state.Mode.Label(), state.Clock())
	if !state.Running {
		status += " (paused)"
	}
	return status
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
