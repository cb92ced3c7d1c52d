package window

import (
	"context"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/animation"
)

// Controller is the subset of the session engine the window drives.
type Controller interface {
	Toggle()
	Reset()
	Skip()
	SwitchMode(model.Mode) error
	SetTask(string)
}

// Window is the main timer window.
type Window struct {
	app        fyne.App
	window     fyne.Window
	controller Controller
	engine     *animation.Engine
	onSettings func()

	modeButtons  map[model.Mode]*widget.Button
	modeLabel    *canvas.Text
	countdown    *canvas.Text
	progress     *widget.ProgressBar
	toggleButton *widget.Button
	taskEntry    *taskEntry
	taskDisplay  *widget.Label
	dots         []*canvas.Circle
	toast        *widget.Label

	state         timekeeper.State
	committedTask string
}

const title = "Pomodoro"

// New creates the timer window for controller.
func New(app fyne.App, controller Controller, engine *animation.Engine) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timer := &Window{
		app:         app,
		window:      window,
		controller:  controller,
		engine:      engine,
		modeButtons: make(map[model.Mode]*widget.Button, len(model.Modes)),
	}

	tabs := container.NewGridWithColumns(len(model.Modes))
	for _, mode := range model.Modes {
		mode := mode
		button := widget.NewButton(mode.Label(), func() {
			_ = timer.controller.SwitchMode(mode)
		})
		timer.modeButtons[mode] = button
		tabs.Add(button)
	}

	timer.modeLabel = canvas.NewText(model.ModeFocus.Label(), theme.Color(theme.ColorNameForeground))
	timer.modeLabel.Alignment = fyne.TextAlignCenter
	timer.modeLabel.TextSize = 16

	timer.countdown = canvas.NewText("25:00", modeColor(model.ModeFocus, 1))
	timer.countdown.Alignment = fyne.TextAlignCenter
	timer.countdown.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timer.countdown.TextSize = 64

	timer.progress = widget.NewProgressBar()
	timer.progress.TextFormatter = func() string { return "" }
	timer.progress.SetValue(1)

	timer.toggleButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), controller.Toggle)
	timer.toggleButton.Importance = widget.HighImportance
	resetButton := widget.NewButtonWithIcon("", theme.MediaReplayIcon(), controller.Reset)
	skipButton := widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), controller.Skip)
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), timer.openSettings)
	controls := container.NewHBox(layout.NewSpacer(), resetButton, timer.toggleButton, skipButton, settingsButton, layout.NewSpacer())

	timer.taskEntry = newTaskEntry(timer.commitTask)
	timer.taskEntry.SetPlaceHolder("What are you working on?")
	timer.taskEntry.OnSubmitted = func(text string) {
		timer.commitTask(text)
		window.Canvas().Unfocus()
	}
	timer.taskDisplay = widget.NewLabel("")
	timer.taskDisplay.Alignment = fyne.TextAlignCenter
	timer.taskDisplay.Hide()

	dotsRow := container.NewHBox(layout.NewSpacer())
	for i := 0; i < model.LongBreakEvery; i++ {
		dot := canvas.NewCircle(dotColor(false))
		dot.Resize(fyne.NewSize(10, 10))
		timer.dots = append(timer.dots, dot)
		dotsRow.Add(container.NewGridWrap(fyne.NewSize(12, 12), dot))
	}
	dotsRow.Add(layout.NewSpacer())

	timer.toast = widget.NewLabel("")
	timer.toast.Alignment = fyne.TextAlignCenter
	timer.toast.Hide()

	content := container.NewVBox(
		tabs,
		timer.modeLabel,
		timer.countdown,
		timer.progress,
		controls,
		dotsRow,
		timer.taskEntry,
		timer.taskDisplay,
		timer.toast,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(380, 420))
	window.Canvas().SetOnTypedKey(timer.handleKey)

	return timer
}

// SetOnSettings sets the handler of the settings button and shortcut.
func (timer *Window) SetOnSettings(handler func()) {
	timer.onSettings = handler
}

// Window returns the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// Show displays and focuses the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// HandleEvent renders an engine event. It is safe to call from any goroutine.
func (timer *Window) HandleEvent(event timekeeper.Event) {
	state := event.State
	fyne.Do(func() {
		timer.render(state)
	})
}

// Toast shows message below the timer and hides it after a delay. It is
// safe to call from any goroutine.
func (timer *Window) Toast(message string) {
	timer.engine.ShowToast(context.Background(), message,
		func(text string) {
			fyne.Do(func() {
				timer.toast.SetText(text)
				timer.toast.Show()
			})
		},
		func() {
			fyne.Do(timer.toast.Hide)
		},
	)
}

// Close stops animations and closes the window.
func (timer *Window) Close() {
	timer.engine.Stop()
	timer.window.Close()
}

// commitTask hands text to the controller unless it is already the task.
func (timer *Window) commitTask(text string) {
	task := strings.TrimSpace(text)
	if task == timer.committedTask {
		return
	}
	timer.committedTask = task
	timer.controller.SetTask(task)
}

func (timer *Window) render(state timekeeper.State) {
	modeChanged := state.Mode != timer.state.Mode
	timer.state = state

	timer.window.SetTitle(state.Clock() + " — " + title)
	timer.modeLabel.Text = state.Mode.Label()
	timer.modeLabel.Refresh()

	timer.countdown.Text = state.Clock()
	if modeChanged || !state.Running {
		timer.countdown.Color = modeColor(state.Mode, 1)
	}
	timer.countdown.Refresh()
	timer.progress.SetValue(state.Progress())

	for mode, button := range timer.modeButtons {
		if mode == state.Mode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}

	if state.Running {
		timer.toggleButton.SetText("Pause")
		timer.toggleButton.SetIcon(theme.MediaPauseIcon())
		timer.engine.StartPulse(context.Background(), timer.pulse)
	} else {
		timer.engine.StopPulse()
		timer.toggleButton.SetText("Start")
		timer.toggleButton.SetIcon(theme.MediaPlayIcon())
	}

	filled := state.Dots()
	for index, dot := range timer.dots {
		dot.FillColor = dotColor(index < filled)
		dot.Refresh()
	}

	timer.committedTask = state.Task
	if strings.TrimSpace(state.Task) == "" {
		timer.taskDisplay.Hide()
	} else {
		timer.taskDisplay.SetText("📌 " + state.Task)
		timer.taskDisplay.Show()
	}
}

// taskEntry commits its text when it loses focus as well as on Enter.
type taskEntry struct {
	widget.Entry
	onBlur func(string)
}

func newTaskEntry(onBlur func(string)) *taskEntry {
	entry := &taskEntry{onBlur: onBlur}
	entry.ExtendBaseWidget(entry)
	return entry
}

// FocusLost implements fyne.Focusable.
func (entry *taskEntry) FocusLost() {
	entry.Entry.FocusLost()
	if entry.onBlur != nil {
		entry.onBlur(entry.Text)
	}
}

func (timer *Window) pulse(level float64) {
	fyne.Do(func() {
		if !timer.state.Running {
			return
		}
		timer.countdown.Color = modeColor(timer.state.Mode, level)
		timer.countdown.Refresh()
	})
}

func (timer *Window) handleKey(event *fyne.KeyEvent) {
	action := ActionForKey(event.Name)
	if mode, ok := action.Mode(); ok {
		_ = timer.controller.SwitchMode(mode)
		return
	}
	switch action {
	case ActionToggle:
		timer.controller.Toggle()
	case ActionReset:
		timer.controller.Reset()
	case ActionSkip:
		timer.controller.Skip()
	case ActionEditTask:
		timer.window.Canvas().Focus(timer.taskEntry)
	case ActionSettings:
		timer.openSettings()
	}
}

func (timer *Window) openSettings() {
	if timer.onSettings != nil {
		timer.onSettings()
	}
}

func modeColor(mode model.Mode, level float64) color.Color {
	alpha := uint8(255 * level)
	switch mode {
	case model.ModeShortBreak:
		return color.NRGBA{R: 56, G: 178, B: 152, A: alpha}
	case model.ModeLongBreak:
		return color.NRGBA{R: 86, G: 132, B: 220, A: alpha}
	default:
		return color.NRGBA{R: 232, G: 84, B: 72, A: alpha}
	}
}

func dotColor(done bool) color.Color {
	if done {
		return color.NRGBA{R: 232, G: 84, B: 72, A: 255}
	}
	return color.NRGBA{R: 160, G: 160, B: 160, A: 90}
}
