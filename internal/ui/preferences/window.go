package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window handles the settings UI.
type Window struct {
	window     fyne.Window
	onSave     func(model.Config)
	focus      *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	autoCheck  *widget.Check
	soundCheck *widget.Check
	errorLabel *widget.Label
	visible    bool
}

// New creates a settings window. onSave receives a validated config.
func New(app fyne.App, config model.Config, onSave func(model.Config)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		focus:      widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
		autoCheck:  widget.NewCheck("Auto-start next interval", nil),
		soundCheck: widget.NewCheck("Sound alert", nil),
		errorLabel: widget.NewLabel(""),
	}
	prefs.errorLabel.Importance = widget.DangerImportance
	prefs.errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations (minutes)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.spinRow("Focus", prefs.focus),
		prefs.spinRow("Short break", prefs.shortBreak),
		prefs.spinRow("Long break", prefs.longBreak),
		widget.NewSeparator(),
		prefs.autoCheck,
		prefs.soundCheck,
		prefs.errorLabel,
	)

	saveButton := widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", prefs.Hide)
	buttons := container.NewHBox(cancelButton, layout.NewSpacer(), saveButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(prefs.Hide)
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyEscape:
			prefs.Hide()
		case fyne.KeyReturn, fyne.KeyEnter:
			prefs.handleSave()
		}
	})

	prefs.fill(config)
	return prefs
}

// Show refills the form from config and displays the window.
func (prefs *Window) Show(config model.Config) {
	prefs.fill(config)
	prefs.visible = true
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Hide closes the window without saving.
func (prefs *Window) Hide() {
	prefs.visible = false
	prefs.window.Hide()
}

// Visible reports whether the window is open.
func (prefs *Window) Visible() bool {
	return prefs.visible
}

func (prefs *Window) spinRow(label string, entry *widget.Entry) fyne.CanvasObject {
	minus := widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		entry.SetText(Spin(entry.Text, -1))
	})
	plus := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		entry.SetText(Spin(entry.Text, 1))
	})
	entry.OnSubmitted = func(string) { prefs.handleSave() }
	return container.NewBorder(nil, nil, widget.NewLabel(label), container.NewHBox(minus, plus), entry)
}

func (prefs *Window) fill(config model.Config) {
	form := FormFromConfig(config)
	prefs.focus.SetText(form.Focus)
	prefs.shortBreak.SetText(form.ShortBreak)
	prefs.longBreak.SetText(form.LongBreak)
	prefs.autoCheck.SetChecked(form.AutoAdvance)
	prefs.soundCheck.SetChecked(form.SoundEnabled)
	prefs.errorLabel.Hide()
}

func (prefs *Window) handleSave() {
	config, err := Form{
		Focus:        prefs.focus.Text,
		ShortBreak:   prefs.shortBreak.Text,
		LongBreak:    prefs.longBreak.Text,
		AutoAdvance:  prefs.autoCheck.Checked,
		SoundEnabled: prefs.soundCheck.Checked,
	}.Config()
	if err != nil {
		prefs.errorLabel.SetText("⚠️ " + InvalidMessage)
		prefs.errorLabel.Show()
		return
	}

	prefs.Hide()
	if prefs.onSave != nil {
		prefs.onSave(config)
	}
}
