// Package alert plays the completion chime and shows done messages when an
// interval finishes.
package alert

//go:generate mockgen -source=alert.go -destination=mock_alert_test.go -package=alert

import (
	"io"

	"github.com/charmbracelet/log"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

// Title is used for desktop notifications.
const Title = "Pomodoro"

// Chimer produces the audible completion cue.
type Chimer interface {
	Chime() error
}

// Notifier shows a message outside the timer window.
type Notifier interface {
	Notify(title, message string) error
}

// Options configures an Alerter. Every field is optional.
type Options struct {
	Chimer   Chimer
	Notifier Notifier
	// Config returns the active settings at alert time.
	Config func() model.Config
	// Toast receives the done message for in-window display.
	Toast  func(message string)
	Logger *log.Logger
}

// Alerter reacts to completed intervals. Failures never reach the caller.
type Alerter struct {
	options Options
	logger  *log.Logger
}

// New creates an Alerter.
func New(options Options) *Alerter {
	logger := options.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if options.Config == nil {
		options.Config = model.DefaultConfig
	}
	return &Alerter{options: options, logger: logger.WithPrefix("alert")}
}

// Listener adapts the Alerter to a TimeKeeper listener.
func (alerter *Alerter) Listener() timekeeper.Listener {
	return alerter.Handle
}

// Handle alerts on EventCompleted and ignores every other event.
func (alerter *Alerter) Handle(event timekeeper.Event) {
	if event.Type != timekeeper.EventCompleted {
		return
	}
	alerter.Completed(event.Mode)
}

// Completed shows the done message for mode and plays the chime when sound
// is enabled.
func (alerter *Alerter) Completed(mode model.Mode) {
	message := mode.DoneMessage()
	if alerter.options.Toast != nil {
		alerter.options.Toast(message)
	}

	if alerter.options.Config().SoundEnabled && alerter.options.Chimer != nil {
		if err := alerter.options.Chimer.Chime(); err != nil {
			alerter.logger.Debug("chime failed", "err", err)
		}
	}

	if alerter.options.Notifier != nil {
		if err := alerter.options.Notifier.Notify(Title, message); err != nil {
			alerter.logger.Debug("notification failed", "err", err)
		}
	}
}
