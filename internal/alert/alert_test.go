package alert

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

func soundConfig(enabled bool) func() model.Config {
	return func() model.Config {
		config := model.DefaultConfig()
		config.SoundEnabled = enabled
		return config
	}
}

func TestBellWritesControlCharacter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	bell := NewBell(&out)

	require.NoError(t, bell.Chime())
	require.NoError(t, bell.Chime())
	assert.Equal(t, BellSequence+BellSequence, out.String())
}

func TestCompletedChimesAndToastsWhenSoundEnabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	chimer := NewMockChimer(ctrl)
	chimer.EXPECT().Chime().Return(nil).Times(1)

	var toasts []string
	alerter := New(Options{
		Chimer: chimer,
		Config: soundConfig(true),
		Toast:  func(message string) { toasts = append(toasts, message) },
	})

	alerter.Completed(model.ModeFocus)
	assert.Equal(t, []string{"Focus session complete!"}, toasts)
}

func TestCompletedStaysSilentWhenSoundDisabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	chimer := NewMockChimer(ctrl)
	chimer.EXPECT().Chime().Times(0)

	var toasts []string
	alerter := New(Options{
		Chimer: chimer,
		Config: soundConfig(false),
		Toast:  func(message string) { toasts = append(toasts, message) },
	})

	alerter.Completed(model.ModeLongBreak)
	assert.Equal(t, []string{"Long break done. Ready?"}, toasts)
}

func TestChimeAndNotifyFailuresAreSuppressed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	chimer := NewMockChimer(ctrl)
	notifier := NewMockNotifier(ctrl)
	chimer.EXPECT().Chime().Return(errors.New("no audio device"))
	notifier.EXPECT().Notify(Title, "Break over — back to work!").Return(errors.New("dbus unavailable"))

	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	alerter := New(Options{
		Chimer:   chimer,
		Notifier: notifier,
		Config:   soundConfig(true),
		Logger:   logger,
	})

	assert.NotPanics(t, func() { alerter.Completed(model.ModeShortBreak) })
	assert.Contains(t, logs.String(), "no audio device")
	assert.Contains(t, logs.String(), "dbus unavailable")
}

func TestHandleIgnoresNonCompletionEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	chimer := NewMockChimer(ctrl)
	chimer.EXPECT().Chime().Times(0)

	alerter := New(Options{Chimer: chimer, Config: soundConfig(true)})
	for _, eventType := range []timekeeper.EventType{
		timekeeper.EventTick,
		timekeeper.EventModeChanged,
		timekeeper.EventReset,
		timekeeper.EventConfigChanged,
	} {
		alerter.Handle(timekeeper.Event{Type: eventType})
	}
}

func TestListenerAlertsOnceForNaturalCompletion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	chimer := NewMockChimer(ctrl)
	chimer.EXPECT().Chime().Return(nil).Times(1)

	ticks := timekeeper.NewManualTicker()
	keeper, err := timekeeper.New(model.Config{
		FocusMinutes:      1,
		ShortBreakMinutes: 1,
		LongBreakMinutes:  1,
		SoundEnabled:      true,
	}, timekeeper.Options{TickSource: ticks, Now: func() time.Time { return time.Unix(0, 0) }})
	require.NoError(t, err)
	t.Cleanup(keeper.Close)

	alerter := New(Options{Chimer: chimer, Config: keeper.Config})
	keeper.AddListener(alerter.Listener())

	keeper.Skip()
	require.NoError(t, keeper.SwitchMode(model.ModeFocus))
	keeper.Start()
	ticks.FireN(60)

	assert.Equal(t, model.ModeShortBreak, keeper.Snapshot().Mode)
}
