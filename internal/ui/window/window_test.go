package window

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/animation"
)

type recordingController struct {
	tasks []string
}

func (c *recordingController) Toggle()                     {}
func (c *recordingController) Reset()                      {}
func (c *recordingController) Skip()                       {}
func (c *recordingController) SwitchMode(model.Mode) error { return nil }
func (c *recordingController) SetTask(task string)         { c.tasks = append(c.tasks, task) }

func newTestWindow(t *testing.T) (*Window, *recordingController, *animation.Engine) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	controller := &recordingController{}
	engine := animation.New(animation.Config{FrameDuration: 5 * time.Millisecond, PulseFrames: []float64{1, 0.6}})
	timer := New(app, controller, engine)
	t.Cleanup(engine.Stop)
	return timer, controller, engine
}

func TestActionForKey(t *testing.T) {
	t.Parallel()

	cases := map[fyne.KeyName]Action{
		fyne.KeySpace: ActionToggle,
		fyne.KeyR:     ActionReset,
		fyne.KeyS:     ActionSkip,
		fyne.Key1:     ActionFocus,
		fyne.Key2:     ActionShortBreak,
		fyne.Key3:     ActionLongBreak,
		fyne.KeyT:     ActionEditTask,
		fyne.KeyComma: ActionSettings,
		fyne.KeyX:     ActionNone,
	}
	for key, want := range cases {
		assert.Equal(t, want, ActionForKey(key), "key %s", key)
	}
}

func TestActionMode(t *testing.T) {
	t.Parallel()

	mode, ok := ActionFocus.Mode()
	assert.True(t, ok)
	assert.Equal(t, model.ModeFocus, mode)

	mode, ok = ActionLongBreak.Mode()
	assert.True(t, ok)
	assert.Equal(t, model.ModeLongBreak, mode)

	_, ok = ActionReset.Mode()
	assert.False(t, ok)
}

func TestModeColorScalesAlpha(t *testing.T) {
	t.Parallel()

	_, _, _, full := modeColor(model.ModeFocus, 1).RGBA()
	_, _, _, dim := modeColor(model.ModeFocus, 0.5).RGBA()
	assert.Greater(t, full, dim)
}

func TestTaskCommitsOnFocusLoss(t *testing.T) {
	timer, controller, _ := newTestWindow(t)
	canvas := timer.Window().Canvas()

	canvas.Focus(timer.taskEntry)
	timer.taskEntry.SetText("  write report ")
	canvas.Unfocus()
	assert.Equal(t, []string{"write report"}, controller.tasks)

	canvas.Focus(timer.taskEntry)
	canvas.Unfocus()
	assert.Equal(t, []string{"write report"}, controller.tasks, "unchanged text is not resent")

	timer.taskEntry.OnSubmitted("review notes")
	assert.Equal(t, []string{"write report", "review notes"}, controller.tasks)
}

func TestCloseStopsPulse(t *testing.T) {
	timer, _, engine := newTestWindow(t)

	timer.render(timekeeper.State{Mode: model.ModeFocus, Remaining: time.Minute, Total: time.Minute, Running: true})
	require.True(t, engine.Pulsing())

	timer.Close()
	assert.False(t, engine.Pulsing())
}
