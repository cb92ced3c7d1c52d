// Package tui is the terminal shell of the timer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

const (
	defaultToastDuration = 3200 * time.Millisecond
	maxProgressWidth     = 48
)

// Controller is the subset of the session engine the terminal shell drives.
type Controller interface {
	Toggle()
	Reset()
	Skip()
	SwitchMode(model.Mode) error
	SetTask(string)
	Snapshot() timekeeper.State
	Config() model.Config
}

// EventMsg carries an engine event into the program.
type EventMsg timekeeper.Event

// ToastMsg shows a transient message under the timer.
type ToastMsg struct {
	Text string
}

type toastExpiredMsg struct {
	id int
}

// Options configures the terminal shell.
type Options struct {
	ToastDuration time.Duration
}

// Model is the bubbletea model of the timer screen.
type Model struct {
	controller    Controller
	state         timekeeper.State
	config        model.Config
	keys          keyMap
	help          help.Model
	progress      progress.Model
	taskInput     textinput.Model
	editing       bool
	toast         string
	toastID       int
	toastDuration time.Duration
	width         int
}

// New creates the timer screen for controller.
func New(controller Controller, options Options) Model {
	if options.ToastDuration <= 0 {
		options.ToastDuration = defaultToastDuration
	}

	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 120
	input.Width = maxProgressWidth

	bar := progress.New(progress.WithSolidFill(string(modeColor(model.ModeFocus))), progress.WithoutPercentage())
	bar.Width = maxProgressWidth

	return Model{
		controller:    controller,
		state:         controller.Snapshot(),
		config:        controller.Config(),
		keys:          defaultKeyMap(),
		help:          help.New(),
		progress:      bar,
		taskInput:     input,
		toastDuration: options.ToastDuration,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(maxProgressWidth, max(10, msg.Width-8))
		return m, nil

	case EventMsg:
		m.applyEvent(timekeeper.Event(msg))
		return m, nil

	case ToastMsg:
		return m.showToast(msg.Text)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateTaskInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) applyEvent(event timekeeper.Event) {
	if event.Type == timekeeper.EventConfigChanged {
		m.config = event.Config
	}
	// Events queued before a command the model already synced are stale.
	if event.Version < m.state.Version {
		return
	}
	if event.Mode != m.state.Mode {
		m.progress.FullColor = string(modeColor(event.Mode))
	}
	m.state = event.State
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
	case key.Matches(msg, m.keys.Skip):
		m.controller.Skip()
	case key.Matches(msg, m.keys.Focus):
		_ = m.controller.SwitchMode(model.ModeFocus)
	case key.Matches(msg, m.keys.ShortBreak):
		_ = m.controller.SwitchMode(model.ModeShortBreak)
	case key.Matches(msg, m.keys.LongBreak):
		_ = m.controller.SwitchMode(model.ModeLongBreak)
	case key.Matches(msg, m.keys.Task):
		m.editing = true
		m.taskInput.SetValue(m.state.Task)
		m.taskInput.CursorEnd()
		return m, m.taskInput.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}

	m.syncState()
	return m, nil
}

func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.taskInput.Blur()
		m.controller.SetTask(m.taskInput.Value())
		m.syncState()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.taskInput.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m Model) showToast(text string) (tea.Model, tea.Cmd) {
	m.toastID++
	m.toast = text
	id := m.toastID
	return m, tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// syncState reads the engine directly so the view does not wait for the
// event that the command produced.
func (m *Model) syncState() {
	state := m.controller.Snapshot()
	if state.Mode != m.state.Mode {
		m.progress.FullColor = string(modeColor(state.Mode))
	}
	m.state = state
}

// View implements tea.Model.
func (m Model) View() string {
	styles := themeFor(m.state.Mode)

	tabs := make([]string, 0, len(model.Modes))
	for _, mode := range model.Modes {
		style := styles.Tab
		if mode == m.state.Mode {
			style = styles.ActiveTab
		}
		tabs = append(tabs, style.Render(mode.Label()))
	}

	status := "paused"
	if m.state.Running {
		status = "running"
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		styles.Label.Render(m.state.Mode.Label()) + styles.Dim.Render(" · "+status),
		styles.Clock.Render(m.state.Clock()),
		m.progress.ViewAs(m.state.Progress()),
		"",
		m.dotsView(styles),
	}

	if m.editing {
		lines = append(lines, "", m.taskInput.View())
	} else if m.state.Task != "" {
		lines = append(lines, "", styles.Task.Render("📌 "+m.state.Task))
	}

	if m.toast != "" {
		lines = append(lines, "", styles.Toast.Render(m.toast))
	}

	lines = append(lines,
		"",
		styles.Dim.Render(fmt.Sprintf("focus %dm · short %dm · long %dm · auto-advance %s · sound %s",
			m.config.FocusMinutes, m.config.ShortBreakMinutes, m.config.LongBreakMinutes,
			onOff(m.config.AutoAdvance), onOff(m.config.SoundEnabled))),
		m.help.View(m.keys),
	)

	return styles.Base.Render(strings.Join(lines, "\n"))
}

func (m Model) dotsView(styles theme) string {
	filled := m.state.Dots()
	dots := make([]string, 0, model.LongBreakEvery)
	for i := 0; i < model.LongBreakEvery; i++ {
		if i < filled {
			dots = append(dots, styles.DotDone.Render("●"))
		} else {
			dots = append(dots, styles.DotTodo.Render("○"))
		}
	}
	return strings.Join(dots, " ") + styles.Dim.Render(fmt.Sprintf("  %d completed", m.state.CompletedFocus))
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}
