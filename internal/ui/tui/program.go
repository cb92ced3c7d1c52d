package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/internal/core/timekeeper"
)

const eventBuffer = 64

// Engine is a Controller that also publishes events.
type Engine interface {
	Controller
	Subscribe(buffer int) <-chan timekeeper.Event
}

// Program runs the timer screen and feeds it engine events.
type Program struct {
	program *tea.Program
	events  <-chan timekeeper.Event
	ctx     context.Context
}

// NewProgram subscribes to engine and prepares the bubbletea program.
func NewProgram(ctx context.Context, engine Engine, options Options, programOptions ...tea.ProgramOption) *Program {
	events := engine.Subscribe(eventBuffer)
	programOptions = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOptions...)
	return &Program{
		program: tea.NewProgram(New(engine, options), programOptions...),
		events:  events,
		ctx:     ctx,
	}
}

// Toast shows message in the running program. It never blocks the caller.
func (p *Program) Toast(message string) {
	go p.program.Send(ToastMsg{Text: message})
}

// Run blocks until the user quits or ctx is cancelled.
func (p *Program) Run() error {
	go func() {
		for event := range p.events {
			p.program.Send(EventMsg(event))
		}
	}()

	_, err := p.program.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && p.ctx.Err() != nil {
		return nil
	}
	return err
}
