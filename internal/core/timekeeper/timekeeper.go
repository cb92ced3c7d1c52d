package timekeeper

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"pomodoro/internal/core/model"
)

// ErrClosed is returned by commands issued after Close.
var ErrClosed = errors.New("timekeeper closed")

// Stopper cancels a scheduled callback.
type Stopper interface {
	Stop() bool
}

// Options contains runtime options for TimeKeeper.
type Options struct {
	// TickSource drives the countdown. Defaults to NewTicker(TickInterval).
	TickSource   TickSource
	TickInterval time.Duration
	// AdvanceDelay defers the completion transition so a shell can show the
	// finished interval briefly. Zero applies it synchronously.
	AdvanceDelay time.Duration
	// AfterFunc schedules the deferred advance. Defaults to time.AfterFunc.
	AfterFunc func(time.Duration, func()) Stopper
	Now       func() time.Time
	Logger    *log.Logger
}

// TimeKeeper is the pomodoro session state machine.
type TimeKeeper struct {
	mu          sync.Mutex
	config      model.Config
	options     Options
	state       State
	ticks       TickSource
	generation  uint64
	pending     *pendingAdvance
	nextPending uint64
	logger      *log.Logger

	listeners    []listenerEntry
	nextListener uint64
	queue        []Event
	dispatching  bool
	subs         []*subscription
	closed       bool
}

type pendingAdvance struct {
	id      uint64
	advance Advance
	timer   Stopper
}

type listenerEntry struct {
	id       uint64
	listener Listener
}

type subscription struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

// New creates an idle TimeKeeper positioned at the start of a focus interval.
func New(config model.Config, options Options) (*TimeKeeper, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.TickSource == nil {
		options.TickSource = NewTicker(options.TickInterval)
	}
	if options.AfterFunc == nil {
		options.AfterFunc = func(delay time.Duration, fn func()) Stopper {
			return time.AfterFunc(delay, fn)
		}
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	logger := options.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &TimeKeeper{
		config:  config,
		options: options,
		state:   NewState(config),
		ticks:   options.TickSource,
		logger:  logger.WithPrefix("timekeeper"),
	}, nil
}

// AddListener registers a synchronous observer and returns a function that removes it.
func (keeper *TimeKeeper) AddListener(listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	keeper.mu.Lock()
	keeper.nextListener++
	id := keeper.nextListener
	keeper.listeners = append(keeper.listeners, listenerEntry{id: id, listener: listener})
	keeper.mu.Unlock()

	return func() {
		keeper.mu.Lock()
		defer keeper.mu.Unlock()
		for i, entry := range keeper.listeners {
			if entry.id == id {
				keeper.listeners = append(keeper.listeners[:i:i], keeper.listeners[i+1:]...)
				return
			}
		}
	}
}

// Subscribe registers a new observer channel. Events are dropped when the
// channel buffer is full; the channel is closed by Close.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	sub := &subscription{ch: make(chan Event, buffer)}
	keeper.mu.Lock()
	keeper.subs = append(keeper.subs, sub)
	keeper.mu.Unlock()

	keeper.AddListener(func(event Event) {
		sub.mu.Lock()
		defer sub.mu.Unlock()
		if sub.closed {
			return
		}
		select {
		case sub.ch <- event:
		default:
			keeper.logger.Debug("dropping event for slow subscriber", "type", event.Type)
		}
	})
	return sub.ch
}

// Snapshot returns a copy of the current session state.
func (keeper *TimeKeeper) Snapshot() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Config returns the active configuration.
func (keeper *TimeKeeper) Config() model.Config {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.config
}

// Configure replaces the configuration. An invalid config is rejected whole
// and the previous one stays active. The running countdown is not touched.
func (keeper *TimeKeeper) Configure(config model.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	return keeper.apply(Input{Command: CommandConfigure, Config: config}, false)
}

// SwitchMode stops the countdown without completing it and loads a fresh interval of mode.
func (keeper *TimeKeeper) SwitchMode(mode model.Mode) error {
	if !mode.Valid() {
		return model.ErrUnknownMode
	}
	return keeper.apply(Input{Command: CommandSwitch, Mode: mode}, true)
}

// Start begins or resumes the countdown.
func (keeper *TimeKeeper) Start() {
	_ = keeper.apply(Input{Command: CommandStart}, true)
}

// Pause freezes the countdown. Pausing an idle timer is a no-op.
func (keeper *TimeKeeper) Pause() {
	_ = keeper.apply(Input{Command: CommandPause}, true)
}

// Toggle pauses a running timer and starts an idle one.
func (keeper *TimeKeeper) Toggle() {
	keeper.mu.Lock()
	running := keeper.state.Running
	keeper.mu.Unlock()
	if running {
		keeper.Pause()
		return
	}
	keeper.Start()
}

// Reset stops the countdown and refills the current interval.
func (keeper *TimeKeeper) Reset() {
	_ = keeper.apply(Input{Command: CommandReset}, true)
}

// Skip moves to the mode a natural completion would pick, without counting
// the interval, playing alerts or auto-starting. A pending completion
// transition already names that mode, so Skip only applies it.
func (keeper *TimeKeeper) Skip() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	if keeper.flushAdvanceLocked() {
		keeper.mu.Unlock()
		keeper.dispatch()
		return
	}
	keeper.applyLocked(Input{Command: CommandSkip})
	keeper.mu.Unlock()

	keeper.dispatch()
}

// SetTask stores the free-text task label.
func (keeper *TimeKeeper) SetTask(task string) {
	_ = keeper.apply(Input{Command: CommandSetTask, Task: task}, false)
}

// Tick advances a running countdown by one second. Idle timers ignore it.
func (keeper *TimeKeeper) Tick() {
	_ = keeper.apply(Input{Command: CommandTick}, false)
}

// Close stops the tick source, drops any pending advance and closes subscriber channels.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.stopTickerLocked()
	if keeper.pending != nil {
		keeper.pending.timer.Stop()
		keeper.pending = nil
	}
	subs := keeper.subs
	keeper.subs = nil
	keeper.listeners = nil
	keeper.mu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		sub.closed = true
		close(sub.ch)
		sub.mu.Unlock()
	}
}

func (keeper *TimeKeeper) apply(input Input, flush bool) error {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return ErrClosed
	}
	if flush {
		keeper.flushAdvanceLocked()
	}
	keeper.applyLocked(input)
	keeper.mu.Unlock()

	keeper.dispatch()
	return nil
}

func (keeper *TimeKeeper) applyLocked(input Input) {
	result := Reduce(keeper.state, keeper.config, input, keeper.options.Now())
	version := keeper.state.Version
	for i := range result.Events {
		version++
		result.Events[i].Version = version
	}
	keeper.state = result.State
	keeper.state.Version = version
	keeper.config = result.Config

	switch result.Effect {
	case EffectStartTicker:
		keeper.startTickerLocked()
	case EffectStopTicker:
		keeper.stopTickerLocked()
	}

	for _, event := range result.Events {
		keeper.logEvent(event)
	}
	keeper.queue = append(keeper.queue, result.Events...)

	if result.Advance != nil {
		keeper.scheduleAdvanceLocked(*result.Advance)
	}
}

func (keeper *TimeKeeper) startTickerLocked() {
	keeper.generation++
	generation := keeper.generation
	keeper.ticks.Start(func() {
		keeper.tickFrom(generation)
	})
}

func (keeper *TimeKeeper) stopTickerLocked() {
	keeper.generation++
	keeper.ticks.Stop()
}

// tickFrom applies a tick only if it belongs to the current tick source, so a
// tick racing with Stop is discarded.
func (keeper *TimeKeeper) tickFrom(generation uint64) {
	keeper.mu.Lock()
	if keeper.closed || generation != keeper.generation || !keeper.state.Running {
		keeper.mu.Unlock()
		return
	}
	keeper.applyLocked(Input{Command: CommandTick})
	keeper.mu.Unlock()

	keeper.dispatch()
}

func (keeper *TimeKeeper) scheduleAdvanceLocked(advance Advance) {
	if keeper.options.AdvanceDelay <= 0 {
		keeper.applyLocked(Input{Command: CommandAdvance, Mode: advance.Mode, Start: advance.Start})
		return
	}

	keeper.nextPending++
	id := keeper.nextPending
	pending := &pendingAdvance{id: id, advance: advance}
	pending.timer = keeper.options.AfterFunc(keeper.options.AdvanceDelay, func() {
		keeper.fireAdvance(id)
	})
	keeper.pending = pending
}

func (keeper *TimeKeeper) fireAdvance(id uint64) {
	keeper.mu.Lock()
	if keeper.closed || keeper.pending == nil || keeper.pending.id != id {
		keeper.mu.Unlock()
		return
	}
	advance := keeper.pending.advance
	keeper.pending = nil
	keeper.applyLocked(Input{Command: CommandAdvance, Mode: advance.Mode, Start: advance.Start})
	keeper.mu.Unlock()

	keeper.dispatch()
}

// flushAdvanceLocked applies a pending completion transition now and reports
// whether there was one.
func (keeper *TimeKeeper) flushAdvanceLocked() bool {
	if keeper.pending == nil {
		return false
	}
	pending := keeper.pending
	keeper.pending = nil
	pending.timer.Stop()
	keeper.applyLocked(Input{Command: CommandAdvance, Mode: pending.advance.Mode, Start: pending.advance.Start})
	return true
}

// dispatch delivers queued events outside the state lock. Only one goroutine
// dispatches at a time; events queued meanwhile are delivered by it in order.
func (keeper *TimeKeeper) dispatch() {
	keeper.mu.Lock()
	if keeper.dispatching {
		keeper.mu.Unlock()
		return
	}
	keeper.dispatching = true
	for len(keeper.queue) > 0 {
		event := keeper.queue[0]
		keeper.queue = keeper.queue[1:]
		listeners := make([]Listener, 0, len(keeper.listeners))
		for _, entry := range keeper.listeners {
			listeners = append(listeners, entry.listener)
		}
		keeper.mu.Unlock()

		for _, listener := range listeners {
			listener(event)
		}

		keeper.mu.Lock()
	}
	keeper.queue = nil
	keeper.dispatching = false
	keeper.mu.Unlock()
}

func (keeper *TimeKeeper) logEvent(event Event) {
	switch event.Type {
	case EventTick:
		return
	case EventCompleted:
		keeper.logger.Info("interval completed",
			"mode", event.Mode,
			"completed_focus", event.CompletedFocus,
			"auto_advance", event.AutoAdvanced,
		)
	default:
		keeper.logger.Debug(string(event.Type),
			"mode", event.Mode,
			"remaining", event.Remaining,
			"running", event.Running,
		)
	}
}
