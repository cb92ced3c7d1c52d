package timekeeper

import (
	"sync"
	"time"
)

// TickSource drives the countdown. Start begins calling fn periodically,
// replacing any previous callback; Stop halts it. Implementations must not
// block in Stop waiting for an in-flight fn call.
type TickSource interface {
	Start(fn func())
	Stop()
}

// Ticker is a TickSource backed by time.Ticker.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	stopCh   chan struct{}
}

// NewTicker returns a real tick source firing every interval (one second if zero).
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Start launches the ticking loop, stopping any loop already running.
func (ticker *Ticker) Start(fn func()) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.stopLocked()
	stopCh := make(chan struct{})
	ticker.stopCh = stopCh
	go ticker.run(stopCh, fn)
}

// Stop terminates the ticking loop.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.stopLocked()
}

func (ticker *Ticker) stopLocked() {
	if ticker.stopCh != nil {
		close(ticker.stopCh)
		ticker.stopCh = nil
	}
}

func (ticker *Ticker) run(stopCh <-chan struct{}, fn func()) {
	timeTicker := time.NewTicker(ticker.interval)
	defer timeTicker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timeTicker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			fn()
		}
	}
}

// ManualTicker is a TickSource that only ticks when Fire is called.
// It lets tests drive a TimeKeeper without real time passing.
type ManualTicker struct {
	mu     sync.Mutex
	fn     func()
	starts int
}

// NewManualTicker returns an idle ManualTicker.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

// Start arms the ticker with fn.
func (ticker *ManualTicker) Start(fn func()) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.fn = fn
	ticker.starts++
}

// Stop disarms the ticker.
func (ticker *ManualTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.fn = nil
}

// Active reports whether the ticker is armed.
func (ticker *ManualTicker) Active() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.fn != nil
}

// Starts returns how many times Start was called.
func (ticker *ManualTicker) Starts() int {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.starts
}

// Fire delivers one tick synchronously. It reports false when disarmed.
func (ticker *ManualTicker) Fire() bool {
	ticker.mu.Lock()
	fn := ticker.fn
	ticker.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// FireN delivers up to n ticks and returns how many were delivered.
func (ticker *ManualTicker) FireN(n int) int {
	fired := 0
	for i := 0; i < n; i++ {
		if !ticker.Fire() {
			break
		}
		fired++
	}
	return fired
}
