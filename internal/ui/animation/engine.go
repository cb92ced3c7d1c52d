package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains animation timing values.
type Config struct {
	// FrameDuration is how long each pulse frame is held.
	FrameDuration time.Duration
	// PulseFrames are brightness levels in [0, 1] played in a loop.
	PulseFrames []float64
	// ToastDuration is how long a toast stays visible.
	ToastDuration time.Duration
}

// Engine runs the countdown pulse and hides toasts after a delay. Each
// animation runs in its own goroutine and is cancelled by the next start.
type Engine struct {
	mu          sync.Mutex
	config      Config
	pulseCancel context.CancelFunc
	toastCancel context.CancelFunc
}

// New creates a new animation engine.
func New(config Config) *Engine {
	if len(config.PulseFrames) == 0 {
		config.PulseFrames = []float64{1}
	}
	return &Engine{config: config}
}

// StartPulse calls apply with each pulse level until the pulse is stopped
// or ctx is cancelled. A running pulse keeps going.
func (engine *Engine) StartPulse(ctx context.Context, apply func(level float64)) {
	engine.mu.Lock()
	if engine.pulseCancel != nil {
		engine.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.pulseCancel = cancel
	engine.mu.Unlock()

	go engine.runPulse(runCtx, apply)
}

// StopPulse stops the pulse. apply is not called again once StopPulse returns
// and the goroutine observes the cancellation.
func (engine *Engine) StopPulse() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.pulseCancel != nil {
		engine.pulseCancel()
		engine.pulseCancel = nil
	}
}

// Pulsing reports whether a pulse is active.
func (engine *Engine) Pulsing() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.pulseCancel != nil
}

// ShowToast calls show with message and schedules hide. A newer toast
// replaces the pending hide of an older one.
func (engine *Engine) ShowToast(ctx context.Context, message string, show func(string), hide func()) {
	engine.mu.Lock()
	if engine.toastCancel != nil {
		engine.toastCancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.toastCancel = cancel
	duration := engine.config.ToastDuration
	engine.mu.Unlock()

	show(message)
	go func() {
		if sleepWithContext(runCtx, duration) {
			hide()
		}
	}()
}

// Stop terminates every active animation.
func (engine *Engine) Stop() {
	engine.StopPulse()
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.toastCancel != nil {
		engine.toastCancel()
		engine.toastCancel = nil
	}
}

func (engine *Engine) runPulse(ctx context.Context, apply func(level float64)) {
	frames := engine.config.PulseFrames
	for index := 0; ; index = (index + 1) % len(frames) {
		if ctx.Err() != nil {
			return
		}
		apply(frames[index])
		if !sleepWithContext(ctx, engine.config.FrameDuration) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
