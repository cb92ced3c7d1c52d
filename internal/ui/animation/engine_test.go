package animation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		FrameDuration: 2 * time.Millisecond,
		PulseFrames:   []float64{1, 0.5},
		ToastDuration: 30 * time.Millisecond,
	}
}

func TestDefaultConfigMatchesToastTiming(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	assert.Equal(t, 3200*time.Millisecond, config.ToastDuration)
	require.NotEmpty(t, config.PulseFrames)
	for _, level := range config.PulseFrames {
		assert.GreaterOrEqual(t, level, 0.0)
		assert.LessOrEqual(t, level, 1.0)
	}
}

func TestPulseCyclesFramesUntilStopped(t *testing.T) {
	t.Parallel()

	engine := New(fastConfig())
	var mu sync.Mutex
	var levels []float64
	engine.StartPulse(context.Background(), func(level float64) {
		mu.Lock()
		levels = append(levels, level)
		mu.Unlock()
	})
	assert.True(t, engine.Pulsing())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(levels) >= 4
	}, time.Second, time.Millisecond)

	engine.StopPulse()
	assert.False(t, engine.Pulsing())

	mu.Lock()
	assert.Equal(t, []float64{1, 0.5, 1, 0.5}, levels[:4])
	mu.Unlock()
}

func TestStartPulseTwiceKeepsOneLoop(t *testing.T) {
	t.Parallel()

	engine := New(Config{FrameDuration: time.Hour, PulseFrames: []float64{1}})
	var calls atomic.Int32
	apply := func(float64) { calls.Add(1) }

	engine.StartPulse(context.Background(), apply)
	engine.StartPulse(context.Background(), apply)
	t.Cleanup(engine.Stop)

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestToastHidesAfterDuration(t *testing.T) {
	t.Parallel()

	engine := New(fastConfig())
	var shown atomic.Value
	hidden := make(chan struct{}, 1)

	engine.ShowToast(context.Background(), "Settings saved ✓",
		func(message string) { shown.Store(message) },
		func() { hidden <- struct{}{} })

	assert.Equal(t, "Settings saved ✓", shown.Load())
	select {
	case <-hidden:
	case <-time.After(time.Second):
		t.Fatal("toast was not hidden")
	}
}

func TestNewerToastReplacesPendingHide(t *testing.T) {
	t.Parallel()

	engine := New(Config{ToastDuration: 40 * time.Millisecond})
	var hides atomic.Int32
	hide := func() { hides.Add(1) }
	show := func(string) {}

	engine.ShowToast(context.Background(), "first", show, hide)
	time.Sleep(10 * time.Millisecond)
	engine.ShowToast(context.Background(), "second", show, hide)

	require.Eventually(t, func() bool { return hides.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), hides.Load())
}

func TestStopCancelsPendingToast(t *testing.T) {
	t.Parallel()

	engine := New(Config{ToastDuration: 20 * time.Millisecond})
	var hides atomic.Int32

	engine.ShowToast(context.Background(), "bye", func(string) {}, func() { hides.Add(1) })
	engine.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), hides.Load())
}
