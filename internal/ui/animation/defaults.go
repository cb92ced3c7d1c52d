package animation

import "time"

// DefaultConfig returns the timings of the countdown pulse and the toast.
func DefaultConfig() Config {
	return Config{
		FrameDuration: 120 * time.Millisecond,
		PulseFrames:   []float64{1, 0.94, 0.86, 0.78, 0.72, 0.72, 0.78, 0.86, 0.94, 1, 1, 1},
		ToastDuration: 3200 * time.Millisecond,
	}
}
