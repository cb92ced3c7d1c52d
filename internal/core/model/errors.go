package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownMode is returned for mode names outside Focus, ShortBreak and LongBreak.
	ErrUnknownMode = errors.New("unknown mode")
)

// InvalidConfigError is returned when a duration field is out of range.
type InvalidConfigError struct {
	Field string
	Value int
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s must be between %d and %d, got %d", e.Field, MinMinutes, MaxMinutes, e.Value)
}

// Is enables errors.Is checks against ErrInvalidConfig.
func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
