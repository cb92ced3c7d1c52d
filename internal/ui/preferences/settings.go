package preferences

import (
	"strconv"
	"strings"

	"pomodoro/internal/core/model"
)

// Spinner bounds for the minute fields.
const (
	MinMinutes = model.MinMinutes
	MaxMinutes = 99
)

// InvalidMessage is shown when a duration field is rejected.
const InvalidMessage = "Values must be between 1 and 1440"

// SavedMessage is shown after settings are applied.
const SavedMessage = "Settings saved ✓"

// Form holds the raw field values of the settings dialog.
type Form struct {
	Focus        string
	ShortBreak   string
	LongBreak    string
	AutoAdvance  bool
	SoundEnabled bool
}

// FormFromConfig fills the form with config.
func FormFromConfig(config model.Config) Form {
	return Form{
		Focus:        strconv.Itoa(config.FocusMinutes),
		ShortBreak:   strconv.Itoa(config.ShortBreakMinutes),
		LongBreak:    strconv.Itoa(config.LongBreakMinutes),
		AutoAdvance:  config.AutoAdvance,
		SoundEnabled: config.SoundEnabled,
	}
}

// Config parses the form. Any duration that is not a whole number of
// minutes within the model bounds rejects the whole form.
func (form Form) Config() (model.Config, error) {
	config := model.Config{AutoAdvance: form.AutoAdvance, SoundEnabled: form.SoundEnabled}
	fields := []struct {
		name  string
		value string
		dest  *int
	}{
		{name: "focus_minutes", value: form.Focus, dest: &config.FocusMinutes},
		{name: "short_break_minutes", value: form.ShortBreak, dest: &config.ShortBreakMinutes},
		{name: "long_break_minutes", value: form.LongBreak, dest: &config.LongBreakMinutes},
	}

	for _, field := range fields {
		parsed, err := strconv.Atoi(strings.TrimSpace(field.value))
		if err != nil {
			return model.Config{}, &model.InvalidConfigError{Field: field.name}
		}
		if !model.ValidMinutes(parsed) {
			return model.Config{}, &model.InvalidConfigError{Field: field.name, Value: parsed}
		}
		*field.dest = parsed
	}
	return config, nil
}

// Spin steps a minute field by delta, clamped to [MinMinutes, MaxMinutes].
// Unparsable input counts as MinMinutes.
func Spin(value string, delta int) string {
	current, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || current == 0 {
		current = MinMinutes
	}
	current += delta
	if current < MinMinutes {
		current = MinMinutes
	}
	if current > MaxMinutes {
		current = MaxMinutes
	}
	return strconv.Itoa(current)
}
