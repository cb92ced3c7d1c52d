package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), settings)
}

func TestSaveAndLoadRoundTripPerFormat(t *testing.T) {
	t.Parallel()

	want := model.Config{
		FocusMinutes:      50,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  30,
		AutoAdvance:       true,
		SoundEnabled:      false,
	}

	for _, name := range []string{"settings.yaml", "settings.yml", "settings.json", "settings.toml"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, SaveSettings(path, want))

			got, err := LoadSettings(path, nil)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSaveSettingsWritesCanonicalKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, SaveSettings(path, model.DefaultConfig()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "focus_minutes: 25")
	assert.Contains(t, string(raw), "sound_enabled: true")
}

func TestSaveSettingsRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	config := model.DefaultConfig()
	config.LongBreakMinutes = 0

	err := SaveSettings(path, config)
	require.ErrorIs(t, err, model.ErrInvalidConfig)
	assert.NoFileExists(t, path)
}

func TestLoadSettingsAcceptsWidgetAliases(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "pomo_cfg.json",
		`{"pomodoroMin":45,"shortMin":7,"longMin":20,"autoBreak":true,"soundAlert":false}`)

	settings, err := LoadSettings(path, nil)
	require.NoError(t, err)
	assert.Equal(t, model.Config{
		FocusMinutes:      45,
		ShortBreakMinutes: 7,
		LongBreakMinutes:  20,
		AutoAdvance:       true,
		SoundEnabled:      false,
	}, settings)
}

func TestLoadSettingsCanonicalKeyWinsOverAlias(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "settings.yaml", "focus_minutes: 30\npomodoroMin: 45\n")

	settings, err := LoadSettings(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, settings.FocusMinutes)
}

func TestLoadSettingsFallsBackPerField(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := log.New(&logs)

	path := writeFile(t, "settings.yaml", `
focus_minutes: 0
short_break_minutes: "8"
long_break_minutes: 12.5
auto_advance: "yes please"
sound_enabled: "false"
`)

	settings, err := LoadSettings(path, logger)
	require.NoError(t, err)

	assert.Equal(t, model.DefaultFocusMinutes, settings.FocusMinutes)
	assert.Equal(t, 8, settings.ShortBreakMinutes)
	assert.Equal(t, model.DefaultLongBreakMinutes, settings.LongBreakMinutes)
	assert.Equal(t, model.DefaultAutoAdvance, settings.AutoAdvance)
	assert.False(t, settings.SoundEnabled)

	assert.Contains(t, logs.String(), "focus_minutes")
	assert.Contains(t, logs.String(), "long_break_minutes")
	assert.Contains(t, logs.String(), "auto_advance")
}

func TestLoadSettingsRejectsMinutesAboveOneDay(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	path := writeFile(t, "settings.json", `{"pomodoroMin": 200000000, "shortMin": 1441, "longMin": 1440}`)

	settings, err := LoadSettings(path, log.New(&logs))
	require.NoError(t, err)

	assert.Equal(t, model.DefaultFocusMinutes, settings.FocusMinutes)
	assert.Equal(t, model.DefaultShortBreakMinutes, settings.ShortBreakMinutes)
	assert.Equal(t, model.MaxMinutes, settings.LongBreakMinutes)
	assert.Contains(t, logs.String(), "pomodoroMin")
	assert.Contains(t, logs.String(), "shortMin")
}

func TestLoadSettingsMalformedDocumentReturnsDefaults(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	path := writeFile(t, "settings.yaml", "focus_minutes: [unterminated\n")

	settings, err := LoadSettings(path, log.New(&logs))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), settings)
	assert.Contains(t, logs.String(), "malformed")
}

func TestLoadSettingsTomlIntegers(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "settings.toml", "focus_minutes = 40\nauto_advance = true\n")

	settings, err := LoadSettings(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 40, settings.FocusMinutes)
	assert.True(t, settings.AutoAdvance)
	assert.Equal(t, model.DefaultShortBreakMinutes, settings.ShortBreakMinutes)
}

func TestLoadSettingsEmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "settings.yaml", "\n")

	settings, err := LoadSettings(path, nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), settings)
}

func TestLoadSettingsReadErrorIsReturned(t *testing.T) {
	t.Parallel()

	_, err := LoadSettings(t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read settings file")
}

func TestResolveConfigPath(t *testing.T) {
	path, err := ResolveConfigPath("Pomodoro")
	require.NoError(t, err)
	assert.Equal(t, "settings.yaml", filepath.Base(path))
	assert.Equal(t, "Pomodoro", filepath.Base(filepath.Dir(path)))
}
