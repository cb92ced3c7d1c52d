package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cli := &invocation{}
	cmd := newRootCommand(cli)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	cli.closeLogger()
	return stdout.String(), err
}

func TestRootCommandVersionFlag(t *testing.T) {
	previousVersion := Version
	t.Cleanup(func() { Version = previousVersion })
	Version = "v0.1.0-test"

	output, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0-test", strings.TrimSpace(output))
}

func TestRootCommandHelpListsSubcommands(t *testing.T) {
	output, err := execute(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"tui", "config", "--advance-delay", "--log-level"} {
		assert.Contains(t, output, name)
	}
}

func TestConfigPathHonoursFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")

	output, err := execute(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(output))
}

func TestConfigShowPrintsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	output, err := execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, "focus_minutes: 25")
	assert.Contains(t, output, "short_break_minutes: 5")
	assert.Contains(t, output, "long_break_minutes: 15")
	assert.Contains(t, output, "auto_advance: false")
	assert.Contains(t, output, "sound_enabled: true")
}

func TestConfigSetUpdatesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	output, err := execute(t, "config", "set", "--config", path, "--focus", "50", "--auto-advance")
	require.NoError(t, err)
	assert.Contains(t, output, path)

	output, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, "focus_minutes: 50")
	assert.Contains(t, output, "auto_advance: true")
	assert.Contains(t, output, "short_break_minutes: 5")

	_, err = execute(t, "config", "set", "--config", path, "--sound=false")
	require.NoError(t, err)
	output, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, "focus_minutes: 50")
	assert.Contains(t, output, "sound_enabled: false")
}

func TestConfigSetRejectsInvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	for _, value := range []string{"0", "200000000"} {
		_, err := execute(t, "config", "set", "--config", path, "--long", value)
		require.ErrorIs(t, err, model.ErrInvalidConfig, value)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), value)
	}
}

func TestConfigSetWritesToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	_, err := execute(t, "config", "set", "--config", path, "--short", "7")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "short_break_minutes = 7")
}

func TestInvalidGlobalFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	_, err := execute(t, "config", "path", "--config", path, "--log-level", "chatty")
	require.Error(t, err)

	_, err = execute(t, "config", "path", "--config", path, "--advance-delay", "-1s")
	require.Error(t, err)
}

func TestAutostartStatusAndToggle(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("login items are only sandboxed through XDG_CONFIG_HOME on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	output, err := execute(t, "autostart", "status")
	require.NoError(t, err)
	assert.Equal(t, "disabled", strings.TrimSpace(output))

	_, err = execute(t, "autostart", "enable")
	require.NoError(t, err)
	output, err = execute(t, "autostart", "status")
	require.NoError(t, err)
	assert.Equal(t, "enabled", strings.TrimSpace(output))

	_, err = execute(t, "autostart", "disable")
	require.NoError(t, err)
	output, err = execute(t, "autostart", "status")
	require.NoError(t, err)
	assert.Equal(t, "disabled", strings.TrimSpace(output))
}
