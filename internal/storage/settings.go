package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
)

const settingsFileName = "settings.yaml"

// Settings keys. Each field also accepts the camelCase keys written by the
// browser widget so an exported pomo_cfg blob loads unchanged.
var (
	focusKeys       = []string{"focus_minutes", "pomodoroMin"}
	shortBreakKeys  = []string{"short_break_minutes", "shortMin"}
	longBreakKeys   = []string{"long_break_minutes", "longMin"}
	autoAdvanceKeys = []string{"auto_advance", "autoBreak"}
	soundKeys       = []string{"sound_enabled", "soundAlert"}
)

// ResolveConfigPath returns the default settings file for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, settingsFileName), nil
}

// LoadSettings reads the timer configuration from path and merges it over
// the defaults. A missing file yields the defaults. Malformed documents and
// fields are logged and replaced by defaults; only read failures are errors.
func LoadSettings(path string, logger *log.Logger) (model.Config, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	settings := model.DefaultConfig()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	document, err := decodeDocument(path, rawData)
	if err != nil {
		logger.Warn("settings file is malformed, using defaults", "path", path, "err", err)
		return settings, nil
	}

	applyDocument(&settings, document, logger.With("path", path))
	return settings, nil
}

// SaveSettings validates config and writes it to path in the format implied
// by the file extension.
func SaveSettings(path string, config model.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := encodeDocument(path, config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func decodeDocument(path string, data []byte) (map[string]any, error) {
	document := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return document, nil
	}

	switch formatOf(path) {
	case "toml":
		if _, err := toml.Decode(string(data), &document); err != nil {
			return nil, fmt.Errorf("parse settings toml: %w", err)
		}
	default:
		// yaml.v3 also reads JSON documents.
		if err := yaml.Unmarshal(data, &document); err != nil {
			return nil, fmt.Errorf("parse settings yaml: %w", err)
		}
	}
	return document, nil
}

func encodeDocument(path string, config model.Config) ([]byte, error) {
	switch formatOf(path) {
	case "toml":
		var buffer bytes.Buffer
		if err := toml.NewEncoder(&buffer).Encode(config); err != nil {
			return nil, fmt.Errorf("marshal settings toml: %w", err)
		}
		return buffer.Bytes(), nil
	case "json":
		serialized, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal settings json: %w", err)
		}
		return append(serialized, '\n'), nil
	default:
		serialized, err := yaml.Marshal(config)
		if err != nil {
			return nil, fmt.Errorf("marshal settings yaml: %w", err)
		}
		return serialized, nil
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

func applyDocument(settings *model.Config, document map[string]any, logger *log.Logger) {
	applyMinutes(&settings.FocusMinutes, document, focusKeys, logger)
	applyMinutes(&settings.ShortBreakMinutes, document, shortBreakKeys, logger)
	applyMinutes(&settings.LongBreakMinutes, document, longBreakKeys, logger)
	applyBool(&settings.AutoAdvance, document, autoAdvanceKeys, logger)
	applyBool(&settings.SoundEnabled, document, soundKeys, logger)
}

func lookup(document map[string]any, keys []string) (any, string, bool) {
	for _, key := range keys {
		if value, ok := document[key]; ok && value != nil {
			return value, key, true
		}
	}
	return nil, "", false
}

func applyMinutes(target *int, document map[string]any, keys []string, logger *log.Logger) {
	value, key, ok := lookup(document, keys)
	if !ok {
		return
	}
	minutes, ok := minutesValue(value)
	if !ok {
		logger.Warn("ignoring invalid settings value", "key", key, "value", value)
		return
	}
	*target = minutes
}

func applyBool(target *bool, document map[string]any, keys []string, logger *log.Logger) {
	value, key, ok := lookup(document, keys)
	if !ok {
		return
	}
	parsed, ok := boolValue(value)
	if !ok {
		logger.Warn("ignoring invalid settings value", "key", key, "value", value)
		return
	}
	*target = parsed
}

func minutesValue(value any) (int, bool) {
	var minutes int64
	switch typed := value.(type) {
	case int:
		minutes = int64(typed)
	case int64:
		minutes = typed
	case uint64:
		if typed > model.MaxMinutes {
			return 0, false
		}
		minutes = int64(typed)
	case float64:
		if typed != math.Trunc(typed) || typed > model.MaxMinutes {
			return 0, false
		}
		minutes = int64(typed)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0, false
		}
		minutes = int64(parsed)
	default:
		return 0, false
	}
	if minutes < model.MinMinutes || minutes > model.MaxMinutes {
		return 0, false
	}
	return int(minutes), true
}

func boolValue(value any) (bool, bool) {
	switch typed := value.(type) {
	case bool:
		return typed, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}
