package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ConfigDir returns the per-application directory under the OS-standard
// configuration directory, falling back to a home-relative path when the
// environment does not define one.
func ConfigDir(appName string) (string, error) {
	name := strings.TrimSpace(appName)
	if name == "" {
		return "", errors.New("config dir: app name is empty")
	}

	root, err := userConfigRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// userConfigRoot returns the OS-standard configuration directory.
func userConfigRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

func fallbackConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support")
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming")
	default:
		return filepath.Join(homeDir, ".config")
	}
}
