package platform

import (
	"errors"
	"strings"
)

// Autostart registers the desktop timer to launch at login.
type Autostart struct {
	appName string
}

// NewAutostart returns the login item manager for appName.
func NewAutostart(appName string) *Autostart {
	return &Autostart{appName: strings.TrimSpace(appName)}
}

// Enable launches execPath at login.
func (autostart *Autostart) Enable(execPath string) error {
	if autostart.appName == "" {
		return errors.New("enable autostart: app name is empty")
	}
	if strings.TrimSpace(execPath) == "" {
		return errors.New("enable autostart: exec path is empty")
	}
	return enableAutostart(autostart.appName, execPath)
}

// Disable removes the login item. Removing a missing item is not an error.
func (autostart *Autostart) Disable() error {
	if autostart.appName == "" {
		return errors.New("disable autostart: app name is empty")
	}
	return disableAutostart(autostart.appName)
}

// Enabled reports whether a login item is registered.
func (autostart *Autostart) Enabled() (bool, error) {
	if autostart.appName == "" {
		return false, errors.New("autostart status: app name is empty")
	}
	return autostartEnabled(autostart.appName)
}

func slug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(name, " ", "-")
}
