package main

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"pomodoro/internal/alert"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/animation"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/window"
	"pomodoro/resources"
)

const appID = "com.pomodoro.app"

// desktopNotifier shows completion messages as desktop notifications.
type desktopNotifier struct {
	app fyne.App
}

func (notifier desktopNotifier) Notify(title, message string) error {
	notifier.app.SendNotification(fyne.NewNotification(title, message))
	return nil
}

func runGUI(cmd *cobra.Command, cli *invocation) error {
	ctx := cmd.Context()
	logger := cli.logger

	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logger.Info("another instance is running, asking it to show its window")
		if err := platform.ActivateRunning(appName); err != nil {
			return fmt.Errorf("activate running instance: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	config, path, err := cli.loadSettings()
	if err != nil {
		return err
	}
	logger.Info("starting desktop timer", "settings", path)

	keeper, err := timekeeper.New(config, timekeeper.Options{
		AdvanceDelay: cli.advanceDelay,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer keeper.Close()

	fyneApp := app.NewWithID(appID)
	activeIcon := resources.MustLogo(resources.LogoActive)
	pausedIcon := resources.MustLogo(resources.LogoPaused)
	breakIcon := resources.MustLogo(resources.LogoBreak)
	fyneApp.SetIcon(activeIcon)

	timerWindow := window.New(fyneApp, keeper, animation.New(animation.DefaultConfig()))
	quit := func() {
		timerWindow.Close()
		fyneApp.Quit()
	}

	prefsWindow := preferences.New(fyneApp, config, func(updated model.Config) {
		if err := keeper.Configure(updated); err != nil {
			logger.Warn("rejected settings", "err", err)
			timerWindow.Toast(preferences.InvalidMessage)
			return
		}
		keeper.Reset()
		if err := storage.SaveSettings(path, updated); err != nil {
			logger.Error("save settings", "path", path, "err", err)
		}
		timerWindow.Toast(preferences.SavedMessage)
	})
	timerWindow.SetOnSettings(func() {
		prefsWindow.Show(keeper.Config())
	})

	alerter := alert.New(alert.Options{
		Notifier: desktopNotifier{app: fyneApp},
		Chimer:   alert.NewBell(cmd.ErrOrStderr()),
		Config:   keeper.Config,
		Toast:    timerWindow.Toast,
		Logger:   logger,
	})
	keeper.AddListener(alerter.Listener())
	keeper.AddListener(timerWindow.HandleEvent)

	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:   timerWindow.Show,
			OnToggle: keeper.Toggle,
			OnReset:  keeper.Reset,
			OnSkip:   keeper.Skip,
			OnSwitch: func(mode model.Mode) {
				_ = keeper.SwitchMode(mode)
			},
			OnPreferences: func() {
				prefsWindow.Show(keeper.Config())
			},
			OnQuit: quit,
		})
		updateTray := func(state timekeeper.State) {
			trayManager.SetState(state)
			switch {
			case !state.Running:
				desktopApp.SetSystemTrayIcon(pausedIcon)
			case state.Mode == model.ModeFocus:
				desktopApp.SetSystemTrayIcon(activeIcon)
			default:
				desktopApp.SetSystemTrayIcon(breakIcon)
			}
		}
		keeper.AddListener(func(event timekeeper.Event) {
			state := event.State
			fyne.Do(func() { updateTray(state) })
		})
		updateTray(keeper.Snapshot())
		timerWindow.Window().SetCloseIntercept(timerWindow.Window().Hide)
	} else {
		logger.Warn("system tray unsupported on this platform")
		timerWindow.Window().SetCloseIntercept(quit)
	}

	guard.OnActivate(func() {
		fyne.Do(timerWindow.Show)
	})
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(quit)
		case <-done:
		}
	}()

	timerWindow.HandleEvent(timekeeper.Event{State: keeper.Snapshot()})
	timerWindow.Show()
	fyneApp.Run()

	logger.Info("desktop timer stopped")
	return nil
}
