package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pomodoro/internal/storage"
)

func newConfigCommand(cli *invocation) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the persisted timer settings",
	}
	configCmd.AddCommand(newConfigShowCommand(cli), newConfigSetCommand(cli), newConfigPathCommand(cli))
	return configCmd
}

func newConfigShowCommand(cli *invocation) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, _, err := cli.loadSettings()
			if err != nil {
				return err
			}
			serialized, err := yaml.Marshal(config)
			if err != nil {
				return fmt.Errorf("marshal settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(serialized)
			return err
		},
	}
}

func newConfigSetCommand(cli *invocation) *cobra.Command {
	var (
		focus       int
		shortBreak  int
		longBreak   int
		autoAdvance bool
		sound       bool
	)

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Validate and save settings; omitted flags keep their current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, path, err := cli.loadSettings()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("focus") {
				config.FocusMinutes = focus
			}
			if flags.Changed("short") {
				config.ShortBreakMinutes = shortBreak
			}
			if flags.Changed("long") {
				config.LongBreakMinutes = longBreak
			}
			if flags.Changed("auto-advance") {
				config.AutoAdvance = autoAdvance
			}
			if flags.Changed("sound") {
				config.SoundEnabled = sound
			}

			if err := storage.SaveSettings(path, config); err != nil {
				return err
			}
			cli.logger.Info("settings saved", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			return nil
		},
	}

	flags := setCmd.Flags()
	flags.IntVar(&focus, "focus", 0, "focus interval in minutes")
	flags.IntVar(&shortBreak, "short", 0, "short break in minutes")
	flags.IntVar(&longBreak, "long", 0, "long break in minutes")
	flags.BoolVar(&autoAdvance, "auto-advance", false, "start the next interval automatically")
	flags.BoolVar(&sound, "sound", false, "play a chime when an interval completes")
	return setCmd
}

func newConfigPathCommand(cli *invocation) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cli.settingsPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
