package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pomodoro/internal/alert"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/tui"
)

const tuiCommandName = "tui"

func newTUICommand(cli *invocation) *cobra.Command {
	return &cobra.Command{
		Use:   tuiCommandName,
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, path, err := cli.loadSettings()
			if err != nil {
				return err
			}
			cli.logger.Info("starting terminal timer", "settings", path, "log_file", cli.runtime.Path())

			keeper, err := timekeeper.New(config, timekeeper.Options{
				AdvanceDelay: cli.advanceDelay,
				Logger:       cli.logger,
			})
			if err != nil {
				return err
			}
			defer keeper.Close()

			program := tui.NewProgram(cmd.Context(), keeper, tui.Options{}, tea.WithAltScreen())
			alerter := alert.New(alert.Options{
				Chimer: alert.NewBell(cmd.ErrOrStderr()),
				Config: keeper.Config,
				Toast:  program.Toast,
				Logger: cli.logger,
			})
			keeper.AddListener(alerter.Listener())

			return program.Run()
		},
	}
}
