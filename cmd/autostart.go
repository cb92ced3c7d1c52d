package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pomodoro/internal/platform"
)

func newAutostartCommand(cli *invocation) *cobra.Command {
	autostartCmd := &cobra.Command{
		Use:   "autostart",
		Short: "Launch the desktop timer at login",
	}

	enable := &cobra.Command{
		Use:   "enable",
		Short: "Register this executable as a login item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}
			if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
				execPath = resolved
			}
			if err := platform.NewAutostart(appName).Enable(execPath); err != nil {
				return err
			}
			cli.logger.Info("autostart enabled", "exec", execPath)
			fmt.Fprintln(cmd.OutOrStdout(), "autostart enabled")
			return nil
		},
	}

	disable := &cobra.Command{
		Use:   "disable",
		Short: "Remove the login item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := platform.NewAutostart(appName).Disable(); err != nil {
				return err
			}
			cli.logger.Info("autostart disabled")
			fmt.Fprintln(cmd.OutOrStdout(), "autostart disabled")
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Report whether the login item is registered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enabled, err := platform.NewAutostart(appName).Enabled()
			if err != nil {
				return err
			}
			if enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "enabled")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "disabled")
			}
			return nil
		},
	}

	autostartCmd.AddCommand(enable, disable, status)
	return autostartCmd
}
