package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/model"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

const appName = "Pomodoro"

// Version is set at build time.
var Version = "dev"

const defaultAdvanceDelay = 900 * time.Millisecond

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cli := &invocation{}
	cmd := newRootCommand(cli)
	cmd.SetArgs(args)
	defer cli.closeLogger()
	return cmd.ExecuteContext(ctx)
}

// invocation holds the global flags and the per-invocation logger.
type invocation struct {
	configPath   string
	logLevel     string
	advanceDelay time.Duration

	logger  *log.Logger
	runtime *logging.RuntimeLogger
}

func newRootCommand(cli *invocation) *cobra.Command {
	root := &cobra.Command{
		Use:           "pomodoro",
		Short:         "Pomodoro focus timer",
		Long:          "Pomodoro runs focus intervals and short/long breaks. Without a subcommand it opens the desktop timer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd, cli)
		},
	}
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	flags := root.PersistentFlags()
	flags.StringVar(&cli.configPath, "config", "", "settings file (default <user config dir>/Pomodoro/settings.yaml)")
	flags.StringVar(&cli.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.DurationVar(&cli.advanceDelay, "advance-delay", defaultAdvanceDelay, "pause after an interval completes before the next one is loaded")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if cli.advanceDelay < 0 {
			return fmt.Errorf("advance delay must not be negative, got %s", cli.advanceDelay)
		}
		if err := cli.openLogger(cmd); err != nil {
			return err
		}
		cli.logger.With("command", cmd.Name()).Debug("command invocation")
		return nil
	}

	root.AddCommand(newTUICommand(cli), newConfigCommand(cli), newAutostartCommand(cli))
	return root
}

func (cli *invocation) openLogger(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(cli.logLevel)
	if err != nil {
		return err
	}

	options := []logging.Option{logging.WithLevel(level), logging.WithWriter(cmd.ErrOrStderr())}
	if cmd.Name() == tuiCommandName {
		configDir, err := platform.ConfigDir(appName)
		if err != nil {
			return fmt.Errorf("resolve log directory: %w", err)
		}
		options = append(options, logging.WithFileDir(filepath.Join(configDir, "logs")))
	}

	runtime, err := logging.New(options...)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	cli.runtime = runtime
	cli.logger = runtime.Logger
	return nil
}

func (cli *invocation) closeLogger() {
	if err := cli.runtime.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close logger: %v\n", err)
	}
}

func (cli *invocation) settingsPath() (string, error) {
	if cli.configPath != "" {
		return cli.configPath, nil
	}
	return storage.ResolveConfigPath(appName)
}

// loadSettings returns the persisted config and the file it came from.
func (cli *invocation) loadSettings() (model.Config, string, error) {
	path, err := cli.settingsPath()
	if err != nil {
		return model.Config{}, "", err
	}
	config, err := storage.LoadSettings(path, cli.logger)
	if err != nil {
		return model.Config{}, path, fmt.Errorf("load settings: %w", err)
	}
	return config, path, nil
}
