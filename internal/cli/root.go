// Package cli defines the command-line interface of the riot binary.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	envparse "github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/andewx/riot/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	LogLevel   logging.Level
}

// rootEnv supplies root flag defaults from RIOT_* variables.
type rootEnv struct {
	ConfigPath string `env:"RIOT_CONFIG"`
}

// Execute builds the root command, runs it with args and returns any error.
// An interrupt cancels the command context, which ends the game loop.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	var env rootEnv
	if err := envparse.Parse(&env); err != nil {
		return err
	}
	opts := &Options{ConfigPath: env.ConfigPath, LogLevel: logging.LevelInfo}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCommand(opts, logger)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "riot",
		Short:         "riot runs the riot render engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", opts.ConfigPath, "Path to a riot.yaml configuration file")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newRunCommand(opts),
		newProbeCommand(opts),
	)
	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
