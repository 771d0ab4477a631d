package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/krkit/pkg/logger"
)

// Config is read from the environment (and .env) at startup.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	MaskType int    `env:"KRKIT_MASK_TYPE" envDefault:"1"`
}

// errInvalidInput is returned when at least one argument fails validation.
var errInvalidInput = errors.New("invalid input")

type commandKey struct{}

type app struct {
	cfg Config
	log *slog.Logger
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:          "krkit",
		Short:        "Korean registration number and phone number utilities",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd)
		},
	}

	root.AddCommand(
		newCheckCmd(a),
		newMaskCmd(a),
		newPhoneCmd(a),
	)

	return root
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	opts := []logger.Option{
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithEnvironment(a.cfg.Env, "krkit"),
		logger.WithContextValue("command", commandKey{}),
	}
	if a.cfg.LogLevel != "" {
		level, err := logger.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	a.log = logger.New(opts...)
	return nil
}

// commandContext tags the command context so every log line carries the
// subcommand name.
func (a *app) commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, commandKey{}, cmd.Name())
}
