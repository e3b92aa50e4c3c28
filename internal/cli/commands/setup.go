// Package commands implements the olivctl subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/olivos-dev/olivctl/internal/account"
	"github.com/olivos-dev/olivctl/internal/adapter"
	"github.com/olivos-dev/olivctl/internal/cli/config"
	"github.com/olivos-dev/olivctl/internal/cli/output"
	"github.com/spf13/cobra"
)

// configKey is used to store config in context.
type configKey struct{}

// WithConfig stores the resolved configuration on the context so every
// command in the tree sees the same settings.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// getConfig returns the configuration from the context, or defaults when
// the root command never loaded one (tests constructing commands directly).
func getConfig(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		RootPath: config.DefaultRootPath,
		Output:   config.DefaultOutput,
	}
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Registry *adapter.Registry
	Store    *account.Store
}

// NewCommandContext wires the store, registry and renderer for a command
// invocation from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig(cmd.Context())

	logger := slog.New(slog.DiscardHandler)
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
		Registry: adapter.Default(),
		Store:    account.NewStore(cfg.AccountPath(), logger),
	}
}
