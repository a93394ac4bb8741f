package cli

import (
	"context"

	"github.com/thenoetrevino/hireboard/internal/config"
)

type contextKey struct{}

type configKey struct{}

// WithCLI stores an already built CLI in ctx. Commands run under ctx use
// it instead of building their own, and leave closing it to the caller.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// WithConfig stores the loaded config for commands that build a CLI
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the config stored by WithConfig, or nil
func ConfigFromContext(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

// GetCLIFromContext returns the CLI stored in ctx, or builds one from the
// config in ctx. The release func closes only what this call built.
func GetCLIFromContext(ctx context.Context) (*CLI, func(), error) {
	if c, ok := ctx.Value(contextKey{}).(*CLI); ok && c != nil {
		return c, func() {}, nil
	}

	c, err := NewCLI(ctx, ConfigFromContext(ctx))
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Close() }, nil
}
