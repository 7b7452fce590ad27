package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/firmgen/internal/ctxlog"
)

// App encapsulates one invocation's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New builds an App with its own isolated logger.
func New(outW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, outW),
		config: cfg,
	}
}

// Config returns the invocation configuration. Primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

// withLogger installs the app logger on the context for downstream stages.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
