package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/codegrid/internal/ctxlog"
	"github.com/vk/codegrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: an isolated logger and a registry populated from the compiled
// stack modules.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// New is the constructor for the main application. Registration happens
// here, strictly before any coding run: each stack module fans out across
// the field catalog and binds its factory and coder types. A registration
// or validation failure is a programmer error (the combination space is
// enumerated exhaustively by construction), so it panics rather than
// returning.
func New(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			panic(fmt.Errorf("stack module registration failed: %w", err))
		}
	}
	logger.Debug("All stack modules registered.", "modules", len(modules), "types", reg.Len())

	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for
// testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
