package app

import (
	"context"
	"fmt"

	"github.com/vk/codegrid/internal/ctxlog"
	"github.com/vk/codegrid/internal/engine"
	"github.com/vk/codegrid/internal/hclgrid"
)

// Run executes the main application logic based on the provided
// configuration: either list the registered type names, or load the grid
// and execute its runs.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if cfg.ListTypes {
		for _, name := range a.registry.Names() {
			fmt.Fprintln(a.outW, name)
		}
		return nil
	}

	grid, err := hclgrid.Load(ctx, cfg.GridPath)
	if err != nil {
		return fmt.Errorf("failed to load grid: %w", err)
	}
	a.logger.Debug("Grid loaded.", "runs", len(grid.Runs))

	a.logger.Info("Bound types registered:", "count", a.registry.Len())

	eng := engine.New(a.registry)
	if err := eng.Run(ctx, grid); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
