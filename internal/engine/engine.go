package engine

import (
	"context"
	"fmt"

	"github.com/vk/codegrid/internal/ctxlog"
	"github.com/vk/codegrid/internal/registry"
	"github.com/vk/codegrid/internal/schema"
)

// Engine drives grid runs against a populated registry.
type Engine struct {
	registry *registry.Registry
}

// New returns an engine bound to the given registry.
func New(r *registry.Registry) *Engine {
	return &Engine{registry: r}
}

// Run executes every run block in the grid, sequentially and fail-fast.
func (e *Engine) Run(ctx context.Context, grid *schema.GridConfig) error {
	logger := ctxlog.FromContext(ctx)

	if len(grid.Runs) == 0 {
		logger.Warn("No run blocks found in grid, nothing to execute.")
		return nil
	}

	for _, run := range grid.Runs {
		if err := e.executeRun(ctx, run); err != nil {
			return fmt.Errorf("run %q failed: %w", run.Name, err)
		}
	}
	return nil
}
