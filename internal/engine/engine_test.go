package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/codegrid/internal/bind"
	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/registry"
	"github.com/vk/codegrid/internal/schema"
)

func populatedRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	for _, kind := range []*coding.Kind{coding.FullVector(), coding.OnTheFly(), coding.SlidingWindow()} {
		require.NoError(t, bind.CreateEncoder(r, kind))
		require.NoError(t, bind.CreateDecoder(r, kind))
	}
	return r
}

func seededRun(name, stack, field string) *schema.Run {
	seed := int64(1234)
	return &schema.Run{
		Name:       name,
		Stack:      stack,
		Field:      field,
		Symbols:    8,
		SymbolSize: 32,
		LossRate:   0.2,
		Seed:       &seed,
	}
}

func TestEngine_RunExecutesAllBlocks(t *testing.T) {
	t.Parallel()

	eng := New(populatedRegistry(t))
	grid := &schema.GridConfig{Runs: []*schema.Run{
		seededRun("fv", "full_vector", "binary8"),
		seededRun("otf", "on_the_fly", "binary"),
		seededRun("sw", "sliding_window", "binary16"),
	}}

	assert.NoError(t, eng.Run(context.Background(), grid))
}

func TestEngine_EmptyGridIsANoOp(t *testing.T) {
	t.Parallel()

	eng := New(populatedRegistry(t))
	assert.NoError(t, eng.Run(context.Background(), &schema.GridConfig{}))
}

func TestEngine_UnknownStackFailsLookup(t *testing.T) {
	t.Parallel()

	eng := New(populatedRegistry(t))
	grid := &schema.GridConfig{Runs: []*schema.Run{
		seededRun("bad", "perpetual", "binary8"),
	}}

	err := eng.Run(context.Background(), grid)
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.Contains(t, err.Error(), `run "bad" failed`)
}

func TestEngine_UnknownFieldFails(t *testing.T) {
	t.Parallel()

	eng := New(populatedRegistry(t))
	grid := &schema.GridConfig{Runs: []*schema.Run{
		seededRun("bad", "full_vector", "binary32"),
	}}

	assert.ErrorContains(t, eng.Run(context.Background(), grid), "unknown field type")
}

func TestEngine_LossRateOutOfRange(t *testing.T) {
	t.Parallel()

	run := seededRun("bad", "full_vector", "binary8")
	run.LossRate = 1.0

	eng := New(populatedRegistry(t))
	err := eng.Run(context.Background(), &schema.GridConfig{Runs: []*schema.Run{run}})
	assert.ErrorContains(t, err, "loss_rate")
}

func TestEngine_InvalidSymbolSizePropagatesFactoryError(t *testing.T) {
	t.Parallel()

	// binary16 elements are two bytes; an odd symbol size must be
	// rejected by the factory and surface unchanged.
	run := seededRun("bad", "full_vector", "binary16")
	run.SymbolSize = 31

	eng := New(populatedRegistry(t))
	err := eng.Run(context.Background(), &schema.GridConfig{Runs: []*schema.Run{run}})
	assert.ErrorContains(t, err, "not a multiple")
}
