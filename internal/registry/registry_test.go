package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/gf"
)

func factoryType(name string, builds Role) *BoundType {
	return &BoundType{
		Name:         name,
		Role:         RoleFactory,
		Stack:        "full_vector",
		Field:        gf.Binary8,
		Capabilities: coding.Compose(coding.Trace),
		Builds:       builds,
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	bt := factoryType("full_vector_binary8_encoder_factory_trace", RoleEncoder)
	require.NoError(t, r.Register(bt))

	got, err := r.Lookup(bt.Name)
	require.NoError(t, err)
	assert.Same(t, bt, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_DuplicateIsRejectedWithoutOverwrite(t *testing.T) {
	t.Parallel()

	r := New()
	first := factoryType("full_vector_binary8_encoder_factory_trace", RoleEncoder)
	require.NoError(t, r.Register(first))

	second := factoryType("full_vector_binary8_encoder_factory_trace", RoleEncoder)
	err := r.Register(second)
	require.ErrorIs(t, err, ErrDuplicateName)

	// The original entry must survive untouched.
	got, lookupErr := r.Lookup(first.Name)
	require.NoError(t, lookupErr)
	assert.Same(t, first, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_EmptyNameRejected(t *testing.T) {
	t.Parallel()

	r := New()
	assert.Error(t, r.Register(&BoundType{Role: RoleFactory}))
}

func TestRegistry_LookupUnknownName(t *testing.T) {
	t.Parallel()

	r := New()
	_, err := r.Lookup("no_such_type")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_NamesAreSorted(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Register(factoryType("zeta", RoleEncoder)))
	require.NoError(t, r.Register(factoryType("alpha", RoleEncoder)))

	assert.Equal(t, []string{"alpha", "zeta"}, r.Names())
}

func TestValidate_CoderWithoutFactoryFails(t *testing.T) {
	t.Parallel()

	r := New()
	coder := &BoundType{
		Name:         "full_vector_binary8_encoder_trace",
		Role:         RoleEncoder,
		Stack:        "full_vector",
		Field:        gf.Binary8,
		Capabilities: coding.Compose(coding.Trace),
	}
	require.NoError(t, r.Register(coder))

	err := r.Validate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no registered factory")

	// Adding the matching factory fixes the parity check.
	require.NoError(t, r.Register(factoryType("full_vector_binary8_encoder_factory_trace", RoleEncoder)))
	assert.NoError(t, r.Validate(context.Background()))
}

func TestBoundType_MatchesRejectsForeignFactory(t *testing.T) {
	t.Parallel()

	kind := coding.FullVector()
	caps := coding.Compose(coding.Trace)
	bt := &BoundType{
		Name:         "full_vector_binary8_encoder_trace",
		Role:         RoleEncoder,
		Stack:        kind.Name,
		Field:        gf.Binary8,
		Capabilities: caps,
	}

	same, err := coding.NewFactory(kind, gf.New(gf.Binary8), caps, 4, 8)
	require.NoError(t, err)
	assert.NoError(t, bt.Matches(same))

	wrongField, err := coding.NewFactory(kind, gf.New(gf.Binary4), caps, 4, 8)
	require.NoError(t, err)
	assert.ErrorContains(t, bt.Matches(wrongField), "field")

	wrongStack, err := coding.NewFactory(coding.OnTheFly(), gf.New(gf.Binary8), caps, 4, 8)
	require.NoError(t, err)
	assert.ErrorContains(t, bt.Matches(wrongStack), "stack")

	wrongCaps, err := coding.NewFactory(kind, gf.New(gf.Binary8), 0, 4, 8)
	require.NoError(t, err)
	assert.ErrorContains(t, bt.Matches(wrongCaps), "capabilities")
}
