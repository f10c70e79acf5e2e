package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/codegrid/internal/gf"
)

func TestNewFactory_Validation(t *testing.T) {
	t.Parallel()

	field := gf.New(gf.Binary8)

	_, err := NewFactory(FullVector(), field, 0, 0, 8)
	assert.ErrorContains(t, err, "symbols must be positive")

	_, err = NewFactory(FullVector(), field, 0, 4, 0)
	assert.ErrorContains(t, err, "symbol_size must be positive")

	// binary16 elements are two bytes wide; odd symbol sizes cannot hold
	// a whole number of them.
	_, err = NewFactory(FullVector(), gf.New(gf.Binary16), 0, 4, 7)
	assert.ErrorContains(t, err, "not a multiple")
}

func TestFactory_RoleChecks(t *testing.T) {
	t.Parallel()

	encodeOnly := &Kind{Name: "encode_only", Encodes: true}
	encodeOnly.NewEncoder = FullVector().NewEncoder

	factory, err := NewFactory(encodeOnly, gf.New(gf.Binary8), 0, 4, 8)
	require.NoError(t, err)

	_, err = factory.NewEncoder()
	require.NoError(t, err)

	_, err = factory.NewDecoder()
	assert.ErrorContains(t, err, "does not support decoding")
}

func TestFactory_SeededEncodersAreReproducible(t *testing.T) {
	t.Parallel()

	factory, err := NewFactory(FullVector(), gf.New(gf.Binary8), 0, 4, 8)
	require.NoError(t, err)
	factory.SetSeed(99)

	source := make([]byte, 4*8)
	for i := range source {
		source[i] = byte(i)
	}

	var payloads [2][]byte
	for i := range payloads {
		enc, err := factory.NewEncoder()
		require.NoError(t, err)
		require.NoError(t, enc.SetSymbols(source))
		// Skip the systematic pass to reach the random phase.
		for j := 0; j < 4; j++ {
			_, err := enc.Encode()
			require.NoError(t, err)
		}
		payloads[i], err = enc.Encode()
		require.NoError(t, err)
	}

	assert.Equal(t, payloads[0], payloads[1])
}

func TestFactory_Accessors(t *testing.T) {
	t.Parallel()

	factory, err := NewFactory(FullVector(), gf.New(gf.Binary4), Compose(Trace), 10, 16)
	require.NoError(t, err)

	assert.Equal(t, "full_vector", factory.Kind().Name)
	assert.Equal(t, gf.Binary4, factory.Field().Type())
	assert.True(t, factory.Capabilities().Has(Trace))
	assert.Equal(t, 10, factory.Symbols())
	assert.Equal(t, 16, factory.SymbolSize())
	// 10 nibble coefficients pack into 5 bytes.
	assert.Equal(t, 5+16, factory.PayloadSize())
}
