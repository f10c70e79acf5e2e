package coding

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vk/codegrid/internal/gf"
)

// Factory builds coder instances for one fully resolved (kind, field,
// capability) combination. A factory only ever builds coders of its own
// combination; the binding layer relies on that to keep registered encoder
// and decoder types from being constructed through a foreign factory.
type Factory struct {
	kind       *Kind
	field      gf.Field
	caps       CapabilitySet
	symbols    int
	symbolSize int
	seed       int64
	seeded     bool
}

// NewFactory validates the coding parameters and returns a factory for the
// given combination.
func NewFactory(kind *Kind, field gf.Field, caps CapabilitySet, symbols, symbolSize int) (*Factory, error) {
	if symbols <= 0 {
		return nil, fmt.Errorf("symbols must be positive, got %d", symbols)
	}
	if symbolSize <= 0 {
		return nil, fmt.Errorf("symbol_size must be positive, got %d", symbolSize)
	}
	if symbolSize%field.Granularity() != 0 {
		return nil, fmt.Errorf("symbol_size %d is not a multiple of the %s element size %d",
			symbolSize, field.Type(), field.Granularity())
	}
	return &Factory{
		kind:       kind,
		field:      field,
		caps:       caps,
		symbols:    symbols,
		symbolSize: symbolSize,
	}, nil
}

func (f *Factory) Kind() *Kind                 { return f.kind }
func (f *Factory) Field() gf.Field             { return f.field }
func (f *Factory) Capabilities() CapabilitySet { return f.caps }
func (f *Factory) Symbols() int                { return f.symbols }
func (f *Factory) SymbolSize() int             { return f.symbolSize }

func (f *Factory) PayloadSize() int {
	return f.field.CoefficientBytes(f.symbols) + f.symbolSize
}

// SetSeed pins the coefficient generator seed so encoder output is
// reproducible. Without it every built encoder gets a fresh time-derived
// seed.
func (f *Factory) SetSeed(seed int64) {
	f.seed = seed
	f.seeded = true
}

func (f *Factory) rng() *rand.Rand {
	if f.seeded {
		return rand.New(rand.NewSource(f.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewEncoder builds an encoder, wrapped with whatever capabilities the
// factory's combination composes.
func (f *Factory) NewEncoder() (Encoder, error) {
	if !f.kind.Encodes {
		return nil, fmt.Errorf("stack %q does not support encoding", f.kind.Name)
	}
	enc := f.kind.NewEncoder(f.field, f.symbols, f.symbolSize, f.rng())
	if f.caps.Has(Trace) {
		enc = newTraceEncoder(enc)
	}
	return enc, nil
}

// NewDecoder builds a decoder, wrapped with whatever capabilities the
// factory's combination composes.
func (f *Factory) NewDecoder() (Decoder, error) {
	if !f.kind.Decodes {
		return nil, fmt.Errorf("stack %q does not support decoding", f.kind.Name)
	}
	dec := f.kind.NewDecoder(f.field, f.symbols, f.symbolSize)
	if f.caps.Has(Trace) {
		dec = newTraceDecoder(dec)
	}
	return dec, nil
}
