package coding

import (
	"math/rand"

	"github.com/vk/codegrid/internal/gf"
)

// Kind describes one family of coding stacks. A kind declares which roles
// it supports and knows how to build its base (capability-free) coders for
// any field; the binding layer instantiates every kind against the full
// field catalog.
type Kind struct {
	// Name is the stack identifier used in registered type names.
	Name string

	// Encodes and Decodes declare the roles this kind supports.
	Encodes bool
	Decodes bool

	// NewEncoder builds the base encoder. Only set when Encodes is true.
	NewEncoder func(f gf.Field, symbols, symbolSize int, rng *rand.Rand) Encoder

	// NewDecoder builds the base decoder. Only set when Decodes is true.
	NewDecoder func(f gf.Field, symbols, symbolSize int) Decoder
}

// FullVector returns the dense RLNC stack: every coded symbol mixes all
// source symbols, preceded by one systematic pass.
func FullVector() *Kind {
	return &Kind{
		Name:    "full_vector",
		Encodes: true,
		Decodes: true,
		NewEncoder: func(f gf.Field, symbols, symbolSize int, rng *rand.Rand) Encoder {
			return newFullVectorEncoder(f, symbols, symbolSize, rng)
		},
		NewDecoder: func(f gf.Field, symbols, symbolSize int) Decoder {
			return newDecoder(f, symbols, symbolSize)
		},
	}
}

// OnTheFly returns the streaming stack: symbols may be added while
// encoding is already underway, and coded symbols mix only what has been
// added so far.
func OnTheFly() *Kind {
	return &Kind{
		Name:    "on_the_fly",
		Encodes: true,
		Decodes: true,
		NewEncoder: func(f gf.Field, symbols, symbolSize int, rng *rand.Rand) Encoder {
			return newOnTheFlyEncoder(f, symbols, symbolSize, rng)
		},
		NewDecoder: func(f gf.Field, symbols, symbolSize int) Decoder {
			return newDecoder(f, symbols, symbolSize)
		},
	}
}

// SlidingWindow returns the windowed stack: each coded symbol mixes a
// bounded random window of the available symbols, keeping per-symbol
// coding cost constant for large blocks.
func SlidingWindow() *Kind {
	return &Kind{
		Name:    "sliding_window",
		Encodes: true,
		Decodes: true,
		NewEncoder: func(f gf.Field, symbols, symbolSize int, rng *rand.Rand) Encoder {
			return newSlidingWindowEncoder(f, symbols, symbolSize, rng)
		},
		NewDecoder: func(f gf.Field, symbols, symbolSize int) Decoder {
			return newDecoder(f, symbols, symbolSize)
		},
	}
}
