package bind

import (
	"strings"

	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/gf"
)

// Registered names follow <stack>_<field>_<role>[_<capability tags>].
// The derivation is deterministic and lossless: two distinct combinations
// never collide, and the same combination always yields the same name
// across runs. Factory names carry the coder role they build for, because
// a kind supporting both directions binds one factory per direction per
// field.

func boundName(stack string, ft gf.Type, role string, caps coding.CapabilitySet) string {
	parts := []string{stack, ft.String(), role}
	if tag := caps.Tag(); tag != "" {
		parts = append(parts, tag)
	}
	return strings.Join(parts, "_")
}

// EncoderFactoryName derives the registered name of the encoder-side
// factory for a combination.
func EncoderFactoryName(stack string, ft gf.Type, caps coding.CapabilitySet) string {
	return boundName(stack, ft, "encoder_factory", caps)
}

// DecoderFactoryName derives the registered name of the decoder-side
// factory for a combination.
func DecoderFactoryName(stack string, ft gf.Type, caps coding.CapabilitySet) string {
	return boundName(stack, ft, "decoder_factory", caps)
}

// EncoderName derives the registered name of the encoder for a combination.
func EncoderName(stack string, ft gf.Type, caps coding.CapabilitySet) string {
	return boundName(stack, ft, "encoder", caps)
}

// DecoderName derives the registered name of the decoder for a combination.
func DecoderName(stack string, ft gf.Type, caps coding.CapabilitySet) string {
	return boundName(stack, ft, "decoder", caps)
}
