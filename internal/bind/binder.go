package bind

import (
	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/gf"
	"github.com/vk/codegrid/internal/registry"
)

// bindFactory registers the factory type for one combination. builds
// names the coder role the factory's products construct and selects the
// direction-qualified name.
func bindFactory(r *registry.Registry, kind *coding.Kind, ft gf.Type, caps coding.CapabilitySet, builds registry.Role) error {
	name := EncoderFactoryName(kind.Name, ft, caps)
	if builds == registry.RoleDecoder {
		name = DecoderFactoryName(kind.Name, ft, caps)
	}
	return r.Register(&registry.BoundType{
		Name:         name,
		Role:         registry.RoleFactory,
		Stack:        kind.Name,
		Field:        ft,
		Capabilities: caps,
		Builds:       builds,
		NewFactory: func(symbols, symbolSize int) (*coding.Factory, error) {
			return coding.NewFactory(kind, gf.New(ft), caps, symbols, symbolSize)
		},
	})
}

// bindEncoder registers the encoder type for one combination. The factory
// for the same combination must already be bound; the registrar's call
// order guarantees that.
func bindEncoder(r *registry.Registry, kind *coding.Kind, ft gf.Type, caps coding.CapabilitySet) error {
	bt := &registry.BoundType{
		Name:         EncoderName(kind.Name, ft, caps),
		Role:         registry.RoleEncoder,
		Stack:        kind.Name,
		Field:        ft,
		Capabilities: caps,
	}
	bt.NewEncoder = func(f *coding.Factory) (coding.Encoder, error) {
		if err := bt.Matches(f); err != nil {
			return nil, err
		}
		return f.NewEncoder()
	}
	return r.Register(bt)
}

// bindDecoder registers the decoder type for one combination.
func bindDecoder(r *registry.Registry, kind *coding.Kind, ft gf.Type, caps coding.CapabilitySet) error {
	bt := &registry.BoundType{
		Name:         DecoderName(kind.Name, ft, caps),
		Role:         registry.RoleDecoder,
		Stack:        kind.Name,
		Field:        ft,
		Capabilities: caps,
	}
	bt.NewDecoder = func(f *coding.Factory) (coding.Decoder, error) {
		if err := bt.Matches(f); err != nil {
			return nil, err
		}
		return f.NewDecoder()
	}
	return r.Register(bt)
}
