package bind

import (
	"errors"
	"fmt"

	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/gf"
	"github.com/vk/codegrid/internal/registry"
)

// ErrUnsupportedRole is returned when an entry point is invoked for a
// stack kind that does not support the requested role. No registrations
// are performed in that case.
var ErrUnsupportedRole = errors.New("stack kind does not support role")

// CreateEncoder binds the encoder side of a stack kind: for each field
// type in the catalog, first the factory, then the encoder, all carrying
// the composed capability set.
func CreateEncoder(r *registry.Registry, kind *coding.Kind) error {
	if !kind.Encodes {
		return fmt.Errorf("%q cannot encode: %w", kind.Name, ErrUnsupportedRole)
	}
	caps := Capabilities()
	return eachField(func(ft gf.Type) error {
		if err := bindFactory(r, kind, ft, caps, registry.RoleEncoder); err != nil {
			return err
		}
		return bindEncoder(r, kind, ft, caps)
	})
}

// CreateDecoder binds the decoder side of a stack kind, symmetric to
// CreateEncoder.
func CreateDecoder(r *registry.Registry, kind *coding.Kind) error {
	if !kind.Decodes {
		return fmt.Errorf("%q cannot decode: %w", kind.Name, ErrUnsupportedRole)
	}
	caps := Capabilities()
	return eachField(func(ft gf.Type) error {
		if err := bindFactory(r, kind, ft, caps, registry.RoleDecoder); err != nil {
			return err
		}
		return bindDecoder(r, kind, ft, caps)
	})
}

// eachField drives the generation callback across the closed field
// catalog in its fixed order, stopping at the first error.
func eachField(fn func(gf.Type) error) error {
	for _, ft := range gf.Catalog() {
		if err := fn(ft); err != nil {
			return err
		}
	}
	return nil
}
