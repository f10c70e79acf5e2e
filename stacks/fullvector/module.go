package fullvector

import (
	"github.com/vk/codegrid/internal/bind"
	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register binds the full_vector stack across the whole field catalog,
// encoder side then decoder side.
func (m *Module) Register(r *registry.Registry) error {
	kind := coding.FullVector()
	if err := bind.CreateEncoder(r, kind); err != nil {
		return err
	}
	return bind.CreateDecoder(r, kind)
}
