package slidingwindow

import (
	"github.com/vk/codegrid/internal/bind"
	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register binds the sliding_window stack across the whole field catalog.
func (m *Module) Register(r *registry.Registry) error {
	kind := coding.SlidingWindow()
	if err := bind.CreateEncoder(r, kind); err != nil {
		return err
	}
	return bind.CreateDecoder(r, kind)
}
