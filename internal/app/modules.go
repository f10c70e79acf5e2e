package app

import (
	"github.com/vk/codegrid/internal/registry"
	"github.com/vk/codegrid/stacks/fullvector"
	"github.com/vk/codegrid/stacks/onthefly"
	"github.com/vk/codegrid/stacks/slidingwindow"
)

// coreModules is the definitive list of all stack modules that are
// compiled into the codegrid binary.
var coreModules = []registry.Module{
	&fullvector.Module{},
	&onthefly.Module{},
	&slidingwindow.Module{},
}
