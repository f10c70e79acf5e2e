package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/codegrid/internal/ctxlog"
)

// Validate performs a parity check over the populated registry: every
// registered coder type must have a sibling factory for the same (stack,
// field, capability) combination and role, since a coder can only be
// constructed through such a factory. Registration order guarantees this
// when the registrar is used correctly; the check catches hand-rolled
// modules that bind coders directly.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for name, bt := range r.types {
		if bt.Role == RoleFactory {
			continue
		}
		if !r.hasFactoryFor(bt) {
			errs = append(errs, fmt.Sprintf(
				"coder type %q has no registered factory for stack %q, field %s, capabilities %s",
				name, bt.Stack, bt.Field, bt.Capabilities))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "types", len(r.types))
	return nil
}

func (r *Registry) hasFactoryFor(coder *BoundType) bool {
	for _, bt := range r.types {
		if bt.Role != RoleFactory {
			continue
		}
		if bt.Stack == coder.Stack &&
			bt.Field == coder.Field &&
			bt.Capabilities == coder.Capabilities &&
			bt.Builds == coder.Role {
			return true
		}
	}
	return false
}
