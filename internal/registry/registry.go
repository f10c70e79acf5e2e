package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrDuplicateName is returned when a registration reuses a name already
// present in the registry. Correct registration bursts enumerate the
// (stack, field, capability) space without repetition, so hitting this is
// a programming error in the caller, not a runtime condition.
var ErrDuplicateName = errors.New("type name already registered")

// ErrNotFound is returned by Lookup for names no registration produced.
var ErrNotFound = errors.New("no type registered under name")

// Module is the interface all stack modules implement to be registered.
type Module interface {
	Register(r *Registry) error
}

// Registry holds every bound coder type for a single application
// instance. It is populated during startup and read-only afterwards, so no
// locking is needed.
type Registry struct {
	types map[string]*BoundType
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		types: make(map[string]*BoundType),
	}
}

// Register inserts a bound type under its external name. Existing entries
// are never replaced; a name collision leaves the registry untouched and
// returns ErrDuplicateName.
func (r *Registry) Register(bt *BoundType) error {
	if bt.Name == "" {
		return errors.New("bound type has an empty name")
	}
	if _, exists := r.types[bt.Name]; exists {
		return fmt.Errorf("%q: %w", bt.Name, ErrDuplicateName)
	}
	slog.Debug("Registering bound type.", "name", bt.Name, "role", bt.Role)
	r.types[bt.Name] = bt
	return nil
}

// Lookup resolves an external name to its bound type.
func (r *Registry) Lookup(name string) (*BoundType, error) {
	bt, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return bt, nil
}

// Names returns every registered external name, sorted. This is the
// discovery surface host-side tooling enumerates.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered bound types.
func (r *Registry) Len() int {
	return len(r.types)
}
