package registry

import (
	"fmt"

	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/gf"
)

// Role tags what a bound type constructs.
type Role string

const (
	RoleFactory Role = "factory"
	RoleEncoder Role = "encoder"
	RoleDecoder Role = "decoder"
)

// BoundType is the registered artifact for one (stack, field, capability)
// combination and role. The constructor closures are filled in per role:
// a factory type builds configured coding.Factory values, a coder type
// builds its runnable coder through a factory of the same combination.
type BoundType struct {
	Name         string
	Role         Role
	Stack        string
	Field        gf.Type
	Capabilities coding.CapabilitySet

	// Builds is set for RoleFactory and names the coder role this
	// factory's products construct.
	Builds Role

	// NewFactory is set for RoleFactory.
	NewFactory func(symbols, symbolSize int) (*coding.Factory, error)

	// NewEncoder is set for RoleEncoder, NewDecoder for RoleDecoder.
	// Both reject a factory whose combination differs from the bound
	// type's own.
	NewEncoder func(f *coding.Factory) (coding.Encoder, error)
	NewDecoder func(f *coding.Factory) (coding.Decoder, error)
}

// Matches reports whether a factory carries the same combination as the
// bound type. Coder constructors use it to refuse cross-construction.
func (bt *BoundType) Matches(f *coding.Factory) error {
	if f.Kind().Name != bt.Stack {
		return fmt.Errorf("factory is for stack %q, bound type %q expects %q",
			f.Kind().Name, bt.Name, bt.Stack)
	}
	if f.Field().Type() != bt.Field {
		return fmt.Errorf("factory is for field %s, bound type %q expects %s",
			f.Field().Type(), bt.Name, bt.Field)
	}
	if f.Capabilities() != bt.Capabilities {
		return fmt.Errorf("factory capabilities (%s) differ from bound type %q (%s)",
			f.Capabilities(), bt.Name, bt.Capabilities)
	}
	return nil
}
