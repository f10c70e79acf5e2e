package schema

import "github.com/hashicorp/hcl/v2"

// Run represents a `run` block from a user's grid file: one coding
// round-trip through a registered stack.
type Run struct {
	// Name is the user's label for the run.
	Name string `hcl:"name,label"`

	// Stack and Field select the bound types driving the run.
	Stack string `hcl:"stack"`
	Field string `hcl:"field"`

	// Symbols and SymbolSize configure the factory. SymbolSize must be a
	// multiple of the field's element size.
	Symbols    int `hcl:"symbols"`
	SymbolSize int `hcl:"symbol_size"`

	// LossRate is the fraction of payloads dropped between encoder and
	// decoder, simulating an unreliable channel.
	LossRate float64 `hcl:"loss_rate,optional"`

	// Seed pins both the coding coefficients and the loss pattern for
	// reproducible runs. Unset means time-derived.
	Seed *int64 `hcl:"seed,optional"`
}

// GridConfig represents the top-level structure of a user's grid file.
type GridConfig struct {
	Runs []*Run   `hcl:"run,block"`
	Body hcl.Body `hcl:",remain"`
}
