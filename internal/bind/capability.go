package bind

import "github.com/vk/codegrid/internal/coding"

// Capabilities returns the capability set composed into every generated
// stack. Tracing is composed unconditionally: each externally visible
// coder supports trace retrieval. This is a fixed policy, not a per-call
// option; the generator produces no trace-free variants.
func Capabilities() coding.CapabilitySet {
	return coding.Compose(coding.Trace)
}
