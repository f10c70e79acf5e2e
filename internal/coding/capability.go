package coding

import "strings"

// Capability is an optional cross-cutting behavior composed into a stack
// without changing its coding semantics.
type Capability uint8

const (
	// Trace augments coders with an event log retrievable through the
	// Tracer interface.
	Trace Capability = 1 << iota
)

// capabilityTags maps each capability to the tag used in registered type
// names, in canonical (bit) order.
var capabilityTags = []struct {
	cap Capability
	tag string
}{
	{Trace, "trace"},
}

// CapabilitySet is a bit-set of capabilities. Composition via With is
// idempotent and order-independent, so two sets built from the same
// capabilities always compare equal.
type CapabilitySet uint8

// Compose builds a set from the given capabilities.
func Compose(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		s = s.With(c)
	}
	return s
}

// With returns the set extended by c.
func (s CapabilitySet) With(c Capability) CapabilitySet {
	return s | CapabilitySet(c)
}

// Has reports whether c is part of the set.
func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) != 0
}

// Tag returns the underscore-joined capability tags in canonical order, or
// the empty string for the empty set. Used as the trailing segment of
// registered type names.
func (s CapabilitySet) Tag() string {
	var tags []string
	for _, entry := range capabilityTags {
		if s.Has(entry.cap) {
			tags = append(tags, entry.tag)
		}
	}
	return strings.Join(tags, "_")
}

func (s CapabilitySet) String() string {
	if s == 0 {
		return "none"
	}
	return s.Tag()
}
