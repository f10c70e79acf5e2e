// Package registry provides the host-side lookup table for generated
// coder types.
//
// The Registry stores mappings between stable external names (e.g.
// "full_vector_binary8_encoder_factory_trace") and the BoundType that can
// construct the matching native object. It is populated exactly once while
// the application starts, by stack modules fanning out across the field
// catalog, and is read-only for the rest of the process: entries are never
// removed or replaced, and a name collision is reported as an error so a
// misbehaving registration burst surfaces immediately instead of silently
// overwriting an earlier type.
//
// After population the registry is validated to ensure every registered
// coder has its sibling factory, preventing lookup failures later when a
// host script builds coders through a factory that was never bound.
package registry
