// Package bind is the combinatorial binding generator. For every (stack
// kind, field type, capability set) combination it produces a distinct
// bound type, registers it under a deterministic name, and wires its
// factory/encoder/decoder construction chain.
//
// The two entry points, CreateEncoder and CreateDecoder, are invoked once
// per stack kind while the application starts. Each drives the field
// catalog in its fixed order and, per field, binds a factory followed by
// the matching coder: a synchronous burst of eight registrations. Binds
// are fail-fast; the first error aborts the burst and propagates to the
// caller.
package bind
