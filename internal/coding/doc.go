// Package coding implements the erasure-coding stacks that the binding
// layer exposes to the host environment. Each stack kind is a family of
// encoder/decoder implementations parameterized by a finite field; a
// Factory carries one fully resolved (kind, field, capability) combination
// and builds matching coder instances from it.
package coding
