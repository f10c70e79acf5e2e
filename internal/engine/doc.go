// Package engine executes decoded grid runs against the populated
// registry. For each run block it resolves the bound types by their
// derived names, builds the factory and coder chain through them, and
// drives an encode/loss/consume loop until the decoder recovers the
// source block.
package engine
