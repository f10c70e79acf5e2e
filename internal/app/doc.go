// Package app wires the application together: it builds the logger,
// populates and validates the registry from the compiled stack modules,
// and drives grid execution. It is decoupled from any specific entrypoint
// like the CLI.
package app
