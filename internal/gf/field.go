package gf

import (
	"fmt"
	"math/rand"
)

// Type identifies one of the four supported finite fields.
type Type int

const (
	Binary Type = iota
	Binary4
	Binary8
	Binary16
)

// typeNames holds the external identifiers used in registered type names
// and in grid files.
var typeNames = map[Type]string{
	Binary:   "binary",
	Binary4:  "binary4",
	Binary8:  "binary8",
	Binary16: "binary16",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("gf.Type(%d)", int(t))
}

// ParseType resolves an external field identifier to its Type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown field type %q", name)
}

// Catalog returns the full set of field types in their canonical order.
// The order is fixed and callers rely on it for reproducible registration.
func Catalog() []Type {
	return []Type{Binary, Binary4, Binary8, Binary16}
}

// Field is the arithmetic contract a coding stack is instantiated against.
// Elements are carried in uint32 regardless of the field's width; values
// must stay below Order().
type Field interface {
	// Type returns the field's identifier.
	Type() Type

	// Order returns the number of elements in the field.
	Order() uint32

	// Granularity returns the number of bytes one element occupies inside
	// a symbol buffer. Symbol sizes must be a multiple of this.
	Granularity() int

	// Add returns a + b. In all GF(2^m) fields addition is XOR and is its
	// own inverse.
	Add(a, b uint32) uint32

	// Mul returns a * b.
	Mul(a, b uint32) uint32

	// Inv returns the multiplicative inverse of a. Inverting zero is a
	// programmer error and panics.
	Inv(a uint32) uint32

	// Div returns a / b. Dividing by zero panics.
	Div(a, b uint32) uint32

	// RandomElement draws a uniformly distributed element.
	RandomElement(rng *rand.Rand) uint32

	// AddAssign sets dst = dst + src, elementwise over symbol buffers.
	AddAssign(dst, src []byte)

	// MulAddAssign sets dst = dst + c*src, elementwise over symbol buffers.
	MulAddAssign(dst, src []byte, c uint32)

	// MulAssign sets dst = c*dst, elementwise over a symbol buffer.
	MulAssign(dst []byte, c uint32)

	// CoefficientBytes returns the packed wire size of a coefficient
	// vector with n entries.
	CoefficientBytes(n int) int

	// PackCoefficients writes coeffs into dst using the field's packed
	// wire layout. dst must hold CoefficientBytes(len(coeffs)).
	PackCoefficients(dst []byte, coeffs []uint32)

	// UnpackCoefficients reads len(coeffs) packed entries from src.
	UnpackCoefficients(coeffs []uint32, src []byte)
}

// New returns the shared Field implementation for the given type.
func New(t Type) Field {
	switch t {
	case Binary:
		return binaryField{}
	case Binary4:
		return gf16
	case Binary8:
		return gf256
	case Binary16:
		return gf65536
	}
	panic(fmt.Sprintf("gf: no implementation for field type %d", int(t)))
}
