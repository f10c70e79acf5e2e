package gf

import "math/rand"

// binaryField is GF(2): one bit per element, multiplication is AND and
// addition is XOR. Symbol buffers are treated as plain bit strings, so all
// vector operations reduce to byte-wise XOR.
type binaryField struct{}

func (binaryField) Type() Type       { return Binary }
func (binaryField) Order() uint32    { return 2 }
func (binaryField) Granularity() int { return 1 }

func (binaryField) Add(a, b uint32) uint32 { return a ^ b }
func (binaryField) Mul(a, b uint32) uint32 { return a & b }

func (binaryField) Inv(a uint32) uint32 {
	if a == 0 {
		panic("gf: inverse of zero")
	}
	return 1
}

func (f binaryField) Div(a, b uint32) uint32 {
	return f.Mul(a, f.Inv(b))
}

func (binaryField) RandomElement(rng *rand.Rand) uint32 {
	return rng.Uint32() & 1
}

func (binaryField) AddAssign(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func (binaryField) MulAddAssign(dst, src []byte, c uint32) {
	if c == 0 {
		return
	}
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func (binaryField) MulAssign(dst []byte, c uint32) {
	if c != 0 {
		return
	}
	for i := range dst {
		dst[i] = 0
	}
}

// Coefficients are packed eight to a byte, least significant bit first.

func (binaryField) CoefficientBytes(n int) int {
	return (n + 7) / 8
}

func (binaryField) PackCoefficients(dst []byte, coeffs []uint32) {
	for i := range dst {
		dst[i] = 0
	}
	for i, c := range coeffs {
		if c != 0 {
			dst[i/8] |= 1 << (i % 8)
		}
	}
}

func (binaryField) UnpackCoefficients(coeffs []uint32, src []byte) {
	for i := range coeffs {
		coeffs[i] = uint32(src[i/8]>>(i%8)) & 1
	}
}
