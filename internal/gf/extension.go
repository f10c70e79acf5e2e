package gf

import (
	"encoding/binary"
	"math/rand"
	"sync"
)

// extensionField implements GF(2^m) for m in {4, 8, 16} using log/exp
// tables over the field's primitive polynomial. Tables are built on first
// use; binary16's are the only ones large enough for that to matter.
type extensionField struct {
	typ         Type
	poly        uint32
	bits        uint
	granularity int

	once sync.Once
	logT []uint32
	expT []uint32
}

var (
	// x^4 + x + 1
	gf16 = &extensionField{typ: Binary4, poly: 0x13, bits: 4, granularity: 1}
	// x^8 + x^4 + x^3 + x^2 + 1
	gf256 = &extensionField{typ: Binary8, poly: 0x11D, bits: 8, granularity: 1}
	// x^16 + x^12 + x^3 + x + 1
	gf65536 = &extensionField{typ: Binary16, poly: 0x1100B, bits: 16, granularity: 2}
)

func (f *extensionField) Type() Type       { return f.typ }
func (f *extensionField) Order() uint32    { return 1 << f.bits }
func (f *extensionField) Granularity() int { return f.granularity }

// buildTables fills the log/exp tables by stepping the generator element 2
// through the whole multiplicative group. The exp table is doubled so that
// exp[log a + log b] needs no modulo.
func (f *extensionField) buildTables() {
	f.once.Do(func() {
		order := f.Order()
		f.logT = make([]uint32, order)
		f.expT = make([]uint32, 2*(order-1))

		x := uint32(1)
		for i := uint32(0); i < order-1; i++ {
			f.expT[i] = x
			f.expT[i+order-1] = x
			f.logT[x] = i
			x <<= 1
			if x >= order {
				x ^= f.poly
			}
		}
	})
}

func (f *extensionField) Add(a, b uint32) uint32 { return a ^ b }

func (f *extensionField) Mul(a, b uint32) uint32 {
	if a == 0 || b == 0 {
		return 0
	}
	f.buildTables()
	return f.expT[f.logT[a]+f.logT[b]]
}

func (f *extensionField) Inv(a uint32) uint32 {
	if a == 0 {
		panic("gf: inverse of zero")
	}
	f.buildTables()
	return f.expT[f.Order()-1-f.logT[a]]
}

func (f *extensionField) Div(a, b uint32) uint32 {
	return f.Mul(a, f.Inv(b))
}

func (f *extensionField) RandomElement(rng *rand.Rand) uint32 {
	return rng.Uint32() & (f.Order() - 1)
}

func (f *extensionField) AddAssign(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func (f *extensionField) MulAddAssign(dst, src []byte, c uint32) {
	if c == 0 {
		return
	}
	if c == 1 {
		f.AddAssign(dst, src)
		return
	}
	f.buildTables()
	switch f.typ {
	case Binary4:
		for i := range dst {
			lo := f.Mul(uint32(src[i])&0x0F, c)
			hi := f.Mul(uint32(src[i])>>4, c)
			dst[i] ^= byte(lo | hi<<4)
		}
	case Binary8:
		for i := range dst {
			dst[i] ^= byte(f.Mul(uint32(src[i]), c))
		}
	case Binary16:
		for i := 0; i+1 < len(dst); i += 2 {
			v := f.Mul(uint32(binary.LittleEndian.Uint16(src[i:])), c)
			binary.LittleEndian.PutUint16(dst[i:], binary.LittleEndian.Uint16(dst[i:])^uint16(v))
		}
	}
}

func (f *extensionField) MulAssign(dst []byte, c uint32) {
	if c == 1 {
		return
	}
	if c == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	f.buildTables()
	switch f.typ {
	case Binary4:
		for i := range dst {
			lo := f.Mul(uint32(dst[i])&0x0F, c)
			hi := f.Mul(uint32(dst[i])>>4, c)
			dst[i] = byte(lo | hi<<4)
		}
	case Binary8:
		for i := range dst {
			dst[i] = byte(f.Mul(uint32(dst[i]), c))
		}
	case Binary16:
		for i := 0; i+1 < len(dst); i += 2 {
			v := f.Mul(uint32(binary.LittleEndian.Uint16(dst[i:])), c)
			binary.LittleEndian.PutUint16(dst[i:], uint16(v))
		}
	}
}

func (f *extensionField) CoefficientBytes(n int) int {
	switch f.typ {
	case Binary4:
		return (n + 1) / 2
	case Binary16:
		return 2 * n
	default:
		return n
	}
}

func (f *extensionField) PackCoefficients(dst []byte, coeffs []uint32) {
	switch f.typ {
	case Binary4:
		for i := range dst {
			dst[i] = 0
		}
		for i, c := range coeffs {
			if i%2 == 0 {
				dst[i/2] |= byte(c & 0x0F)
			} else {
				dst[i/2] |= byte(c&0x0F) << 4
			}
		}
	case Binary16:
		for i, c := range coeffs {
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(c))
		}
	default:
		for i, c := range coeffs {
			dst[i] = byte(c)
		}
	}
}

func (f *extensionField) UnpackCoefficients(coeffs []uint32, src []byte) {
	switch f.typ {
	case Binary4:
		for i := range coeffs {
			if i%2 == 0 {
				coeffs[i] = uint32(src[i/2]) & 0x0F
			} else {
				coeffs[i] = uint32(src[i/2]) >> 4
			}
		}
	case Binary16:
		for i := range coeffs {
			coeffs[i] = uint32(binary.LittleEndian.Uint16(src[2*i:]))
		}
	default:
		for i := range coeffs {
			coeffs[i] = uint32(src[i])
		}
	}
}
