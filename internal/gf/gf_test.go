package gf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_OrderIsFixed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Type{Binary, Binary4, Binary8, Binary16}, Catalog())
}

func TestParseType_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, ft := range Catalog() {
		parsed, err := ParseType(ft.String())
		require.NoError(t, err)
		assert.Equal(t, ft, parsed)
	}

	_, err := ParseType("binary32")
	assert.Error(t, err)
}

func TestField_MulInvAxioms(t *testing.T) {
	t.Parallel()

	for _, ft := range Catalog() {
		f := New(ft)
		rng := rand.New(rand.NewSource(1))

		for i := 0; i < 200; i++ {
			a := f.RandomElement(rng)
			b := f.RandomElement(rng)
			c := f.RandomElement(rng)

			// Multiplicative identity and commutativity.
			assert.Equal(t, a, f.Mul(a, 1), "%s: a*1", ft)
			assert.Equal(t, f.Mul(a, b), f.Mul(b, a), "%s: commutativity", ft)

			// Distributivity over XOR addition.
			left := f.Mul(a, f.Add(b, c))
			right := f.Add(f.Mul(a, b), f.Mul(a, c))
			assert.Equal(t, left, right, "%s: distributivity", ft)

			// a * a^-1 == 1 for nonzero a, and division inverts
			// multiplication.
			if a != 0 {
				assert.Equal(t, uint32(1), f.Mul(a, f.Inv(a)), "%s: a*inv(a)", ft)
				assert.Equal(t, b, f.Div(f.Mul(b, a), a), "%s: (b*a)/a", ft)
			}
		}
	}
}

func TestField_InvZeroPanics(t *testing.T) {
	t.Parallel()

	for _, ft := range Catalog() {
		f := New(ft)
		assert.Panics(t, func() { f.Inv(0) }, "%s", ft)
	}
}

func TestField_CoefficientPackRoundTrip(t *testing.T) {
	t.Parallel()

	for _, ft := range Catalog() {
		f := New(ft)
		rng := rand.New(rand.NewSource(2))

		coeffs := make([]uint32, 13)
		for i := range coeffs {
			coeffs[i] = f.RandomElement(rng)
		}

		packed := make([]byte, f.CoefficientBytes(len(coeffs)))
		f.PackCoefficients(packed, coeffs)

		unpacked := make([]uint32, len(coeffs))
		f.UnpackCoefficients(unpacked, packed)
		assert.Equal(t, coeffs, unpacked, "%s", ft)
	}
}

func TestField_MulAddAssignMatchesScalarMul(t *testing.T) {
	t.Parallel()

	for _, ft := range Catalog() {
		f := New(ft)
		rng := rand.New(rand.NewSource(3))

		size := 16 // multiple of every field's granularity
		src := make([]byte, size)
		rng.Read(src)
		c := f.RandomElement(rng)

		// dst starts zeroed, so after MulAddAssign dst == c*src. Adding
		// it in a second time must cancel (XOR addition).
		dst := make([]byte, size)
		f.MulAddAssign(dst, src, c)

		scaled := make([]byte, size)
		copy(scaled, src)
		f.MulAssign(scaled, c)
		assert.Equal(t, scaled, dst, "%s: c*src", ft)

		f.MulAddAssign(dst, src, c)
		assert.Equal(t, make([]byte, size), dst, "%s: self-cancellation", ft)
	}
}

func TestField_Granularity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, New(Binary).Granularity())
	assert.Equal(t, 1, New(Binary4).Granularity())
	assert.Equal(t, 1, New(Binary8).Granularity())
	assert.Equal(t, 2, New(Binary16).Granularity())
}
