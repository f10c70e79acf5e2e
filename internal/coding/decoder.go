package coding

import (
	"fmt"

	"github.com/vk/codegrid/internal/gf"
)

// gaussDecoder is the shared decoder for all stack kinds: incremental
// Gaussian elimination over the payload coefficient vectors, tracking rank
// until the coefficient matrix reaches full rank.
type gaussDecoder struct {
	field      gf.Field
	symbols    int
	symbolSize int

	// rows[i], syms[i] hold the stored row with its pivot at column i,
	// normalized so the pivot coefficient is one.
	rows    [][]uint32
	syms    [][]byte
	pivots  []bool
	rank    int
	reduced bool
}

func newDecoder(f gf.Field, symbols, symbolSize int) Decoder {
	return &gaussDecoder{
		field:      f,
		symbols:    symbols,
		symbolSize: symbolSize,
		rows:       make([][]uint32, symbols),
		syms:       make([][]byte, symbols),
		pivots:     make([]bool, symbols),
	}
}

func (d *gaussDecoder) Symbols() int    { return d.symbols }
func (d *gaussDecoder) SymbolSize() int { return d.symbolSize }
func (d *gaussDecoder) Rank() int       { return d.rank }

func (d *gaussDecoder) PayloadSize() int {
	return d.field.CoefficientBytes(d.symbols) + d.symbolSize
}

func (d *gaussDecoder) IsComplete() bool { return d.rank == d.symbols }

func (d *gaussDecoder) Consume(payload []byte) error {
	if len(payload) != d.PayloadSize() {
		return fmt.Errorf("payload is %d bytes, expected %d", len(payload), d.PayloadSize())
	}
	coeffBytes := d.field.CoefficientBytes(d.symbols)
	coeffs := make([]uint32, d.symbols)
	d.field.UnpackCoefficients(coeffs, payload[:coeffBytes])
	sym := make([]byte, d.symbolSize)
	copy(sym, payload[coeffBytes:])

	for i := 0; i < d.symbols; i++ {
		c := coeffs[i]
		if c == 0 {
			continue
		}
		if d.pivots[i] {
			// Eliminate against the stored pivot row.
			row := d.rows[i]
			for j := i; j < d.symbols; j++ {
				coeffs[j] = d.field.Add(coeffs[j], d.field.Mul(c, row[j]))
			}
			d.field.MulAddAssign(sym, d.syms[i], c)
			continue
		}
		// New pivot: normalize so the leading coefficient is one.
		inv := d.field.Inv(c)
		for j := i; j < d.symbols; j++ {
			coeffs[j] = d.field.Mul(coeffs[j], inv)
		}
		d.field.MulAssign(sym, inv)
		d.rows[i] = coeffs
		d.syms[i] = sym
		d.pivots[i] = true
		d.rank++
		return nil
	}
	// Fully eliminated: linearly dependent on what we already hold.
	return nil
}

func (d *gaussDecoder) Recover() ([]byte, error) {
	if !d.IsComplete() {
		return nil, fmt.Errorf("decoder incomplete: rank %d of %d", d.rank, d.symbols)
	}
	d.backSubstitute()
	out := make([]byte, 0, d.symbols*d.symbolSize)
	for i := 0; i < d.symbols; i++ {
		out = append(out, d.syms[i]...)
	}
	return out, nil
}

// backSubstitute reduces the upper-triangular matrix to the identity so
// each stored symbol becomes a source symbol. Idempotent.
func (d *gaussDecoder) backSubstitute() {
	if d.reduced {
		return
	}
	for i := d.symbols - 1; i >= 0; i-- {
		for k := 0; k < i; k++ {
			c := d.rows[k][i]
			if c == 0 {
				continue
			}
			for j := i; j < d.symbols; j++ {
				d.rows[k][j] = d.field.Add(d.rows[k][j], d.field.Mul(c, d.rows[i][j]))
			}
			d.field.MulAddAssign(d.syms[k], d.syms[i], c)
		}
	}
	d.reduced = true
}
