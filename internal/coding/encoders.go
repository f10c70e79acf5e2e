package coding

import (
	"fmt"
	"math/rand"

	"github.com/vk/codegrid/internal/gf"
)

// fullVectorEncoder mixes every source symbol into each coded payload.
// The first Symbols() payloads are a systematic pass (unit coefficient
// vectors in index order); everything after is a dense random combination.
type fullVectorEncoder struct {
	symbolStore
	rng        *rand.Rand
	systematic int
}

func newFullVectorEncoder(f gf.Field, symbols, symbolSize int, rng *rand.Rand) Encoder {
	return &fullVectorEncoder{
		symbolStore: newSymbolStore(f, symbols, symbolSize),
		rng:         rng,
	}
}

func (e *fullVectorEncoder) SetSymbol(index int, data []byte) error { return e.set(index, data) }
func (e *fullVectorEncoder) SetSymbols(data []byte) error           { return e.setAll(data) }
func (e *fullVectorEncoder) Rank() int                              { return e.count }
func (e *fullVectorEncoder) Symbols() int                           { return e.symbols }
func (e *fullVectorEncoder) SymbolSize() int                        { return e.symbolSize }
func (e *fullVectorEncoder) PayloadSize() int                       { return e.payloadSize() }

func (e *fullVectorEncoder) Encode() ([]byte, error) {
	if e.count < e.symbols {
		return nil, fmt.Errorf("full_vector encoder has %d of %d symbols", e.count, e.symbols)
	}
	coeffs := make([]uint32, e.symbols)
	if e.systematic < e.symbols {
		coeffs[e.systematic] = 1
		e.systematic++
	} else {
		for i := range coeffs {
			coeffs[i] = e.field.RandomElement(e.rng)
		}
	}
	return e.emit(coeffs), nil
}

// onTheFlyEncoder codes over whatever symbols have been stored so far.
// Each newly stored symbol is emitted systematically once before random
// combinations of the available set are produced.
type onTheFlyEncoder struct {
	symbolStore
	rng     *rand.Rand
	pending []int
}

func newOnTheFlyEncoder(f gf.Field, symbols, symbolSize int, rng *rand.Rand) Encoder {
	return &onTheFlyEncoder{
		symbolStore: newSymbolStore(f, symbols, symbolSize),
		rng:         rng,
	}
}

func (e *onTheFlyEncoder) SetSymbol(index int, data []byte) error {
	known := index >= 0 && index < e.symbols && e.present[index]
	if err := e.set(index, data); err != nil {
		return err
	}
	if !known {
		e.pending = append(e.pending, index)
	}
	return nil
}

func (e *onTheFlyEncoder) SetSymbols(data []byte) error {
	if len(data) != e.symbols*e.symbolSize {
		return fmt.Errorf("block is %d bytes, expected %d", len(data), e.symbols*e.symbolSize)
	}
	for i := 0; i < e.symbols; i++ {
		if err := e.SetSymbol(i, data[i*e.symbolSize:(i+1)*e.symbolSize]); err != nil {
			return err
		}
	}
	return nil
}

func (e *onTheFlyEncoder) Rank() int        { return e.count }
func (e *onTheFlyEncoder) Symbols() int     { return e.symbols }
func (e *onTheFlyEncoder) SymbolSize() int  { return e.symbolSize }
func (e *onTheFlyEncoder) PayloadSize() int { return e.payloadSize() }

func (e *onTheFlyEncoder) Encode() ([]byte, error) {
	if e.count == 0 {
		return nil, fmt.Errorf("on_the_fly encoder has no symbols")
	}
	coeffs := make([]uint32, e.symbols)
	if len(e.pending) > 0 {
		coeffs[e.pending[0]] = 1
		e.pending = e.pending[1:]
	} else {
		for i := 0; i < e.symbols; i++ {
			if e.present[i] {
				coeffs[i] = e.field.RandomElement(e.rng)
			}
		}
	}
	return e.emit(coeffs), nil
}

// windowWidth bounds how many symbols a sliding_window payload mixes.
const windowWidth = 8

// slidingWindowEncoder mixes a bounded, randomly placed window of the
// stored symbols into each payload, keeping coding cost independent of the
// block size.
type slidingWindowEncoder struct {
	symbolStore
	rng *rand.Rand
}

func newSlidingWindowEncoder(f gf.Field, symbols, symbolSize int, rng *rand.Rand) Encoder {
	return &slidingWindowEncoder{
		symbolStore: newSymbolStore(f, symbols, symbolSize),
		rng:         rng,
	}
}

func (e *slidingWindowEncoder) SetSymbol(index int, data []byte) error { return e.set(index, data) }
func (e *slidingWindowEncoder) SetSymbols(data []byte) error           { return e.setAll(data) }
func (e *slidingWindowEncoder) Rank() int                              { return e.count }
func (e *slidingWindowEncoder) Symbols() int                           { return e.symbols }
func (e *slidingWindowEncoder) SymbolSize() int                        { return e.symbolSize }
func (e *slidingWindowEncoder) PayloadSize() int                       { return e.payloadSize() }

func (e *slidingWindowEncoder) Encode() ([]byte, error) {
	if e.count == 0 {
		return nil, fmt.Errorf("sliding_window encoder has no symbols")
	}
	stored := make([]int, 0, e.count)
	for i := 0; i < e.symbols; i++ {
		if e.present[i] {
			stored = append(stored, i)
		}
	}
	width := windowWidth
	if width > len(stored) {
		width = len(stored)
	}
	start := e.rng.Intn(len(stored) - width + 1)

	coeffs := make([]uint32, e.symbols)
	for _, idx := range stored[start : start+width] {
		coeffs[idx] = e.field.RandomElement(e.rng)
	}
	return e.emit(coeffs), nil
}
