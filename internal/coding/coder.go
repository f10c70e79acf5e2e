package coding

import (
	"fmt"

	"github.com/vk/codegrid/internal/gf"
)

// Encoder produces coded payloads from a block of source symbols. A
// payload is the packed coefficient vector followed by the coded symbol.
type Encoder interface {
	// SetSymbol stores one source symbol. data must be exactly
	// SymbolSize() bytes.
	SetSymbol(index int, data []byte) error

	// SetSymbols stores the whole block at once. data must be exactly
	// Symbols()*SymbolSize() bytes.
	SetSymbols(data []byte) error

	// Encode produces the next coded payload.
	Encode() ([]byte, error)

	// Rank returns the number of source symbols available for coding.
	Rank() int

	Symbols() int
	SymbolSize() int
	PayloadSize() int
}

// Decoder consumes coded payloads and recovers the source block once it
// has gathered full rank.
type Decoder interface {
	// Consume processes one coded payload. Linearly dependent payloads
	// are discarded without error.
	Consume(payload []byte) error

	// Rank returns the number of linearly independent payloads seen.
	Rank() int

	// IsComplete reports whether the full block can be recovered.
	IsComplete() bool

	// Recover returns the concatenated source symbols. It fails until
	// the decoder is complete.
	Recover() ([]byte, error)

	Symbols() int
	SymbolSize() int
	PayloadSize() int
}

// symbolStore is the shared source-symbol storage used by all encoders.
type symbolStore struct {
	field      gf.Field
	symbols    int
	symbolSize int
	data       [][]byte
	present    []bool
	count      int
}

func newSymbolStore(f gf.Field, symbols, symbolSize int) symbolStore {
	return symbolStore{
		field:      f,
		symbols:    symbols,
		symbolSize: symbolSize,
		data:       make([][]byte, symbols),
		present:    make([]bool, symbols),
	}
}

func (s *symbolStore) set(index int, data []byte) error {
	if index < 0 || index >= s.symbols {
		return fmt.Errorf("symbol index %d out of range [0, %d)", index, s.symbols)
	}
	if len(data) != s.symbolSize {
		return fmt.Errorf("symbol is %d bytes, expected %d", len(data), s.symbolSize)
	}
	if s.data[index] == nil {
		s.data[index] = make([]byte, s.symbolSize)
	}
	copy(s.data[index], data)
	if !s.present[index] {
		s.present[index] = true
		s.count++
	}
	return nil
}

func (s *symbolStore) setAll(data []byte) error {
	if len(data) != s.symbols*s.symbolSize {
		return fmt.Errorf("block is %d bytes, expected %d", len(data), s.symbols*s.symbolSize)
	}
	for i := 0; i < s.symbols; i++ {
		if err := s.set(i, data[i*s.symbolSize:(i+1)*s.symbolSize]); err != nil {
			return err
		}
	}
	return nil
}

func (s *symbolStore) payloadSize() int {
	return s.field.CoefficientBytes(s.symbols) + s.symbolSize
}

// emit packs a coefficient vector and the corresponding symbol mix into a
// fresh payload buffer.
func (s *symbolStore) emit(coeffs []uint32) []byte {
	payload := make([]byte, s.payloadSize())
	s.field.PackCoefficients(payload[:s.field.CoefficientBytes(s.symbols)], coeffs)
	mixed := payload[s.field.CoefficientBytes(s.symbols):]
	for i, c := range coeffs {
		if c != 0 {
			s.field.MulAddAssign(mixed, s.data[i], c)
		}
	}
	return payload
}
