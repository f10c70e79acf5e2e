package coding

import "fmt"

// Tracer is the retrieval surface of the trace capability. Coders built
// from a combination that composes Trace implement it; coders built
// without the capability do not.
type Tracer interface {
	// Trace returns the recorded event log, oldest first.
	Trace() []string
}

// traceEncoder decorates an encoder with an event log. It changes no
// coding behavior.
type traceEncoder struct {
	Encoder
	payloads int
	events   []string
}

func newTraceEncoder(e Encoder) *traceEncoder {
	return &traceEncoder{Encoder: e}
}

func (t *traceEncoder) SetSymbol(index int, data []byte) error {
	err := t.Encoder.SetSymbol(index, data)
	if err == nil {
		t.events = append(t.events, fmt.Sprintf("symbol %d stored, rank %d", index, t.Rank()))
	}
	return err
}

func (t *traceEncoder) SetSymbols(data []byte) error {
	err := t.Encoder.SetSymbols(data)
	if err == nil {
		t.events = append(t.events, fmt.Sprintf("block stored, rank %d", t.Rank()))
	}
	return err
}

func (t *traceEncoder) Encode() ([]byte, error) {
	payload, err := t.Encoder.Encode()
	if err == nil {
		t.payloads++
		t.events = append(t.events, fmt.Sprintf("payload %d emitted", t.payloads))
	}
	return payload, err
}

func (t *traceEncoder) Trace() []string {
	out := make([]string, len(t.events))
	copy(out, t.events)
	return out
}

// traceDecoder decorates a decoder with an event log recording rank
// progression and dropped (linearly dependent) payloads.
type traceDecoder struct {
	Decoder
	events []string
}

func newTraceDecoder(d Decoder) *traceDecoder {
	return &traceDecoder{Decoder: d}
}

func (t *traceDecoder) Consume(payload []byte) error {
	before := t.Rank()
	err := t.Decoder.Consume(payload)
	switch {
	case err != nil:
	case t.Rank() > before:
		t.events = append(t.events, fmt.Sprintf("payload consumed, rank %d -> %d", before, t.Rank()))
		if t.IsComplete() {
			t.events = append(t.events, "decoding complete")
		}
	default:
		t.events = append(t.events, fmt.Sprintf("payload discarded (linearly dependent), rank %d", t.Rank()))
	}
	return err
}

func (t *traceDecoder) Trace() []string {
	out := make([]string, len(t.events))
	copy(out, t.events)
	return out
}
