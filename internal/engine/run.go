package engine

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/vk/codegrid/internal/bind"
	"github.com/vk/codegrid/internal/coding"
	"github.com/vk/codegrid/internal/ctxlog"
	"github.com/vk/codegrid/internal/gf"
	"github.com/vk/codegrid/internal/schema"
)

// payloadBudgetFactor bounds how many payloads a run may emit before it is
// declared stuck: factor * symbols. Generous enough for high loss rates
// and the binary field's higher redundancy.
const payloadBudgetFactor = 200

// coderSet holds the constructed chain for one run.
type coderSet struct {
	encoder coding.Encoder
	decoder coding.Decoder
}

// executeRun performs one coding round-trip as described by a run block.
func (e *Engine) executeRun(ctx context.Context, run *schema.Run) error {
	logger := ctxlog.FromContext(ctx).With("run", run.Name, "stack", run.Stack, "field", run.Field)
	runID := uuid.NewString()

	ft, err := gf.ParseType(run.Field)
	if err != nil {
		return err
	}
	if run.LossRate < 0 || run.LossRate >= 1 {
		return fmt.Errorf("loss_rate %v out of range [0, 1)", run.LossRate)
	}

	coders, err := e.buildCoders(run, ft)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if run.Seed != nil {
		seed = *run.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	source := make([]byte, run.Symbols*run.SymbolSize)
	rng.Read(source)
	if err := coders.encoder.SetSymbols(source); err != nil {
		return err
	}

	logger.Info("🚀 Starting coding run.", "id", runID,
		"block_size", humanize.IBytes(uint64(len(source))), "loss_rate", run.LossRate)
	start := time.Now()

	sent, dropped := 0, 0
	budget := run.Symbols * payloadBudgetFactor
	for !coders.decoder.IsComplete() {
		if sent >= budget {
			return fmt.Errorf("decoder stuck at rank %d of %d after %d payloads",
				coders.decoder.Rank(), run.Symbols, sent)
		}
		payload, err := coders.encoder.Encode()
		if err != nil {
			return err
		}
		sent++
		if run.LossRate > 0 && rng.Float64() < run.LossRate {
			dropped++
			continue
		}
		if err := coders.decoder.Consume(payload); err != nil {
			return err
		}
	}

	recovered, err := coders.decoder.Recover()
	if err != nil {
		return err
	}
	if !bytes.Equal(recovered, source) {
		return fmt.Errorf("recovered block differs from source")
	}

	elapsed := time.Since(start)
	throughput := float64(len(source)) / elapsed.Seconds()
	logger.Info("🏁 Coding run complete.", "id", runID,
		"payloads_sent", sent, "payloads_dropped", dropped,
		"elapsed", elapsed.Round(time.Microsecond),
		"throughput", humanize.IBytes(uint64(throughput))+"/s")

	logTrace(ctx, "encoder", coders.encoder)
	logTrace(ctx, "decoder", coders.decoder)
	return nil
}

// buildCoders resolves the run's bound types and constructs the coder
// chain through their factories.
func (e *Engine) buildCoders(run *schema.Run, ft gf.Type) (*coderSet, error) {
	caps := bind.Capabilities()

	encFactoryType, err := e.registry.Lookup(bind.EncoderFactoryName(run.Stack, ft, caps))
	if err != nil {
		return nil, err
	}
	encType, err := e.registry.Lookup(bind.EncoderName(run.Stack, ft, caps))
	if err != nil {
		return nil, err
	}
	decFactoryType, err := e.registry.Lookup(bind.DecoderFactoryName(run.Stack, ft, caps))
	if err != nil {
		return nil, err
	}
	decType, err := e.registry.Lookup(bind.DecoderName(run.Stack, ft, caps))
	if err != nil {
		return nil, err
	}

	encFactory, err := encFactoryType.NewFactory(run.Symbols, run.SymbolSize)
	if err != nil {
		return nil, err
	}
	if run.Seed != nil {
		encFactory.SetSeed(*run.Seed)
	}
	encoder, err := encType.NewEncoder(encFactory)
	if err != nil {
		return nil, err
	}

	decFactory, err := decFactoryType.NewFactory(run.Symbols, run.SymbolSize)
	if err != nil {
		return nil, err
	}
	decoder, err := decType.NewDecoder(decFactory)
	if err != nil {
		return nil, err
	}

	return &coderSet{encoder: encoder, decoder: decoder}, nil
}

// logTrace emits a coder's capability trace at debug level.
func logTrace(ctx context.Context, role string, coder any) {
	tracer, ok := coder.(coding.Tracer)
	if !ok {
		return
	}
	logger := ctxlog.FromContext(ctx)
	events := tracer.Trace()
	logger.Debug("Coder trace.", "role", role, "events", len(events))
	for _, event := range events {
		logger.Debug("  trace", "role", role, "event", event)
	}
}
