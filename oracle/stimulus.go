package oracle

import (
	"math/bits"
	"math/rand/v2"
)

// Stimulus is what the generator drives into the device on one cycle.
type Stimulus struct {
	Value uint64
	Meta  uint64
}

// Generator produces the deterministic input sequence of a run.
type Generator struct {
	mode     Mode
	metaMask uint64
	values   []uint64
}

// NewGenerator builds the whole sequence up front, so the value at a step
// depends only on the configuration and never on the order of queries.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Cycles < 1 {
		return nil, configErrorf("cycles", "must be at least 1, got %d", cfg.Cycles)
	}

	g := &Generator{
		mode:     cfg.Mode,
		metaMask: mask(cfg.MetaWidth),
		values:   make([]uint64, cfg.Cycles),
	}

	switch cfg.Mode {
	case ModeAscending:
		if cfg.ValueWidth < 64 &&
			bits.Len64(uint64(cfg.Cycles-1)) > cfg.ValueWidth {
			return nil, configErrorf("mode",
				"ascending needs %d cycles but values are %d bits wide",
				cfg.Cycles, cfg.ValueWidth)
		}

		for i := range g.values {
			g.values[i] = uint64(i)
		}
	case ModeRandom:
		r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
		for i := range g.values {
			g.values[i] = uniform(r, cfg.ValueWidth)
		}
	default:
		return nil, configErrorf("mode", "unknown stimulus mode %q", cfg.Mode)
	}

	return g, nil
}

func uniform(r *rand.Rand, width int) uint64 {
	if width >= 64 {
		return r.Uint64()
	}

	return r.Uint64N(uint64(1) << uint(width))
}

// Len returns the number of steps in the sequence.
func (g *Generator) Len() int {
	return len(g.values)
}

// At returns the stimulus of a step.
func (g *Generator) At(step int) Stimulus {
	return Stimulus{
		Value: g.values[step],
		Meta:  uint64(step) & g.metaMask,
	}
}

// Values returns a copy of the whole value sequence.
func (g *Generator) Values() []uint64 {
	return append([]uint64(nil), g.values...)
}

// Drive puts the stimulus of a step on the device input with valid set.
func (g *Generator) Drive(ctx *SimContext, step int) Stimulus {
	s := g.At(step)
	ctx.Device.SetInput(s.Value, s.Meta, true)

	return s
}
