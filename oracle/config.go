// Package oracle predicts, cycle by cycle, the output of a cell sort device
// and checks the device against the prediction.
package oracle

import (
	"github.com/sarchlab/cellsort/window"
)

// Mode selects how the stimulus generator produces input values.
type Mode string

// The supported stimulus modes.
const (
	ModeAscending Mode = "ascending"
	ModeRandom    Mode = "random"
)

// Defaults of the device and of a run.
const (
	DefaultPipelineLatency = 3
	DefaultCycles          = 256
	DefaultResetCycles     = 8
	DefaultSettleCycles    = 3
	DefaultSeed            = 1
)

// Config describes one run. It is passed by value and never modified once the
// run starts.
type Config struct {
	// ValueWidth bounds the input values to [0, 2^ValueWidth-1].
	ValueWidth int

	// MetaWidth is the width of the tag carried with each value. It does
	// not take part in sorting. Zero disables the tag.
	MetaWidth int

	// WindowDepth is the number of values the device retains.
	WindowDepth int

	// PipelineLatency is the number of cycles between the admission of a
	// value and its effect on the device output.
	PipelineLatency int

	Mode   Mode
	Seed   uint64
	Cycles int

	ResetCycles  int
	SettleCycles int

	// Evict is the eviction policy the model assumes the device implements.
	Evict window.EvictPolicy
}

// DefaultConfig returns the standard run configuration with a
// 16-deep window.
func DefaultConfig() Config {
	return Config{
		ValueWidth:      8,
		MetaWidth:       0,
		WindowDepth:     16,
		PipelineLatency: DefaultPipelineLatency,
		Mode:            ModeAscending,
		Seed:            DefaultSeed,
		Cycles:          DefaultCycles,
		ResetCycles:     DefaultResetCycles,
		SettleCycles:    DefaultSettleCycles,
		Evict:           window.EvictSmallest,
	}
}

// Validate checks the numeric invariants of the configuration. The stimulus
// mode is checked by NewGenerator.
func (c Config) Validate() error {
	switch {
	case c.ValueWidth < 1 || c.ValueWidth > 64:
		return configErrorf("value width", "must be in [1, 64], got %d", c.ValueWidth)
	case c.MetaWidth < 0 || c.MetaWidth > 64:
		return configErrorf("meta width", "must be in [0, 64], got %d", c.MetaWidth)
	case c.WindowDepth < 1:
		return configErrorf("window depth", "must be at least 1, got %d", c.WindowDepth)
	case c.PipelineLatency < 0:
		return configErrorf("pipeline latency", "must not be negative, got %d", c.PipelineLatency)
	case c.Cycles < 1:
		return configErrorf("cycles", "must be at least 1, got %d", c.Cycles)
	case c.ResetCycles < 0 || c.SettleCycles < 0:
		return configErrorf("reset", "cycle counts must not be negative")
	}

	switch c.Evict {
	case window.EvictSmallest, window.EvictLargest, window.EvictOldest:
	default:
		return configErrorf("eviction policy", "unknown policy %d", int(c.Evict))
	}

	return nil
}

// MaxValue returns the largest value that fits in the value width.
func (c Config) MaxValue() uint64 {
	return mask(c.ValueWidth)
}

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(width)) - 1
}
