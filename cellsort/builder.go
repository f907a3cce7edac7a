package cellsort

import (
	"log"

	"github.com/sarchlab/cellsort/pipelining"
	"github.com/sarchlab/cellsort/sim"
	"github.com/sarchlab/cellsort/window"
)

// Builder can build cell sort devices.
type Builder struct {
	valueWidth int
	metaWidth  int
	depth      int
	latency    int
	policy     window.EvictPolicy
}

// MakeBuilder creates a builder with the parameters of the reference
// design: 8-bit values, no tag, 16 cells, 3 cycles of latency.
func MakeBuilder() Builder {
	return Builder{
		valueWidth: 8,
		metaWidth:  0,
		depth:      16,
		latency:    3,
		policy:     window.EvictSmallest,
	}
}

// WithValueWidth sets the width of the sorted values.
func (b Builder) WithValueWidth(n int) Builder {
	b.valueWidth = n
	return b
}

// WithMetaWidth sets the width of the tag that travels with each value.
func (b Builder) WithMetaWidth(n int) Builder {
	b.metaWidth = n
	return b
}

// WithDepth sets the number of cells.
func (b Builder) WithDepth(n int) Builder {
	b.depth = n
	return b
}

// WithLatency sets the number of cycles between the input and the cell
// array.
func (b Builder) WithLatency(n int) Builder {
	b.latency = n
	return b
}

// WithEvictPolicy sets which cell leaves when a new value is admitted.
func (b Builder) WithEvictPolicy(p window.EvictPolicy) Builder {
	b.policy = p
	return b
}

// Build creates a device. The device starts in its reset state.
func (b Builder) Build(name string) *Comp {
	sim.NameMustBeValid(name)

	if b.valueWidth < 1 || b.valueWidth > 64 ||
		b.metaWidth < 0 || b.metaWidth > 64 ||
		b.depth < 1 || b.latency < 0 {
		log.Panicf("%s: invalid parameters %+v", name, b)
	}

	c := &Comp{
		name:      name,
		valueMask: widthMask(b.valueWidth),
		metaMask:  widthMask(b.metaWidth),
		policy:    b.policy,
		cells:     make([]Cell, b.depth),
		out:       make([]uint64, b.depth),
	}

	c.staged = sim.NewBuffer[sample](name+".Staged", 1)
	c.input = pipelining.MakeBuilder[sample]().
		WithNumStage(b.latency).
		WithPostPipelineBuffer(c.staged).
		Build(name + ".Input")

	return c
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(width)) - 1
}
