// Package cellsort provides a behavioral model of the cell sort device: a
// fixed array of cells that keeps the most relevant values it has seen in
// ascending order, behind an input pipeline.
package cellsort

import (
	"log"

	"github.com/cockroachdb/errors"

	"github.com/sarchlab/cellsort/pipelining"
	"github.com/sarchlab/cellsort/sim"
	"github.com/sarchlab/cellsort/window"
)

type sample struct {
	value uint64
	meta  uint64
}

// Comp is the cell sort device. It is a synchronous component: inputs set
// through SetReset and SetInput are sampled on the next rising edge, and
// Output reflects the state after the last edge.
type Comp struct {
	name      string
	valueMask uint64
	metaMask  uint64
	policy    window.EvictPolicy

	rst     bool
	dataIn  uint64
	metaIn  uint64
	validIn bool

	input  pipelining.Pipeline[sample]
	staged sim.Buffer[sample]
	cells  []Cell
	serial uint64
	out    []uint64
}

// Name returns the name of the device.
func (c *Comp) Name() string {
	return c.name
}

// SetReset drives the reset input.
func (c *Comp) SetReset(asserted bool) {
	c.rst = asserted
}

// SetInput drives the data, tag and new-data-valid inputs.
func (c *Comp) SetInput(value, meta uint64, valid bool) {
	c.dataIn = value
	c.metaIn = meta
	c.validIn = valid
}

// Output returns the cell values in ascending order.
func (c *Comp) Output() []uint64 {
	return append([]uint64(nil), c.out...)
}

// Cells returns a copy of the cell array, tags and ages included.
func (c *Comp) Cells() []Cell {
	return append([]Cell(nil), c.cells...)
}

// InFlight returns the number of admitted values that have not reached the
// cell array yet.
func (c *Comp) InFlight() int {
	return c.input.Occupancy() + c.staged.Size()
}

// Tick updates the device on a rising edge.
func (c *Comp) Tick() error {
	if c.rst {
		c.reset()
		return nil
	}

	c.input.Tick()

	if c.validIn {
		if !c.input.CanAccept() {
			return errors.Newf("%s: input pipeline stalled", c.name)
		}

		c.input.Accept(sample{
			value: c.dataIn & c.valueMask,
			meta:  c.metaIn & c.metaMask,
		})
	}

	if s, ok := c.staged.Pop(); ok {
		c.admit(s)
	}

	c.latchOutput()

	return nil
}

func (c *Comp) reset() {
	c.input.Clear()
	c.staged.Clear()

	for i := range c.cells {
		c.cells[i] = Cell{}
	}

	c.serial = 0
	c.latchOutput()
}

func (c *Comp) admit(s sample) {
	c.serial++
	incoming := Cell{Value: s.value, Meta: s.meta, Age: c.serial}

	victim, keep := c.selectVictim(incoming)
	if !keep {
		return
	}

	c.cells = nextCells(c.cells, incoming, victim)
}

// selectVictim picks the cell that leaves the array. keep is false when the
// incoming value is itself the one to drop.
func (c *Comp) selectVictim(incoming Cell) (victim int, keep bool) {
	last := len(c.cells) - 1

	switch c.policy {
	case window.EvictSmallest:
		if incoming.Value < c.cells[0].Value {
			return 0, false
		}

		return 0, true
	case window.EvictLargest:
		if incoming.Value >= c.cells[last].Value {
			return last, false
		}

		return last, true
	case window.EvictOldest:
		oldest := 0
		for i, cell := range c.cells {
			if cell.Age < c.cells[oldest].Age {
				oldest = i
			}
		}

		return oldest, true
	default:
		log.Panicf("%s: unknown eviction policy %d", c.name, c.policy)
	}

	return 0, false
}

func (c *Comp) latchOutput() {
	for i, cell := range c.cells {
		c.out[i] = cell.Value
	}
}
