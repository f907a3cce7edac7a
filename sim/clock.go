package sim

import (
	"log"
)

// HookPosRisingEdge triggers after every component of a clock domain has
// been ticked for an edge. The Item field is the EdgeEvent.
var HookPosRisingEdge = &HookPos{Name: "RisingEdge"}

// A Ticker is a piece of synchronous logic that updates its state on every
// rising edge of the clock it is registered on.
type Ticker interface {
	Tick() error
}

// A Clock is a free-running clock domain. Each call to RisingEdge produces
// exactly one edge and ticks every registered component once, in
// registration order.
type Clock struct {
	HookableBase

	name    string
	Freq    Freq
	Engine  Engine
	tickers []Ticker
	cycle   uint64
}

// NewClock creates a clock domain that schedules its edges on the engine.
func NewClock(name string, engine Engine, freq Freq) *Clock {
	NameMustBeValid(name)

	return &Clock{
		name:   name,
		Freq:   freq,
		Engine: engine,
	}
}

// Name returns the name of the clock domain.
func (c *Clock) Name() string {
	return c.name
}

// Register adds a component to the clock domain.
func (c *Clock) Register(t Ticker) {
	c.tickers = append(c.tickers, t)
}

// Cycle returns the number of edges that have happened so far.
func (c *Clock) Cycle() uint64 {
	return c.cycle
}

// RisingEdge advances the clock by one cycle. It returns once every
// component has reacted to the edge, or with the first error a component
// reports.
func (c *Clock) RisingEdge() error {
	next := c.cycle + 1
	t := c.Freq.EdgeTime(next)

	c.Engine.Schedule(MakeEdgeEvent(c, t, next))

	err := c.Engine.RunUntil(t)
	if err != nil {
		return err
	}

	if c.cycle != next {
		log.Panicf("clock %s missed edge %d", c.name, next)
	}

	return nil
}

// Handle ticks all the registered components.
func (c *Clock) Handle(e Event) error {
	edge, ok := e.(EdgeEvent)
	if !ok {
		log.Panicf("clock %s cannot handle %T", c.name, e)
	}

	for _, t := range c.tickers {
		err := t.Tick()
		if err != nil {
			return err
		}
	}

	c.cycle = edge.Cycle

	if c.NumHooks() > 0 {
		c.InvokeHook(HookCtx{
			Domain: c,
			Pos:    HookPosRisingEdge,
			Item:   edge,
		})
	}

	return nil
}
