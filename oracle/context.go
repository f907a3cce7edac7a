package oracle

// Device is the signal-level boundary of the device under test. Inputs are
// written before a rising edge and outputs are read after it.
type Device interface {
	// SetReset drives the synchronous, active-high reset.
	SetReset(asserted bool)

	// SetInput drives the data input, its tag, and the new-data-valid flag.
	SetInput(value, meta uint64, valid bool)

	// Output returns the retained window, one element per cell.
	Output() []uint64
}

// Clock advances the simulation that executes the device.
type Clock interface {
	// RisingEdge produces one rising edge and returns once the device has
	// settled after it.
	RisingEdge() error
}

// SimContext is the state of one run that the run driver owns and lends to
// the reset sequencer, the stimulus generator and the comparator. It must not
// be shared between runs.
type SimContext struct {
	Device Device
	Clock  Clock

	edges uint64
}

// NewSimContext binds a device to the clock that drives it.
func NewSimContext(device Device, clock Clock) *SimContext {
	return &SimContext{Device: device, Clock: clock}
}

// Advance waits for exactly one rising edge.
func (c *SimContext) Advance() error {
	err := c.Clock.RisingEdge()
	if err != nil {
		return err
	}

	c.edges++

	return nil
}

// Edges returns the number of rising edges since the run started, reset
// included.
func (c *SimContext) Edges() uint64 {
	return c.edges
}
