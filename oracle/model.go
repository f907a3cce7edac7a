package oracle

import (
	"github.com/sarchlab/cellsort/window"
)

// ReferenceModel predicts the device output. Each Step replays one cycle of
// the device: the value submitted pipeline-latency cycles ago leaves the
// pending queue and is inserted into the window, which then evicts one
// element if it overflows.
type ReferenceModel struct {
	depth    int
	pending  *PendingQueue
	window   *window.Window
	admitted uint64
}

// NewReferenceModel creates a model with an empty window.
func NewReferenceModel(cfg Config) *ReferenceModel {
	return &ReferenceModel{
		depth:   cfg.WindowDepth,
		pending: NewPendingQueue(cfg.PipelineLatency),
		window:  window.New(cfg.WindowDepth, cfg.Evict),
	}
}

// Step advances the model by one cycle with the value submitted on this
// cycle and returns the expected output.
func (m *ReferenceModel) Step(submitted uint64) []uint64 {
	m.admitted = m.pending.Shift(submitted)
	m.window.Insert(m.admitted)

	return m.Expected()
}

// Expected returns the output the device should show now. Until the window
// is full, the cells that have not received a value still hold their reset
// value of zero, which sorts first.
func (m *ReferenceModel) Expected() []uint64 {
	values := m.window.Values()

	expected := make([]uint64, m.depth)
	copy(expected[m.depth-len(values):], values)

	return expected
}

// Admitted returns the value the last Step inserted into the window.
func (m *ReferenceModel) Admitted() uint64 {
	return m.admitted
}

// Warm tells if the window has reached its capacity.
func (m *ReferenceModel) Warm() bool {
	return m.window.Full()
}

// Pending exposes the latency queue, mostly for observation.
func (m *ReferenceModel) Pending() *PendingQueue {
	return m.pending
}
