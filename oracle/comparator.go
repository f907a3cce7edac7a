package oracle

import (
	"fmt"
)

// Comparator checks the device output against the model prediction.
type Comparator struct {
	depth    int
	maxValue uint64
}

// NewComparator creates a comparator for the geometry of a run.
func NewComparator(cfg Config) *Comparator {
	return &Comparator{
		depth:    cfg.WindowDepth,
		maxValue: cfg.MaxValue(),
	}
}

// Check reads the device output and compares it element by element with
// expected. It returns the observed vector and, on the first difference, a
// DivergenceError. Shape problems are divergences too.
func (c *Comparator) Check(
	ctx *SimContext,
	cycle int,
	expected []uint64,
) ([]uint64, error) {
	observed := append([]uint64(nil), ctx.Device.Output()...)

	reason := c.findProblem(expected, observed)
	if reason == "" {
		return observed, nil
	}

	return observed, &DivergenceError{
		Cycle:    cycle,
		Expected: append([]uint64(nil), expected...),
		Observed: observed,
		Reason:   reason,
	}
}

func (c *Comparator) findProblem(expected, observed []uint64) string {
	if len(observed) != c.depth {
		return fmt.Sprintf("output has %d elements, want %d",
			len(observed), c.depth)
	}

	for i, v := range observed {
		if v > c.maxValue {
			return fmt.Sprintf("element %d (%d) exceeds the value width", i, v)
		}
	}

	for i := range expected {
		if expected[i] != observed[i] {
			return fmt.Sprintf("first difference at element %d", i)
		}
	}

	return ""
}
