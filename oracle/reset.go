package oracle

import (
	"github.com/cockroachdb/errors"
)

// ResetSequencer brings the device into a known state before stimulus
// starts. The input is held valid with data zero for the whole sequence.
type ResetSequencer struct {
	ResetCycles  int
	SettleCycles int
}

// NewResetSequencer returns the sequencer configured for a run.
func NewResetSequencer(cfg Config) ResetSequencer {
	return ResetSequencer{
		ResetCycles:  cfg.ResetCycles,
		SettleCycles: cfg.SettleCycles,
	}
}

// Sequence asserts reset for ResetCycles edges, releases it and waits
// SettleCycles more edges.
func (s ResetSequencer) Sequence(ctx *SimContext) error {
	ctx.Device.SetInput(0, 0, true)
	ctx.Device.SetReset(true)

	for i := 0; i < s.ResetCycles; i++ {
		err := ctx.Advance()
		if err != nil {
			return errors.Wrapf(err, "reset edge %d", i)
		}
	}

	ctx.Device.SetReset(false)

	for i := 0; i < s.SettleCycles; i++ {
		err := ctx.Advance()
		if err != nil {
			return errors.Wrapf(err, "settle edge %d", i)
		}
	}

	return nil
}
