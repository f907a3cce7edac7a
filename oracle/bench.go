package oracle

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/rs/xid"

	"github.com/sarchlab/cellsort/sim"
)

// HookPosCycleChecked triggers after the comparison of every stimulus
// cycle, matching or not. The Item field is a CycleRecord.
var HookPosCycleChecked = &sim.HookPos{Name: "CycleChecked"}

// HookPosRunEnd triggers once per run, after it passed or failed. The Item
// field is the *RunRecord.
var HookPosRunEnd = &sim.HookPos{Name: "RunEnd"}

// CycleRecord is what the bench knows about one checked cycle.
type CycleRecord struct {
	RunID    string
	Cycle    int
	Stimulus Stimulus
	Admitted uint64
	Expected []uint64
	Observed []uint64
	Match    bool
}

// RunRecord is the outcome of one run.
type RunRecord struct {
	ID            string
	Config        Config
	CyclesChecked int
	Passed        bool
	Err           error
	Duration      time.Duration
}

// A Bench drives runs: it resets the device, applies stimulus, advances the
// clock and compares, one cycle at a time, and stops at the first problem.
type Bench struct {
	sim.HookableBase

	log *logging.Logger
}

// NewBench creates a bench that reports through the given logger.
func NewBench(log *logging.Logger) *Bench {
	if log == nil {
		log = logging.MustGetLogger("oracle")
	}

	return &Bench{log: log}
}

// Run checks the device against the model for one configuration. The
// returned record is never nil; its Err is the returned error.
func (b *Bench) Run(cfg Config, device Device, clock Clock) (*RunRecord, error) {
	rec := &RunRecord{ID: xid.New().String(), Config: cfg}
	start := time.Now()

	rec.Err = b.run(rec, device, clock)
	rec.Passed = rec.Err == nil
	rec.Duration = time.Since(start)

	b.report(rec)

	return rec, rec.Err
}

func (b *Bench) run(rec *RunRecord, device Device, clock Clock) error {
	cfg := rec.Config

	err := cfg.Validate()
	if err != nil {
		return err
	}

	gen, err := NewGenerator(cfg)
	if err != nil {
		return err
	}

	b.log.Infof("run %s: value width %d, meta width %d, depth %d, "+
		"latency %d, %s stimulus, seed %d, evict %s",
		rec.ID, cfg.ValueWidth, cfg.MetaWidth, cfg.WindowDepth,
		cfg.PipelineLatency, cfg.Mode, cfg.Seed, cfg.Evict)

	ctx := NewSimContext(device, clock)

	err = NewResetSequencer(cfg).Sequence(ctx)
	if err != nil {
		return errors.Wrap(err, "reset")
	}

	model := NewReferenceModel(cfg)
	cmp := NewComparator(cfg)

	for cycle := 0; cycle < gen.Len(); cycle++ {
		stim := gen.Drive(ctx, cycle)
		expected := model.Step(stim.Value)

		err = ctx.Advance()
		if err != nil {
			return &DivergenceError{
				Cycle:    cycle,
				Expected: expected,
				Reason:   "device did not complete the clock edge",
				cause:    err,
			}
		}

		observed, cmpErr := cmp.Check(ctx, cycle, expected)

		b.log.Debugf("%d, pushing %d", cycle, model.Admitted())
		b.log.Debugf(" > found  = %v", observed)
		b.log.Debugf(" > expect = %v", expected)

		b.notifyCycle(CycleRecord{
			RunID:    rec.ID,
			Cycle:    cycle,
			Stimulus: stim,
			Admitted: model.Admitted(),
			Expected: expected,
			Observed: observed,
			Match:    cmpErr == nil,
		})

		if cmpErr != nil {
			return cmpErr
		}

		rec.CyclesChecked++
	}

	return nil
}

func (b *Bench) notifyCycle(c CycleRecord) {
	if b.NumHooks() == 0 {
		return
	}

	b.InvokeHook(sim.HookCtx{
		Domain: b,
		Pos:    HookPosCycleChecked,
		Item:   c,
	})
}

func (b *Bench) report(rec *RunRecord) {
	switch {
	case rec.Passed:
		b.log.Infof("run %s passed %d cycles in %v",
			rec.ID, rec.CyclesChecked, rec.Duration)
	case IsConfigError(rec.Err):
		b.log.Errorf("run %s not started: %v", rec.ID, rec.Err)
	default:
		b.log.Errorf("run %s failed: %v", rec.ID, rec.Err)
	}

	if b.NumHooks() > 0 {
		b.InvokeHook(sim.HookCtx{
			Domain: b,
			Pos:    HookPosRunEnd,
			Item:   rec,
		})
	}
}
