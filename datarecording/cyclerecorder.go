package datarecording

import (
	"strconv"
	"strings"

	"github.com/sarchlab/cellsort/oracle"
	"github.com/sarchlab/cellsort/sim"
)

// Table names used by the CycleRecorder.
const (
	CycleTable = "cellsort_cycles"
	RunTable   = "cellsort_runs"
)

// CycleEntry is one checked cycle. Values are stored as decimal text, as
// SQLite has no unsigned 64-bit type.
type CycleEntry struct {
	RunID    string
	Cycle    int
	Value    string
	Meta     string
	Admitted string
	Expected string
	Observed string
	Matched  bool
}

// RunEntry is the outcome of one run.
type RunEntry struct {
	ID              string
	ValueWidth      int
	MetaWidth       int
	WindowDepth     int
	PipelineLatency int
	Mode            string
	Seed            string
	Evict           string
	CyclesChecked   int
	Passed          bool
	Error           string
	DurationSec     float64
}

// CycleRecorder is a hook for the oracle bench that records every checked
// cycle and every finished run.
type CycleRecorder struct {
	recorder DataRecorder
}

// NewCycleRecorder creates the tables on the recorder and returns the hook.
func NewCycleRecorder(recorder DataRecorder) *CycleRecorder {
	recorder.CreateTable(CycleTable, CycleEntry{})
	recorder.CreateTable(RunTable, RunEntry{})

	return &CycleRecorder{recorder: recorder}
}

// Func records the item of the hook.
func (r *CycleRecorder) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case oracle.HookPosCycleChecked:
		r.recordCycle(ctx.Item.(oracle.CycleRecord))
	case oracle.HookPosRunEnd:
		r.recordRun(ctx.Item.(*oracle.RunRecord))
	}
}

func (r *CycleRecorder) recordCycle(c oracle.CycleRecord) {
	r.recorder.InsertData(CycleTable, CycleEntry{
		RunID:    c.RunID,
		Cycle:    c.Cycle,
		Value:    strconv.FormatUint(c.Stimulus.Value, 10),
		Meta:     strconv.FormatUint(c.Stimulus.Meta, 10),
		Admitted: strconv.FormatUint(c.Admitted, 10),
		Expected: FormatVector(c.Expected),
		Observed: FormatVector(c.Observed),
		Matched:  c.Match,
	})
}

func (r *CycleRecorder) recordRun(rec *oracle.RunRecord) {
	entry := RunEntry{
		ID:              rec.ID,
		ValueWidth:      rec.Config.ValueWidth,
		MetaWidth:       rec.Config.MetaWidth,
		WindowDepth:     rec.Config.WindowDepth,
		PipelineLatency: rec.Config.PipelineLatency,
		Mode:            string(rec.Config.Mode),
		Seed:            strconv.FormatUint(rec.Config.Seed, 10),
		Evict:           rec.Config.Evict.String(),
		CyclesChecked:   rec.CyclesChecked,
		Passed:          rec.Passed,
		DurationSec:     rec.Duration.Seconds(),
	}

	if rec.Err != nil {
		entry.Error = rec.Err.Error()
	}

	r.recorder.InsertData(RunTable, entry)
}

// FormatVector renders a vector as space separated decimals.
func FormatVector(v []uint64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatUint(x, 10)
	}

	return strings.Join(parts, " ")
}
