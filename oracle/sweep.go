package oracle

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/xid"
)

// Combination is one point of a parameter sweep.
type Combination struct {
	ValueWidth  int `yaml:"value_width"`
	MetaWidth   int `yaml:"meta_width"`
	WindowDepth int `yaml:"depth"`
}

// DefaultCombinations returns the standard sweep: 8-bit
// values, with and without an 8-bit tag, in 8, 16 and 32 deep windows.
func DefaultCombinations() []Combination {
	var combos []Combination

	for _, depth := range []int{8, 16, 32} {
		for _, metaWidth := range []int{0, 8} {
			combos = append(combos, Combination{
				ValueWidth:  8,
				MetaWidth:   metaWidth,
				WindowDepth: depth,
			})
		}
	}

	return combos
}

// DefaultModes returns both stimulus modes.
func DefaultModes() []Mode {
	return []Mode{ModeAscending, ModeRandom}
}

// Apply returns base with the swept parameters replaced.
func (c Combination) Apply(base Config) Config {
	base.ValueWidth = c.ValueWidth
	base.MetaWidth = c.MetaWidth
	base.WindowDepth = c.WindowDepth

	return base
}

// DeviceFactory builds a fresh device and the clock that drives it for one
// run. Nothing may be shared between the devices it returns.
type DeviceFactory func(cfg Config) (Device, Clock, error)

// Sweep runs every combination under every mode as an isolated run and
// returns one record per run, in order. A failing run does not stop the
// sweep.
func (b *Bench) Sweep(
	base Config,
	combos []Combination,
	modes []Mode,
	factory DeviceFactory,
) []*RunRecord {
	records := make([]*RunRecord, 0, len(combos)*len(modes))

	for _, combo := range combos {
		for _, mode := range modes {
			cfg := combo.Apply(base)
			cfg.Mode = mode

			records = append(records, b.runIsolated(cfg, factory))
		}
	}

	return records
}

func (b *Bench) runIsolated(cfg Config, factory DeviceFactory) *RunRecord {
	err := cfg.Validate()
	if err != nil {
		return b.notStarted(cfg, err)
	}

	device, clock, err := factory(cfg)
	if err != nil {
		return b.notStarted(cfg, errors.Wrap(err, "building device"))
	}

	rec, _ := b.Run(cfg, device, clock)

	return rec
}

func (b *Bench) notStarted(cfg Config, err error) *RunRecord {
	rec := &RunRecord{ID: xid.New().String(), Config: cfg, Err: err}
	b.report(rec)

	return rec
}
