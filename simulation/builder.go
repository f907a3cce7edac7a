package simulation

import (
	"github.com/op/go-logging"
	"github.com/rs/xid"

	"github.com/sarchlab/cellsort/cellsort"
	"github.com/sarchlab/cellsort/oracle"
	"github.com/sarchlab/cellsort/sim"
	"github.com/sarchlab/cellsort/window"
)

// DefaultFreq is the device clock, a 20 ns period.
const DefaultFreq = 50 * sim.MHz

// Builder can be used to build the simulation of one run.
type Builder struct {
	freq          sim.Freq
	eventLog      *logging.Logger
	deviceEvict   *window.EvictPolicy
	deviceLatency *int
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		freq: DefaultFreq,
	}
}

// WithFreq sets the frequency of the device clock.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithEventLogger prints every simulation event to the logger at DEBUG
// level.
func (b Builder) WithEventLogger(log *logging.Logger) Builder {
	b.eventLog = log
	return b
}

// WithDeviceEvictPolicy builds the device with an eviction policy other than
// the one the model assumes.
func (b Builder) WithDeviceEvictPolicy(p window.EvictPolicy) Builder {
	b.deviceEvict = &p
	return b
}

// WithDeviceLatency builds the device with a pipeline latency other than the
// one the model assumes.
func (b Builder) WithDeviceLatency(n int) Builder {
	b.deviceLatency = &n
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.freq <= 0 {
		panic("clock frequency must be positive")
	}
}

// Build builds a fresh simulation running a device that matches the
// configuration, except where the builder overrides it.
func (b Builder) Build(cfg oracle.Config) *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		config:        cfg,
		compNameIndex: make(map[string]int),
	}

	s.engine = sim.NewSerialEngine()
	if b.eventLog != nil {
		s.engine.AcceptHook(sim.NewEventLogger(b.eventLog))
	}

	s.clock = sim.NewClock("Clk", s.engine, b.freq)

	evict := cfg.Evict
	if b.deviceEvict != nil {
		evict = *b.deviceEvict
	}

	latency := cfg.PipelineLatency
	if b.deviceLatency != nil {
		latency = *b.deviceLatency
	}

	s.device = cellsort.MakeBuilder().
		WithValueWidth(cfg.ValueWidth).
		WithMetaWidth(cfg.MetaWidth).
		WithDepth(cfg.WindowDepth).
		WithLatency(latency).
		WithEvictPolicy(evict).
		Build("CellSort")
	s.RegisterComponent(s.device)

	return s
}

// DeviceFactory returns a factory that builds a new simulation for every
// run of a sweep.
func (b Builder) DeviceFactory() oracle.DeviceFactory {
	return func(cfg oracle.Config) (oracle.Device, oracle.Clock, error) {
		s := b.Build(cfg)
		return s.Device(), s.Clock(), nil
	}
}
