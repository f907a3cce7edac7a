package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sarchlab/cellsort/datarecording"
	"github.com/sarchlab/cellsort/logger"
	"github.com/sarchlab/cellsort/oracle"
	"github.com/sarchlab/cellsort/simulation"
	"github.com/sarchlab/cellsort/window"
)

func addConfigFlags(cmd *cobra.Command) {
	def := oracle.DefaultConfig()

	cmd.Flags().Int("value-width", def.ValueWidth, "Width of the sorted values in bits.")
	cmd.Flags().Int("meta-width", def.MetaWidth, "Width of the tag carried with each value.")
	cmd.Flags().Int("depth", def.WindowDepth, "Number of cells of the device.")
	cmd.Flags().Int("latency", def.PipelineLatency, "Pipeline latency of the device in cycles.")
	cmd.Flags().String("mode", string(def.Mode), "Stimulus mode: ascending or random.")
	cmd.Flags().Uint64("seed", def.Seed, "Seed of the random stimulus.")
	cmd.Flags().Int("cycles", def.Cycles, "Number of stimulus cycles to check.")
	cmd.Flags().String("evict", def.Evict.String(),
		"Eviction policy of the model: smallest, largest or oldest.")

	cmd.Flags().String("device-evict", "",
		"Build the device with another eviction policy than the model.")
	cmd.Flags().Int("device-latency", -1,
		"Build the device with another pipeline latency than the model.")
	cmd.Flags().Bool("log-events", false,
		"Print every simulation event at DEBUG level.")
	cmd.Flags().String("record", "",
		"Record every checked cycle into <record>.sqlite3.")
}

func configFromFlags(cmd *cobra.Command) (oracle.Config, error) {
	cfg := oracle.DefaultConfig()
	flags := cmd.Flags()

	cfg.ValueWidth, _ = flags.GetInt("value-width")
	cfg.MetaWidth, _ = flags.GetInt("meta-width")
	cfg.WindowDepth, _ = flags.GetInt("depth")
	cfg.PipelineLatency, _ = flags.GetInt("latency")
	cfg.Seed, _ = flags.GetUint64("seed")
	cfg.Cycles, _ = flags.GetInt("cycles")

	mode, _ := flags.GetString("mode")
	cfg.Mode = oracle.Mode(mode)

	evict, _ := flags.GetString("evict")
	policy, err := window.ParseEvictPolicy(evict)
	if err != nil {
		return cfg, err
	}
	cfg.Evict = policy

	return cfg, nil
}

func simulationBuilderFromFlags(cmd *cobra.Command) (simulation.Builder, error) {
	b := simulation.MakeBuilder()
	flags := cmd.Flags()

	evict, _ := flags.GetString("device-evict")
	if evict != "" {
		policy, err := window.ParseEvictPolicy(evict)
		if err != nil {
			return b, errors.Wrap(err, "device-evict")
		}

		b = b.WithDeviceEvictPolicy(policy)
	}

	latency, _ := flags.GetInt("device-latency")
	if latency >= 0 {
		b = b.WithDeviceLatency(latency)
	}

	logEvents, _ := flags.GetBool("log-events")
	if logEvents {
		level, _ := flags.GetString("log-level")
		b = b.WithEventLogger(logger.NewLogger(level, "sim"))
	}

	return b, nil
}

// benchFromFlags creates the bench and, if requested, attaches a cycle
// recorder. The returned function closes the recorder.
func benchFromFlags(cmd *cobra.Command) (*oracle.Bench, func(), error) {
	level, _ := cmd.Flags().GetString("log-level")
	bench := oracle.NewBench(logger.NewLogger(level, "oracle"))

	path, _ := cmd.Flags().GetString("record")
	if path == "" {
		return bench, func() {}, nil
	}

	recorder, err := datarecording.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "record")
	}

	bench.AcceptHook(datarecording.NewCycleRecorder(recorder))

	return bench, func() {
		err := recorder.Close()
		if err != nil {
			cmd.PrintErrf("closing recorder: %v\n", err)
		}
	}, nil
}
