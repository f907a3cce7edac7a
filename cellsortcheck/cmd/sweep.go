package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/cellsort/oracle"
)

// SweepFile lists the points of a sweep. Empty lists fall back to the
// default sweep.
type SweepFile struct {
	Modes        []oracle.Mode        `yaml:"modes"`
	Combinations []oracle.Combination `yaml:"combinations"`
}

// LoadSweepFile reads a sweep from a YAML file.
func LoadSweepFile(path string) (SweepFile, error) {
	var f SweepFile

	data, err := os.ReadFile(path)
	if err != nil {
		return f, errors.Wrap(err, "reading sweep file")
	}

	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return f, errors.Wrapf(err, "parsing sweep file %s", path)
	}

	if len(f.Modes) == 0 {
		f.Modes = oracle.DefaultModes()
	}

	if len(f.Combinations) == 0 {
		f.Combinations = oracle.DefaultCombinations()
	}

	return f, nil
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Check every combination of a sweep as an isolated run.",
	Long: `sweep runs every combination of value width, meta width and ` +
		`depth under every stimulus mode. Without --sweep-file the ` +
		`standard sweep is used: 8-bit values, with and without an 8-bit ` +
		`tag, 8, 16 and 32 cells, ascending and random stimulus.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		base, err := configFromFlags(cmd)
		if err != nil {
			return err
		}

		sweep := SweepFile{
			Modes:        oracle.DefaultModes(),
			Combinations: oracle.DefaultCombinations(),
		}

		path, _ := cmd.Flags().GetString("sweep-file")
		if path != "" {
			sweep, err = LoadSweepFile(path)
			if err != nil {
				return err
			}
		}

		builder, err := simulationBuilderFromFlags(cmd)
		if err != nil {
			return err
		}

		bench, closeRecorder, err := benchFromFlags(cmd)
		if err != nil {
			return err
		}
		defer closeRecorder()

		records := bench.Sweep(base, sweep.Combinations, sweep.Modes,
			builder.DeviceFactory())

		failed := 0
		for _, rec := range records {
			status := "PASS"
			if !rec.Passed {
				status = "FAIL"
				failed++
			}

			cmd.Printf("%s %s: value width %d, meta width %d, depth %d, %s\n",
				status, rec.ID, rec.Config.ValueWidth, rec.Config.MetaWidth,
				rec.Config.WindowDepth, rec.Config.Mode)
		}

		if failed > 0 {
			return errors.Newf("%d of %d runs failed", failed, len(records))
		}

		return nil
	},
}

func init() {
	addConfigFlags(sweepCmd)
	sweepCmd.Flags().String("sweep-file", "",
		"YAML file listing the modes and combinations to run.")
	rootCmd.AddCommand(sweepCmd)
}
