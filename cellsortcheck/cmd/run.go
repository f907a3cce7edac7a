package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sarchlab/cellsort/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check one configuration.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := configFromFlags(cmd)
		if err != nil {
			return err
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

		err = cfg.Validate()
		if err != nil {
			return err
		}

		s := builder.Build(cfg)

		rec, err := bench.Run(cfg, s.Device(), s.Clock())
		if err != nil {
			return errors.Wrapf(err, "run %s", rec.ID)
		}

		h, m, sec := logger.ParseTime(rec.Duration)
		cmd.Printf("PASS %s: %d cycles (%dh %dm %ds)\n",
			rec.ID, rec.CyclesChecked, h, m, sec)

		return nil
	},
}

func init() {
	addConfigFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
