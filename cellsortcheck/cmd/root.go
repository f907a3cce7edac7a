// Package cmd provides the command-line interface of cellsortcheck.
package cmd

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Environment variables that provide flag defaults. They may also be set in
// a .env file in the working directory.
const (
	EnvLogLevel = "CELLSORT_LOG_LEVEL"
	EnvSeed     = "CELLSORT_SEED"
	EnvRecord   = "CELLSORT_RECORD"
)

var envFlags = map[string]string{
	"log-level": EnvLogLevel,
	"seed":      EnvSeed,
	"record":    EnvRecord,
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cellsortcheck",
	Short: "Check a cell sort device against its reference model.",
	Long: `cellsortcheck resets a cell sort device, drives it with a ` +
		`deterministic stimulus and compares its output with a reference ` +
		`model on every cycle, stopping at the first divergence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, "loading .env")
		}

		return applyEnv(cmd)
	},
}

// applyEnv sets the flags that are not given on the command line from the
// environment.
func applyEnv(cmd *cobra.Command) error {
	for flag, env := range envFlags {
		f := cmd.Flags().Lookup(flag)
		if f == nil || f.Changed {
			continue
		}

		value, ok := os.LookupEnv(env)
		if !ok {
			continue
		}

		err := cmd.Flags().Set(flag, value)
		if err != nil {
			return errors.Wrapf(err, "%s=%q", env, value)
		}
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "INFO",
		"Log level: CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG. "+
			"DEBUG prints every cycle.")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}
