// Package logger creates the leveled loggers used across the oracle.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
)

const defaultLogFormat = "%{color}%{time:2006-01-02 15:04:05.000} %{level:.4s} %{module}:%{color:reset} %{message}"

// NewLogger creates a logger for a module writing to stderr. Unknown level
// names fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	return newLogger(os.Stderr, level, module)
}

func newLogger(w io.Writer, level string, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(
		backend, logging.MustStringFormatter(defaultLogFormat))

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(parseLevel(level), module)
	log.SetBackend(leveled)

	return log
}

func parseLevel(level string) logging.Level {
	lvl, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
	if err != nil {
		return logging.INFO
	}

	return lvl
}

// ParseTime splits a duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second).Seconds())

	return total / 3600, (total % 3600) / 60, total % 60
}
