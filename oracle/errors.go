package oracle

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// A ConfigError reports a configuration that cannot be run. It is always
// returned before the first clock edge.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Field + " " + e.Reason
}

func configErrorf(field, format string, args ...any) error {
	return errors.WithStack(&ConfigError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	})
}

// A DivergenceError reports the first cycle on which the device and the
// model disagree. Both full vectors are kept, since a latency bug usually
// shows up as a recognisable shift of the whole window.
type DivergenceError struct {
	Cycle    int
	Expected []uint64
	Observed []uint64
	Reason   string

	cause error
}

func (e *DivergenceError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "divergence at cycle %d: %s", e.Cycle, e.Reason)
	fmt.Fprintf(&b, "\n > expect = %v", e.Expected)
	fmt.Fprintf(&b, "\n > found  = %v", e.Observed)

	if e.cause != nil {
		fmt.Fprintf(&b, "\n > cause  = %v", e.cause)
	}

	return b.String()
}

// Unwrap returns the protocol error behind the divergence, if any.
func (e *DivergenceError) Unwrap() error {
	return e.cause
}

// IsConfigError tells if err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// AsDivergence extracts the DivergenceError from err.
func AsDivergence(err error) (*DivergenceError, bool) {
	var div *DivergenceError
	ok := errors.As(err, &div)

	return div, ok
}
