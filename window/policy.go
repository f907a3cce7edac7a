package window

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// EvictPolicy selects the element a full window discards after an insert.
type EvictPolicy int

// The supported eviction policies.
const (
	// EvictSmallest discards the smallest value. Among equal values the one
	// that has been resident longest goes first.
	EvictSmallest EvictPolicy = iota

	// EvictLargest discards the largest value. Among equal values the most
	// recently inserted one goes first.
	EvictLargest

	// EvictOldest discards the value that was inserted first, regardless of
	// its magnitude.
	EvictOldest
)

var policyNames = map[EvictPolicy]string{
	EvictSmallest: "smallest",
	EvictLargest:  "largest",
	EvictOldest:   "oldest",
}

func (p EvictPolicy) String() string {
	name, ok := policyNames[p]
	if !ok {
		return "EvictPolicy(" + strconv.Itoa(int(p)) + ")"
	}

	return name
}

// ParseEvictPolicy converts a policy name to an EvictPolicy.
func ParseEvictPolicy(name string) (EvictPolicy, error) {
	for p, n := range policyNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}

	return 0, errors.Newf("unknown eviction policy %q", name)
}
