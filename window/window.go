// Package window provides the sliding sorted window that a cell sort device
// retains.
package window

import (
	"log"
	"sort"
)

type entry struct {
	value uint64
	seq   uint64
}

// A Window keeps up to depth values in ascending order. It grows without
// eviction until it is full. From then on every insert is followed by the
// eviction of exactly one element, chosen by the policy, possibly the
// element just inserted.
type Window struct {
	depth   int
	policy  EvictPolicy
	entries []entry
	nextSeq uint64
}

// New creates an empty window.
func New(depth int, policy EvictPolicy) *Window {
	if depth < 1 {
		log.Panicf("window depth must be at least 1, got %d", depth)
	}

	return &Window{
		depth:   depth,
		policy:  policy,
		entries: make([]entry, 0, depth+1),
	}
}

// Depth returns the capacity of the window.
func (w *Window) Depth() int {
	return w.depth
}

// Policy returns the eviction policy of the window.
func (w *Window) Policy() EvictPolicy {
	return w.policy
}

// Len returns the number of values currently retained.
func (w *Window) Len() int {
	return len(w.entries)
}

// Full tells if the window has reached its capacity.
func (w *Window) Full() bool {
	return len(w.entries) >= w.depth
}

// Insert adds v. A new value is placed after the residents it equals, which
// is where a stable sort of the appended sequence would put it. If the
// window overflows, the evicted value is returned.
func (w *Window) Insert(v uint64) (evicted uint64, didEvict bool) {
	pos := sort.Search(len(w.entries), func(i int) bool {
		return w.entries[i].value > v
	})

	w.entries = append(w.entries, entry{})
	copy(w.entries[pos+1:], w.entries[pos:])
	w.entries[pos] = entry{value: v, seq: w.nextSeq}
	w.nextSeq++

	if len(w.entries) <= w.depth {
		return 0, false
	}

	victim := w.victim()
	evicted = w.entries[victim].value
	w.entries = append(w.entries[:victim], w.entries[victim+1:]...)

	return evicted, true
}

func (w *Window) victim() int {
	switch w.policy {
	case EvictSmallest:
		return 0
	case EvictLargest:
		return len(w.entries) - 1
	case EvictOldest:
		oldest := 0
		for i, e := range w.entries {
			if e.seq < w.entries[oldest].seq {
				oldest = i
			}
		}

		return oldest
	default:
		log.Panicf("unknown eviction policy %d", w.policy)
	}

	return 0
}

// Values returns the retained values in ascending order.
func (w *Window) Values() []uint64 {
	values := make([]uint64, len(w.entries))
	for i, e := range w.entries {
		values[i] = e.value
	}

	return values
}

// Reset empties the window.
func (w *Window) Reset() {
	w.entries = w.entries[:0]
	w.nextSeq = 0
}
