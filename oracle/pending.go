package oracle

import (
	"log"

	"github.com/sarchlab/cellsort/sim"
)

// PendingQueue holds the values that have been sent to the device but have
// not reached its output yet. Between cycles it holds exactly latency
// values.
type PendingQueue struct {
	buf     sim.Buffer[uint64]
	latency int
}

// NewPendingQueue creates a queue pre-filled with latency zeros, which is
// what the device pipeline holds when stimulus starts.
func NewPendingQueue(latency int) *PendingQueue {
	q := &PendingQueue{
		buf:     sim.NewBuffer[uint64]("Model.Pending", latency+1),
		latency: latency,
	}

	for i := 0; i < latency; i++ {
		q.buf.Push(0)
	}

	return q
}

// Shift pushes v at the tail and pops the value at the head.
func (q *PendingQueue) Shift(v uint64) uint64 {
	q.buf.Push(v)

	head, ok := q.buf.Pop()
	if !ok {
		log.Panic("pending queue is empty after a push")
	}

	return head
}

// Len returns the number of values in flight.
func (q *PendingQueue) Len() int {
	return q.buf.Size()
}

// AcceptHook lets observers see values entering and leaving the queue.
func (q *PendingQueue) AcceptHook(hook sim.Hook) {
	q.buf.AcceptHook(hook)
}
