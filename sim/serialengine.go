package sim

import (
	"log"
	"reflect"
)

// A SerialEngine is an Engine that always run events one after another.
//
// The first error returned by an event handler stops the engine. Events left
// in the queue stay there.
type SerialEngine struct {
	HookableBase

	time  VTimeInSec
	queue EventQueue
}

// NewSerialEngine creates a SerialEngine
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)
	e.queue = NewEventQueue()

	return e
}

// CurrentTime returns the time of the event being handled, or the time the
// last RunUntil stopped at.
func (e *SerialEngine) CurrentTime() VTimeInSec {
	return e.time
}

// Schedule register an event to be happen in the future
func (e *SerialEngine) Schedule(evt Event) {
	if evt.Time() < e.time {
		log.Panicf(
			"scheduling an event earlier than current time, "+
				"evt %s @ %.10f, now %.10f",
			reflect.TypeOf(evt), evt.Time(), e.time,
		)
	}

	e.queue.Push(evt)
}

// Run processes all the events scheduled in the SerialEngine
func (e *SerialEngine) Run() error {
	for e.queue.Len() > 0 {
		err := e.handleNext()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunUntil processes the events that happen no later than t.
func (e *SerialEngine) RunUntil(t VTimeInSec) error {
	if t < e.time {
		log.Panicf("cannot run back to %.10f, now %.10f", t, e.time)
	}

	for e.queue.Len() > 0 && e.queue.Peek().Time() <= t {
		err := e.handleNext()
		if err != nil {
			return err
		}
	}

	e.time = t

	return nil
}

func (e *SerialEngine) handleNext() error {
	evt := e.queue.Pop()
	e.time = evt.Time()

	hookCtx := HookCtx{
		Domain: e,
		Pos:    HookPosBeforeEvent,
		Item:   evt,
	}
	e.InvokeHook(hookCtx)

	err := evt.Handler().Handle(evt)

	hookCtx.Pos = HookPosAfterEvent
	hookCtx.Detail = err
	e.InvokeHook(hookCtx)

	return err
}
