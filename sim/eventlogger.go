package sim

import (
	"reflect"

	"github.com/op/go-logging"
)

// EventLogger is a hook that prints every event before it is handled.
type EventLogger struct {
	log *logging.Logger
}

// NewEventLogger returns an EventLogger that writes at DEBUG level.
func NewEventLogger(log *logging.Logger) *EventLogger {
	return &EventLogger{log: log}
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	named, ok := evt.Handler().(Named)
	if ok {
		h.log.Debugf("%.10f, %s -> %s",
			evt.Time(), reflect.TypeOf(evt), named.Name())
	} else {
		h.log.Debugf("%.10f, %s", evt.Time(), reflect.TypeOf(evt))
	}
}
