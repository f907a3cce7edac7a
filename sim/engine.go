package sim

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}

// An Engine is a unit that keeps the discrete event simulation run.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Run processes all the events until the queue is empty.
	Run() error

	// RunUntil processes all the events scheduled at or before the given
	// time and then moves the current time to it.
	RunUntil(t VTimeInSec) error
}
