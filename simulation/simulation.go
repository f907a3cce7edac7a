// Package simulation assembles the pieces that execute the device under test
// for one run: an engine, a clock domain and the device itself.
package simulation

import (
	"github.com/sarchlab/cellsort/cellsort"
	"github.com/sarchlab/cellsort/oracle"
	"github.com/sarchlab/cellsort/sim"
)

// Component is something that lives in the clock domain of the simulation.
type Component interface {
	sim.Named
	sim.Ticker
}

// A Simulation owns everything one run needs. Nothing is shared between
// simulations.
type Simulation struct {
	id     string
	config oracle.Config

	engine *sim.SerialEngine
	clock  *sim.Clock
	device *cellsort.Comp

	components    []Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Config returns the configuration the simulation was built for.
func (s *Simulation) Config() oracle.Config {
	return s.config
}

// Engine returns the engine used in the simulation.
func (s *Simulation) Engine() sim.Engine {
	return s.engine
}

// Clock returns the clock domain of the device.
func (s *Simulation) Clock() *sim.Clock {
	return s.clock
}

// Device returns the device under test.
func (s *Simulation) Device() *cellsort.Comp {
	return s.device
}

// RegisterComponent adds a component to the clock domain. Components tick in
// registration order.
func (s *Simulation) RegisterComponent(c Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1
	s.clock.Register(c)
}

// GetComponentByName returns the component with the given name, or nil.
func (s *Simulation) GetComponentByName(name string) Component {
	i, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[i]
}

// Components returns all registered components.
func (s *Simulation) Components() []Component {
	return append([]Component(nil), s.components...)
}
