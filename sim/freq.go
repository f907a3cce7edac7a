package sim

import (
	"log"
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// EdgeTime returns the time of the n-th rising edge. Edge 0 is time 0.
//
// Always derive edge times from this function so that the time an edge is
// scheduled at and the time the engine runs until compare equal.
func (f Freq) EdgeTime(n uint64) VTimeInSec {
	if f <= 0 {
		log.Panic("frequency must be positive")
	}

	return VTimeInSec(float64(n) / float64(f))
}
