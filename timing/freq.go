// Package timing describes the clocks that fabric controllers run on.
package timing

import (
	"log"
	"strconv"
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

// Period returns the time between two consecutive ticks, in seconds.
func (f Freq) Period() float64 {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return 1.0 / float64(f)
}

// Divide returns the frequency slowed down by the given integer divider.
func (f Freq) Divide(divider int) Freq {
	if divider <= 0 {
		log.Panicf("clock divider must be positive, got %d", divider)
	}

	return f / Freq(divider)
}

// String formats the frequency with the largest unit that keeps the value at
// or above one.
func (f Freq) String() string {
	switch {
	case f >= GHz:
		return strconv.FormatFloat(float64(f/GHz), 'g', -1, 64) + "GHz"
	case f >= MHz:
		return strconv.FormatFloat(float64(f/MHz), 'g', -1, 64) + "MHz"
	case f >= KHz:
		return strconv.FormatFloat(float64(f/KHz), 'g', -1, 64) + "KHz"
	default:
		return strconv.FormatFloat(float64(f), 'g', -1, 64) + "Hz"
	}
}
