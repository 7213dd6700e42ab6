package timing

import "github.com/sarchlab/tardis/naming"

// A ClockDomain is a group of controllers that tick on the same clock.
type ClockDomain interface {
	naming.Named

	Freq() Freq
}

// SrcClockDomain is a clock domain driven by its own source.
type SrcClockDomain struct {
	naming.NamedBase

	freq Freq
}

// NewSrcClockDomain creates a clock domain with a fixed frequency.
func NewSrcClockDomain(name string, freq Freq) *SrcClockDomain {
	if freq <= 0 {
		panic("clock domain frequency must be positive")
	}

	return &SrcClockDomain{
		NamedBase: naming.MakeNamedBase(name),
		freq:      freq,
	}
}

// Freq returns the frequency of the domain.
func (d *SrcClockDomain) Freq() Freq {
	return d.freq
}

// DerivedClockDomain runs at an integer fraction of a parent domain.
type DerivedClockDomain struct {
	naming.NamedBase

	parent  ClockDomain
	divider int
}

// NewDerivedClockDomain creates a domain whose frequency is the parent's
// frequency divided by divider.
func NewDerivedClockDomain(
	name string,
	parent ClockDomain,
	divider int,
) *DerivedClockDomain {
	if parent == nil {
		panic("derived clock domain requires a parent")
	}

	if divider <= 0 {
		panic("clock divider must be positive")
	}

	return &DerivedClockDomain{
		NamedBase: naming.MakeNamedBase(name),
		parent:    parent,
		divider:   divider,
	}
}

// Freq returns the parent frequency divided by the divider.
func (d *DerivedClockDomain) Freq() Freq {
	return d.parent.Freq().Divide(d.divider)
}

// Parent returns the domain this domain is derived from.
func (d *DerivedClockDomain) Parent() ClockDomain {
	return d.parent
}

// Divider returns the clock divider.
func (d *DerivedClockDomain) Divider() int {
	return d.divider
}
