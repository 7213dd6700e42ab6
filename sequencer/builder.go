package sequencer

import (
	"github.com/sarchlab/tardis/cache"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/timing"
)

// Builder can build sequencers.
type Builder struct {
	kind        Kind
	version     int
	dcache      *cache.Config
	clockDomain timing.ClockDomain
	source      Source
}

// MakeBuilder creates a builder for a CPU sequencer.
func MakeBuilder() Builder {
	return Builder{kind: KindCPU}
}

// AsDMA makes the builder build a DMA sequencer.
func (b Builder) AsDMA() Builder {
	b.kind = KindDMA
	return b
}

// WithVersion sets the version of the sequencer.
func (b Builder) WithVersion(v int) Builder {
	b.version = v
	return b
}

// WithDCache binds the sequencer to a data cache.
func (b Builder) WithDCache(c cache.Config) Builder {
	b.dcache = &c
	return b
}

// WithClockDomain sets the clock domain of the sequencer.
func (b Builder) WithClockDomain(d timing.ClockDomain) Builder {
	b.clockDomain = d
	return b
}

// WithSource binds the sequencer to an external request source.
func (b Builder) WithSource(s Source) Builder {
	b.source = s
	return b
}

// Build creates the sequencer.
func (b Builder) Build(name string) *Comp {
	if b.kind == KindCPU {
		b.dcacheMustBeGiven()
		b.clockDomainMustBeGiven()
	} else {
		b.dcacheMustNotBeGiven()
	}

	if b.version < 0 {
		panic("sequencer version must not be negative")
	}

	return &Comp{
		NamedBase:   naming.MakeNamedBase(name),
		kind:        b.kind,
		version:     b.version,
		dcache:      b.dcache,
		clockDomain: b.clockDomain,
		source:      b.source,
	}
}

func (b Builder) dcacheMustBeGiven() {
	if b.dcache == nil {
		panic("a CPU sequencer must be bound to a data cache")
	}
}

func (b Builder) clockDomainMustBeGiven() {
	if b.clockDomain == nil {
		panic("a CPU sequencer must be given a clock domain")
	}
}

func (b Builder) dcacheMustNotBeGiven() {
	if b.dcache != nil {
		panic("a DMA sequencer has no data cache")
	}
}
