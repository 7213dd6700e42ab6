// Package sequencer provides the request-injection adapters that sit between
// request sources (cores, DMA devices) and the controllers of the fabric.
package sequencer

import (
	"fmt"

	"github.com/sarchlab/tardis/cache"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/timing"
)

// Kind tells what a sequencer serves.
type Kind int

// The sequencer kinds.
const (
	KindCPU Kind = iota
	KindDMA
)

func (k Kind) String() string {
	if k == KindDMA {
		return "dma"
	}

	return "cpu"
}

// A Source is an external producer of access requests, such as a DMA-capable
// device port.
type Source interface {
	naming.Named
}

// Comp is a sequencer. It is owned by exactly one controller.
type Comp struct {
	naming.NamedBase

	kind        Kind
	version     int
	dcache      *cache.Config
	clockDomain timing.ClockDomain
	source      Source

	owner fabric.Node
}

// Kind returns whether the sequencer serves a core or a DMA engine.
func (s *Comp) Kind() Kind {
	return s.kind
}

// Version returns the version of the sequencer.
func (s *Comp) Version() int {
	return s.version
}

// DCache returns the data cache a CPU sequencer is bound to.
func (s *Comp) DCache() (cache.Config, bool) {
	if s.dcache == nil {
		return cache.Config{}, false
	}

	return *s.dcache, true
}

// ClockDomain returns the clock domain of the sequencer, or nil if it runs on
// the fabric clock.
func (s *Comp) ClockDomain() timing.ClockDomain {
	return s.clockDomain
}

// Source returns the external request source, or nil for a sequencer that
// is not bound to one.
func (s *Comp) Source() Source {
	return s.source
}

// HasSource tells whether the sequencer is bound to an external source.
func (s *Comp) HasSource() bool {
	return s.source != nil
}

// Owner returns the controller owning the sequencer.
func (s *Comp) Owner() fabric.Node {
	return s.owner
}

// AttachTo makes the node the exclusive owner of the sequencer. Attaching a
// sequencer that already has an owner panics.
func (s *Comp) AttachTo(node fabric.Node) {
	if s.owner != nil {
		panic(fmt.Sprintf("sequencer %s already owned by %s, now attaching to %s",
			s.Name(), s.owner.Name(), node.Name()))
	}

	s.owner = node
}
