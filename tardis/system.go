// Package tardis assembles the controllers of the tardis coherence protocol
// into a fabric topology.
package tardis

import (
	"errors"

	"github.com/sarchlab/tardis/directory"
	"github.com/sarchlab/tardis/dma"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/l1cache"
	"github.com/sarchlab/tardis/sequencer"
	"github.com/sarchlab/tardis/timing"
	"github.com/sarchlab/tardis/topology"
)

// ProtocolName is the protocol identifier the assembler accepts.
const ProtocolName = "tardis"

// NumVirtualNetworks is the number of virtual networks the protocol needs.
// Network 5 is reserved.
const NumVirtualNetworks = 6

// MemCtrlClockDivider is the ratio between the fabric clock and the clock of
// the memory controllers.
const MemCtrlClockDivider = 3

var (
	// ErrProtocolMismatch is returned when the options select another
	// coherence protocol.
	ErrProtocolMismatch = errors.New("protocol mismatch")

	// ErrClockDomainCount is returned when the number of clock domains is
	// neither one nor the number of cores.
	ErrClockDomainCount = errors.New("clock domain count mismatch")

	// ErrAlreadyAssembled is returned when an assembler is run twice.
	ErrAlreadyAssembled = errors.New("already assembled")
)

// System is the result of an assembly.
type System struct {
	// ID identifies the assembly.
	ID string

	Network          *fabric.Network
	ClockDomain      timing.ClockDomain
	MemCtrlClkDomain timing.ClockDomain
	Backend          *directory.Backend

	// Sequencers holds the CPU sequencers. Sequencers[i] serves core i.
	Sequencers []*sequencer.Comp

	// Directories holds the primary directories, without the ROM directory.
	Directories  []*directory.Comp
	ROMDirectory *directory.Comp

	Topology *topology.Topology

	L1Caches map[int]*l1cache.Comp
	DMAs     map[int]*dma.Comp
	IO       *dma.Comp

	nodesByName map[string]fabric.Node
}

// NodeByName returns the controller with the given name.
func (s *System) NodeByName(name string) (fabric.Node, bool) {
	n, found := s.nodesByName[name]
	return n, found
}

// IOSequencer returns the sequencer of the I/O controller, or nil if the
// system is not a full-system one.
func (s *System) IOSequencer() *sequencer.Comp {
	if s.IO == nil {
		return nil
	}

	return s.IO.Sequencer
}

func (s *System) register(node fabric.Node) {
	s.nodesByName[node.Name()] = node
}
