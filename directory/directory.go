// Package directory provides the directory controllers of the tardis protocol
// and the wiring of the directory set to the fabric.
package directory

import (
	"fmt"

	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/timing"
)

// Comp is a directory controller. A directory tracks the coherence state of
// the address range it is home for and talks to the memory backend.
type Comp struct {
	*fabric.NodeBase

	isROM       bool
	addrStart   uint64
	memSize     uint64
	clockDomain timing.ClockDomain
	backend     *Backend
}

// IsROM tells whether the directory serves the boot memory.
func (d *Comp) IsROM() bool {
	return d.isROM
}

// AddrStart returns the first address the directory is home for.
func (d *Comp) AddrStart() uint64 {
	return d.addrStart
}

// MemSize returns the number of bytes the directory is home for.
func (d *Comp) MemSize() uint64 {
	return d.memSize
}

// AddrEnd returns the first address past the directory's range.
func (d *Comp) AddrEnd() uint64 {
	return d.addrStart + d.memSize
}

// ClockDomain returns the clock domain of the directory.
func (d *Comp) ClockDomain() timing.ClockDomain {
	return d.clockDomain
}

// Backend returns the memory backend the directory reads and writes.
func (d *Comp) Backend() *Backend {
	return d.backend
}

// Backend is the memory a directory set sits in front of. The memory
// controllers run in their own clock domain.
type Backend struct {
	naming.NamedBase

	clockDomain timing.ClockDomain
	bootMemSize uint64
}

// NewBackend creates a backend. A bootMemSize of 0 means the system has no
// boot memory.
func NewBackend(
	name string,
	clockDomain timing.ClockDomain,
	bootMemSize uint64,
) *Backend {
	return &Backend{
		NamedBase:   naming.MakeNamedBase(name),
		clockDomain: clockDomain,
		bootMemSize: bootMemSize,
	}
}

// ClockDomain returns the clock domain of the memory controllers.
func (b *Backend) ClockDomain() timing.ClockDomain {
	return b.clockDomain
}

// HasBootMem tells whether the system carries a boot memory.
func (b *Backend) HasBootMem() bool {
	return b.bootMemSize > 0
}

// BootMemSize returns the size of the boot memory.
func (b *Backend) BootMemSize() uint64 {
	return b.bootMemSize
}

// Builder can build directory controllers. The controllers are not wired.
type Builder struct {
	version     int
	isROM       bool
	addrStart   uint64
	memSize     uint64
	clockDomain timing.ClockDomain
	backend     *Backend
}

// MakeBuilder creates a builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithVersion sets the version of the directory.
func (b Builder) WithVersion(v int) Builder {
	b.version = v
	return b
}

// WithAddrRange sets the range the directory is home for.
func (b Builder) WithAddrRange(start, size uint64) Builder {
	b.addrStart = start
	b.memSize = size

	return b
}

// WithClockDomain sets the clock domain of the directory.
func (b Builder) WithClockDomain(d timing.ClockDomain) Builder {
	b.clockDomain = d
	return b
}

// WithBackend sets the memory backend.
func (b Builder) WithBackend(backend *Backend) Builder {
	b.backend = backend
	return b
}

// AsROM makes the directory serve the boot memory.
func (b Builder) AsROM() Builder {
	b.isROM = true
	return b
}

// Build creates a directory with the given name.
func (b Builder) Build(name string) *Comp {
	if b.memSize == 0 {
		panic(fmt.Sprintf("directory %s covers no memory", name))
	}

	return &Comp{
		NodeBase:    fabric.NewNodeBase(name, fabric.KindDirectory, b.version),
		isROM:       b.isROM,
		addrStart:   b.addrStart,
		memSize:     b.memSize,
		clockDomain: b.clockDomain,
		backend:     b.backend,
	}
}
