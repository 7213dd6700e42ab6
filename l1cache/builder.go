package l1cache

import (
	"github.com/sarchlab/tardis/cache"
	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/sequencer"
	"github.com/sarchlab/tardis/timing"
)

const initialProgTS = 1

// Builder can build L1 cache controllers.
type Builder struct {
	version       int
	blockSizeBits int
	l1ISize       uint64
	l1IAssoc      int
	l1DSize       uint64
	l1DAssoc      int
	ports         int
	sendEvictions bool
	clockDomain   timing.ClockDomain
	network       *fabric.Network
}

// MakeBuilder creates a builder with the default L1 geometry.
func MakeBuilder() Builder {
	return Builder{
		blockSizeBits: 6,
		l1ISize:       32 * config.KB,
		l1IAssoc:      2,
		l1DSize:       64 * config.KB,
		l1DAssoc:      2,
		ports:         4,
	}
}

// WithVersion sets the index of the core the controller serves.
func (b Builder) WithVersion(v int) Builder {
	b.version = v
	return b
}

// WithBlockSizeBits sets log2 of the cache line size.
func (b Builder) WithBlockSizeBits(bits int) Builder {
	b.blockSizeBits = bits
	return b
}

// WithICache sets the size and associativity of the instruction cache.
func (b Builder) WithICache(size uint64, assoc int) Builder {
	b.l1ISize = size
	b.l1IAssoc = assoc

	return b
}

// WithDCache sets the size and associativity of the data cache.
func (b Builder) WithDCache(size uint64, assoc int) Builder {
	b.l1DSize = size
	b.l1DAssoc = assoc

	return b
}

// WithPorts sets the number of transitions the controller takes per cycle.
func (b Builder) WithPorts(ports int) Builder {
	b.ports = ports
	return b
}

// WithSendEvictions sets whether evictions are forwarded to the core.
func (b Builder) WithSendEvictions(send bool) Builder {
	b.sendEvictions = send
	return b
}

// WithClockDomain sets the clock domain of the controller and its sequencer.
func (b Builder) WithClockDomain(d timing.ClockDomain) Builder {
	b.clockDomain = d
	return b
}

// WithNetwork sets the network the controller's channels are bound to.
func (b Builder) WithNetwork(n *fabric.Network) Builder {
	b.network = n
	return b
}

// Build creates the controller under the parent name, e.g. "Ruby" gives
// "Ruby.L1Cache[3]", and wires its channels.
func (b Builder) Build(parent string) *Comp {
	b.networkMustBeGiven()
	b.clockDomainMustBeGiven()
	b.portsMustBePositive()

	name := naming.BuildNameWithIndex(parent, "L1Cache", b.version)

	icache := cache.MakeBuilder().
		WithSize(b.l1ISize).
		WithAssoc(b.l1IAssoc).
		WithStartIndexBit(b.blockSizeBits).
		AsICache().
		Build()
	dcache := cache.MakeBuilder().
		WithSize(b.l1DSize).
		WithAssoc(b.l1DAssoc).
		WithStartIndexBit(b.blockSizeBits).
		AsDCache().
		Build()
	cacheMemory := cache.MakeBuilder().
		WithSize(config.CacheMemorySize).
		WithAssoc(config.CacheMemoryAssoc).
		WithStartIndexBit(b.blockSizeBits).
		Build()

	seq := sequencer.MakeBuilder().
		WithVersion(b.version).
		WithDCache(dcache).
		WithClockDomain(b.clockDomain).
		Build(naming.BuildName(name, "Sequencer"))

	c := &Comp{
		NodeBase:            fabric.NewNodeBase(name, fabric.KindL1Cache, b.version),
		L1ICache:            icache,
		L1DCache:            dcache,
		CacheMemory:         cacheMemory,
		Sequencer:           seq,
		ClockDomain:         b.clockDomain,
		SendEvictions:       b.sendEvictions,
		TransitionsPerCycle: b.ports,
		ProgTSGlobal:        initialProgTS,
	}

	seq.AttachTo(c)
	fabric.WireChannels(c, b.network, nil)

	return c
}

func (b Builder) networkMustBeGiven() {
	if b.network == nil {
		panic("network is not given")
	}
}

func (b Builder) clockDomainMustBeGiven() {
	if b.clockDomain == nil {
		panic("clock domain is not given")
	}
}

func (b Builder) portsMustBePositive() {
	if b.ports <= 0 {
		panic("ports must be positive")
	}
}
