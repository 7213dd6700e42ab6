package tardis

import (
	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/directory"
	"github.com/sarchlab/tardis/dma"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/timing"
	"github.com/sarchlab/tardis/topology"
)

// Builder can build assemblers.
type Builder struct {
	opts            config.Options
	clockDomains    []timing.ClockDomain
	rubyClockDomain timing.ClockDomain
	dmaSources      []dma.Source
	evictionPolicy  config.EvictionPolicy
	dirCreator      directory.Creator
	topoCreator     topology.Creator
	network         *fabric.Network
}

// MakeBuilder creates a builder with the default options and the default
// eviction policy.
func MakeBuilder() Builder {
	return Builder{
		opts:           config.Default(),
		evictionPolicy: config.SendEvicts,
	}
}

// WithOptions sets the options of the assembly.
func (b Builder) WithOptions(opts config.Options) Builder {
	b.opts = opts
	return b
}

// WithClockDomains sets the clock domains of the cores. Either one domain
// shared by all cores or one domain per core must be given. Without clock
// domains, all cores share one domain running at the CPU clock.
func (b Builder) WithClockDomains(domains []timing.ClockDomain) Builder {
	b.clockDomains = domains
	return b
}

// WithRubyClockDomain sets the clock domain of the fabric. Without it, the
// fabric runs at the Ruby clock of the options.
func (b Builder) WithRubyClockDomain(d timing.ClockDomain) Builder {
	b.rubyClockDomain = d
	return b
}

// WithDMASources sets the DMA-capable devices. One DMA controller is created
// per source.
func (b Builder) WithDMASources(sources []dma.Source) Builder {
	b.dmaSources = sources
	return b
}

// WithEvictionPolicy sets the policy deciding whether L1 controllers forward
// evictions.
func (b Builder) WithEvictionPolicy(p config.EvictionPolicy) Builder {
	b.evictionPolicy = p
	return b
}

// WithDirectoryCreator sets the creator of the directory controllers. Without
// it, the memory is split evenly over directories named after the assembler.
func (b Builder) WithDirectoryCreator(c directory.Creator) Builder {
	b.dirCreator = c
	return b
}

// WithTopologyCreator sets the creator of the topology. Without it, the
// creator is looked up by the topology name of the options.
func (b Builder) WithTopologyCreator(c topology.Creator) Builder {
	b.topoCreator = c
	return b
}

// WithNetwork sets the network the controllers are bound to.
func (b Builder) WithNetwork(n *fabric.Network) Builder {
	b.network = n
	return b
}

// Build creates an assembler with the given name, usually "Ruby".
func (b Builder) Build(name string) *Assembler {
	b.evictionPolicyMustBeGiven()

	a := &Assembler{
		NamedBase:       naming.MakeNamedBase(name),
		opts:            b.opts,
		rubyClockDomain: b.rubyClockDomain,
		evictionPolicy:  b.evictionPolicy,
		dirCreator:      b.dirCreator,
		topoCreator:     b.topoCreator,
		network:         b.network,
	}

	a.clockDomains = append(a.clockDomains, b.clockDomains...)
	a.dmaSources = append(a.dmaSources, b.dmaSources...)

	if a.dirCreator == nil {
		a.dirCreator = directory.NewDefaultCreator(name)
	}

	if a.network == nil {
		a.network = fabric.NewNetwork(naming.BuildName(name, "Network"))
	}

	return a
}

func (b Builder) evictionPolicyMustBeGiven() {
	if b.evictionPolicy == nil {
		panic("eviction policy is not given")
	}
}
