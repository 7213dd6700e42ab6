package tardis

import (
	"fmt"

	"github.com/rs/xid"

	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/directory"
	"github.com/sarchlab/tardis/dma"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/hooking"
	"github.com/sarchlab/tardis/l1cache"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/sequencer"
	"github.com/sarchlab/tardis/timing"
	"github.com/sarchlab/tardis/topology"
)

var (
	// HookPosNodeBuilt marks when a controller is built and wired. The hook
	// item is the fabric.Node.
	HookPosNodeBuilt = &hooking.HookPos{Name: "Node Built"}

	// HookPosDirectoriesWired marks when the directory set is wired. The hook
	// item is the []*directory.Comp, ROM included.
	HookPosDirectoriesWired = &hooking.HookPos{Name: "Directories Wired"}

	// HookPosTopologyAssembled marks when the topology is created. The hook
	// item is the *topology.Topology.
	HookPosTopologyAssembled = &hooking.HookPos{Name: "Topology Assembled"}
)

// Assembler builds the controllers of the protocol, wires their channels and
// hands them to a topology creator. An assembler runs once.
type Assembler struct {
	naming.NamedBase
	hooking.HookableBase

	opts            config.Options
	clockDomains    []timing.ClockDomain
	rubyClockDomain timing.ClockDomain
	dmaSources      []dma.Source
	evictionPolicy  config.EvictionPolicy
	dirCreator      directory.Creator
	topoCreator     topology.Creator
	network         *fabric.Network

	assembled bool
}

// Network returns the network the controllers are bound to.
func (a *Assembler) Network() *fabric.Network {
	return a.network
}

// Assemble creates the system. The node list handed to the topology creator
// holds the L1 controllers, the directories, the DMA controllers and the I/O
// controller, in that order. On failure, the network is rolled back to the
// state it had before the call.
func (a *Assembler) Assemble() (*System, error) {
	if a.assembled {
		return nil, ErrAlreadyAssembled
	}

	a.assembled = true

	if a.opts.Protocol != ProtocolName {
		return nil, fmt.Errorf("%w: simulator built for %q, assembling %q",
			ErrProtocolMismatch, a.opts.Protocol, ProtocolName)
	}

	if err := a.prepare(); err != nil {
		return nil, err
	}

	cp := a.network.Checkpoint()

	sys, err := a.assemble()
	if err != nil {
		a.network.Rollback(cp)
		return nil, err
	}

	return sys, nil
}

func (a *Assembler) assemble() (*System, error) {
	sys := &System{
		ID:          xid.New().String(),
		Network:     a.network,
		ClockDomain: a.rubyClockDomain,
		L1Caches:    make(map[int]*l1cache.Comp),
		DMAs:        make(map[int]*dma.Comp),
		nodesByName: make(map[string]fabric.Node),
	}

	l1s := a.buildL1Caches(sys)

	dirs, err := a.buildDirectories(sys)
	if err != nil {
		return nil, err
	}

	dmas := a.buildDMAs(sys)

	nodes := make([]fabric.Node, 0, len(l1s)+len(dirs)+len(dmas)+1)
	for _, l1 := range l1s {
		nodes = append(nodes, l1)
	}

	for _, d := range dirs {
		nodes = append(nodes, d)
	}

	for _, d := range dmas {
		nodes = append(nodes, d)
	}

	if sys.IO != nil {
		nodes = append(nodes, sys.IO)
	}

	if err := fabric.CheckOrder(nodes); err != nil {
		return nil, err
	}

	a.network.SetNumVirtualNetworks(NumVirtualNetworks)

	if err := fabric.VerifyBindings(nodes, NumVirtualNetworks); err != nil {
		return nil, err
	}

	topo, err := a.topoCreator.CreateTopology(a.network, nodes, a.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create topology: %w", err)
	}

	a.network.Freeze()

	sys.Topology = topo
	a.InvokeHook(hooking.HookCtx{
		Domain: a,
		Pos:    HookPosTopologyAssembled,
		Item:   topo,
	})

	return sys, nil
}

// prepare resolves every collaborator before a controller is created.
func (a *Assembler) prepare() error {
	if err := a.opts.Validate(); err != nil {
		return err
	}

	if err := a.resolveClockDomains(); err != nil {
		return err
	}

	if a.topoCreator == nil {
		c, err := topology.Lookup(a.opts.Topology)
		if err != nil {
			return err
		}

		a.topoCreator = c
	}

	return nil
}

func (a *Assembler) resolveClockDomains() error {
	if a.rubyClockDomain == nil {
		freq, err := config.ParseFreq(a.opts.RubyClock)
		if err != nil {
			return err
		}

		a.rubyClockDomain = timing.NewSrcClockDomain(
			naming.BuildName(a.Name(), "ClkDomain"), freq)
	}

	if len(a.clockDomains) == 0 {
		freq, err := config.ParseFreq(a.opts.CPUClock)
		if err != nil {
			return err
		}

		a.clockDomains = []timing.ClockDomain{
			timing.NewSrcClockDomain("CPUClkDomain", freq),
		}
	}

	n := len(a.clockDomains)
	if n != 1 && n != a.opts.NumCPUs {
		return fmt.Errorf("%w: %d domains for %d cores",
			ErrClockDomainCount, n, a.opts.NumCPUs)
	}

	return nil
}

// clockDomainOf returns the domain of core i. A single domain is shared by
// all the cores.
func (a *Assembler) clockDomainOf(i int) timing.ClockDomain {
	if len(a.clockDomains) == 1 {
		return a.clockDomains[0]
	}

	return a.clockDomains[i]
}

func (a *Assembler) buildL1Caches(sys *System) []*l1cache.Comp {
	builder := l1cache.MakeBuilder().
		WithNetwork(a.network).
		WithBlockSizeBits(a.opts.BlockSizeBits()).
		WithICache(config.MustParseSize(a.opts.L1ISize), a.opts.L1IAssoc).
		WithDCache(config.MustParseSize(a.opts.L1DSize), a.opts.L1DAssoc).
		WithPorts(a.opts.Ports).
		WithSendEvictions(a.evictionPolicy(a.opts))

	l1s := make([]*l1cache.Comp, 0, a.opts.NumCPUs)
	sys.Sequencers = make([]*sequencer.Comp, 0, a.opts.NumCPUs)

	for i := 0; i < a.opts.NumCPUs; i++ {
		l1 := builder.
			WithVersion(i).
			WithClockDomain(a.clockDomainOf(i)).
			Build(a.Name())

		l1s = append(l1s, l1)
		sys.Sequencers = append(sys.Sequencers, l1.Sequencer)
		sys.L1Caches[i] = l1
		a.nodeBuilt(sys, l1)
	}

	return l1s
}

func (a *Assembler) buildDirectories(sys *System) ([]*directory.Comp, error) {
	sys.MemCtrlClkDomain = timing.NewDerivedClockDomain(
		naming.BuildName(a.Name(), "MemCtrlClkDomain"),
		a.rubyClockDomain, MemCtrlClockDivider)

	var bootMemSize uint64
	if a.opts.BootMem != "" {
		bootMemSize = config.MustParseSize(a.opts.BootMem)
	}

	sys.Backend = directory.NewBackend(
		naming.BuildName(a.Name(), "Memory"), sys.MemCtrlClkDomain, bootMemSize)

	primary, rom, err := a.dirCreator.CreateDirectories(
		a.opts, sys.Backend, a.network)
	if err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	dirs, err := directory.WireSet(primary, rom, a.network, sys.Backend)
	if err != nil {
		return nil, err
	}

	sys.Directories = primary
	sys.ROMDirectory = rom

	for _, d := range dirs {
		a.nodeBuilt(sys, d)
	}

	a.InvokeHook(hooking.HookCtx{
		Domain: a,
		Pos:    HookPosDirectoriesWired,
		Item:   dirs,
	})

	return dirs, nil
}

func (a *Assembler) buildDMAs(sys *System) []*dma.Comp {
	dmas, io := dma.BuildSet(
		a.Name(), a.dmaSources, a.opts.FullSystem, a.opts.Ports, a.network)

	for _, d := range dmas {
		sys.DMAs[d.Version()] = d
		a.nodeBuilt(sys, d)
	}

	if io != nil {
		sys.IO = io
		a.nodeBuilt(sys, io)
	}

	return dmas
}

func (a *Assembler) nodeBuilt(sys *System, node fabric.Node) {
	sys.register(node)
	a.InvokeHook(hooking.HookCtx{
		Domain: a,
		Pos:    HookPosNodeBuilt,
		Item:   node,
	})
}
