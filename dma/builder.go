package dma

import (
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/sequencer"
)

// Builder can build DMA and I/O controllers.
type Builder struct {
	version             int
	isIO                bool
	source              Source
	transitionsPerCycle int
	network             *fabric.Network
}

// MakeBuilder creates a builder for DMA controllers.
func MakeBuilder() Builder {
	return Builder{transitionsPerCycle: 4}
}

// WithVersion sets the version of the controller.
func (b Builder) WithVersion(v int) Builder {
	b.version = v
	return b
}

// WithSource binds the controller's sequencer to a device.
func (b Builder) WithSource(s Source) Builder {
	b.source = s
	return b
}

// WithTransitionsPerCycle sets the number of transitions per cycle.
func (b Builder) WithTransitionsPerCycle(n int) Builder {
	b.transitionsPerCycle = n
	return b
}

// WithNetwork sets the network the controller's channels are bound to.
func (b Builder) WithNetwork(n *fabric.Network) Builder {
	b.network = n
	return b
}

// AsIO makes the builder build the I/O controller.
func (b Builder) AsIO() Builder {
	b.isIO = true
	return b
}

// Build creates and wires a controller under the parent name. DMA controllers
// are named "DMA[i]" and the I/O controller is named "IO".
func (b Builder) Build(parent string) *Comp {
	if b.network == nil {
		panic("network is not given")
	}

	if b.transitionsPerCycle <= 0 {
		panic("transitions per cycle must be positive")
	}

	kind := fabric.KindDMA
	name := naming.BuildNameWithIndex(parent, "DMA", b.version)

	if b.isIO {
		kind = fabric.KindIO
		name = naming.BuildName(parent, "IO")
	}

	seqBuilder := sequencer.MakeBuilder().AsDMA().WithVersion(b.version)
	if b.source != nil {
		seqBuilder = seqBuilder.WithSource(b.source)
	}

	seq := seqBuilder.Build(naming.BuildName(name, "Sequencer"))

	c := &Comp{
		NodeBase:            fabric.NewNodeBase(name, kind, b.version),
		Sequencer:           seq,
		TransitionsPerCycle: b.transitionsPerCycle,
	}

	seq.AttachTo(c)
	fabric.WireChannels(c, b.network, nil)

	return c
}

// BuildSet creates one DMA controller per source, in order, with the version
// equal to the source's position. In full-system mode an I/O controller with
// version len(sources) and no source follows. The I/O controller is nil
// otherwise.
func BuildSet(
	parent string,
	sources []Source,
	fullSystem bool,
	ports int,
	net *fabric.Network,
) (dmas []*Comp, io *Comp) {
	builder := MakeBuilder().
		WithNetwork(net).
		WithTransitionsPerCycle(ports)

	dmas = make([]*Comp, 0, len(sources))
	for i, src := range sources {
		dmas = append(dmas, builder.WithVersion(i).WithSource(src).Build(parent))
	}

	if fullSystem {
		io = MakeBuilder().
			WithNetwork(net).
			WithVersion(len(sources)).
			WithTransitionsPerCycle(DefaultIOTransitionsPerCycle).
			AsIO().
			Build(parent)
	}

	return dmas, io
}
