// Package dma provides the DMA controllers of the tardis protocol and the
// I/O controller of full-system simulations.
package dma

import (
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/sequencer"
)

// DefaultIOTransitionsPerCycle is the number of transitions the I/O
// controller takes per cycle.
const DefaultIOTransitionsPerCycle = 32

// A Source is a DMA-capable device port.
type Source interface {
	naming.Named
}

// Comp is a DMA controller. With kind fabric.KindIO it is the I/O controller,
// which has no device of its own and owns a trigger queue.
type Comp struct {
	*fabric.NodeBase

	Sequencer           *sequencer.Comp
	TransitionsPerCycle int
}

// IsIO tells whether the controller is the I/O controller.
func (c *Comp) IsIO() bool {
	return c.Kind() == fabric.KindIO
}
