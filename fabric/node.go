// Package fabric defines the nodes and channels of a coherence fabric and the
// rules that bind channels to the interconnect.
package fabric

import (
	"fmt"
	"os"

	"github.com/sarchlab/tardis/naming"
)

// NodeKind identifies the role of a controller. Kinds are declared in the
// order in which they appear in a topology.
type NodeKind int

// The kinds of controllers in a tardis fabric.
const (
	KindL1Cache NodeKind = iota
	KindDirectory
	KindDMA
	KindIO
)

func (k NodeKind) String() string {
	switch k {
	case KindL1Cache:
		return "L1Cache"
	case KindDirectory:
		return "Directory"
	case KindDMA:
		return "DMA"
	case KindIO:
		return "IO"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// A Node is a controller that participates in the fabric topology.
type Node interface {
	naming.Named

	// Kind returns the kind of the controller.
	Kind() NodeKind

	// Version returns the identity of the node, unique among nodes of the
	// same kind.
	Version() int

	// Channels returns the channels of the node in the order they were added.
	Channels() []*Channel

	// ChannelByName returns the channel with the given short name, or nil.
	ChannelByName(name string) *Channel

	// AddChannel gives the node ownership of a channel.
	AddChannel(ch *Channel)
}

// NodeBase implements the bookkeeping shared by all nodes.
type NodeBase struct {
	naming.NamedBase

	kind     NodeKind
	version  int
	channels []*Channel
	index    map[string]*Channel
}

// NewNodeBase creates a NodeBase.
func NewNodeBase(name string, kind NodeKind, version int) *NodeBase {
	if version < 0 {
		panic(fmt.Sprintf("node %s has negative version %d", name, version))
	}

	return &NodeBase{
		NamedBase: naming.MakeNamedBase(name),
		kind:      kind,
		version:   version,
		index:     make(map[string]*Channel),
	}
}

// Kind returns the kind of the node.
func (n *NodeBase) Kind() NodeKind {
	return n.kind
}

// Version returns the version of the node.
func (n *NodeBase) Version() int {
	return n.version
}

// Channels returns a copy of the channel list.
func (n *NodeBase) Channels() []*Channel {
	list := make([]*Channel, len(n.channels))
	copy(list, n.channels)

	return list
}

// ChannelByName returns the channel with the given short name. It returns nil
// if the node has no such channel.
func (n *NodeBase) ChannelByName(name string) *Channel {
	return n.index[name]
}

// MustGetChannel returns the channel with the given short name and panics if
// it does not exist.
func (n *NodeBase) MustGetChannel(name string) *Channel {
	ch, found := n.index[name]
	if !found {
		errMsg := fmt.Sprintf("Channel %s is not available on %s.\n",
			name, n.Name())
		errMsg += "Available channels include:\n"

		for _, c := range n.channels {
			errMsg += fmt.Sprintf("\t%s\n", c.ShortName())
		}

		fmt.Fprint(os.Stderr, errMsg)

		panic("channel not found")
	}

	return ch
}

// AddChannel adds a channel. Adding two channels with the same name panics.
func (n *NodeBase) AddChannel(ch *Channel) {
	if _, found := n.index[ch.ShortName()]; found {
		panic(fmt.Sprintf("channel %s already exists on %s",
			ch.ShortName(), n.Name()))
	}

	n.channels = append(n.channels, ch)
	n.index[ch.ShortName()] = ch
}
