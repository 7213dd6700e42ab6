package fabric

import (
	"fmt"

	"github.com/sarchlab/tardis/naming"
)

// Role is the endpoint a channel is bound to.
type Role int

// The endpoint roles.
const (
	// RoleOutbound channels carry messages from the node into the fabric.
	RoleOutbound Role = iota
	// RoleInbound channels carry messages from the fabric into the node.
	RoleInbound
	// RoleLocal channels never leave the node (mandatory and trigger queues).
	RoleLocal
	// RoleMemory channels terminate at the memory backend.
	RoleMemory
)

func (r Role) String() string {
	switch r {
	case RoleOutbound:
		return "outbound"
	case RoleInbound:
		return "inbound"
	case RoleLocal:
		return "local"
	case RoleMemory:
		return "memory"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Ordering tells whether a channel preserves the order of its messages.
type Ordering int

// The ordering modes.
const (
	Unordered Ordering = iota
	Ordered
)

func (o Ordering) String() string {
	if o == Ordered {
		return "ordered"
	}

	return "unordered"
}

// MessageClass is the logical family of messages a channel carries.
type MessageClass int

// The message classes.
const (
	ClassMandatory MessageClass = iota
	// ClassRequest is a request issued by a cache or DMA controller.
	ClassRequest
	ClassResponse
	// ClassForward is a request issued by a directory.
	ClassForward
	ClassDMARequest
	ClassDMAResponse
	ClassTrigger
	ClassMemory
)

func (c MessageClass) String() string {
	switch c {
	case ClassMandatory:
		return "mandatory"
	case ClassRequest:
		return "request"
	case ClassResponse:
		return "response"
	case ClassForward:
		return "forward"
	case ClassDMARequest:
		return "dma-request"
	case ClassDMAResponse:
		return "dma-response"
	case ClassTrigger:
		return "trigger"
	case ClassMemory:
		return "memory"
	default:
		return fmt.Sprintf("MessageClass(%d)", int(c))
	}
}

// VirtualNetwork is the index of a virtual network class.
type VirtualNetwork int

// Virtual network assignment. VNetReserved is kept free by the protocol.
const (
	NoVirtualNetwork VirtualNetwork = -1
	VNetRequest      VirtualNetwork = 0
	VNetResponse     VirtualNetwork = 1
	VNetForward      VirtualNetwork = 2
	VNetDMARequest   VirtualNetwork = 3
	VNetDMAResponse  VirtualNetwork = 4
	VNetReserved     VirtualNetwork = 5
)

// VirtualNetwork returns the virtual network of the class. Classes that never
// traverse the interconnect return NoVirtualNetwork.
func (c MessageClass) VirtualNetwork() VirtualNetwork {
	switch c {
	case ClassRequest:
		return VNetRequest
	case ClassResponse:
		return VNetResponse
	case ClassForward:
		return VNetForward
	case ClassDMARequest:
		return VNetDMARequest
	case ClassDMAResponse:
		return VNetDMAResponse
	default:
		return NoVirtualNetwork
	}
}

// A Channel is a directed message path between a node and the fabric.
type Channel struct {
	name  string
	owner Node
	spec  ChannelSpec

	bound bool
	peer  string
}

// NewChannel creates an unbound channel owned by the given node. The channel
// name is the owner name followed by the spec name.
func NewChannel(owner Node, spec ChannelSpec) *Channel {
	name := naming.BuildName(owner.Name(), spec.Name)
	naming.NameMustBeValid(name)

	return &Channel{
		name:  name,
		owner: owner,
		spec:  spec,
	}
}

// Name returns the full name of the channel.
func (c *Channel) Name() string {
	return c.name
}

// ShortName returns the name of the channel within its owner.
func (c *Channel) ShortName() string {
	return c.spec.Name
}

// Owner returns the node that owns the channel.
func (c *Channel) Owner() Node {
	return c.owner
}

// Spec returns the wiring rule the channel was created from.
func (c *Channel) Spec() ChannelSpec {
	return c.spec
}

// Role returns the endpoint role of the channel.
func (c *Channel) Role() Role {
	return c.spec.Role
}

// Class returns the message class of the channel.
func (c *Channel) Class() MessageClass {
	return c.spec.Class
}

// IsOrdered tells whether the channel delivers messages in order.
func (c *Channel) IsOrdered() bool {
	return c.spec.Ordering == Ordered
}

// VirtualNetwork returns the virtual network of the channel.
func (c *Channel) VirtualNetwork() VirtualNetwork {
	return c.spec.VirtualNetwork()
}

// IsBound tells whether the channel has been bound to its endpoint.
func (c *Channel) IsBound() bool {
	return c.bound
}

// Peer returns the name of the endpoint the channel is bound to.
func (c *Channel) Peer() string {
	return c.peer
}

func (c *Channel) bindTo(role Role, peer string) {
	if c.bound {
		panic(fmt.Sprintf("channel %s already bound to %s, now binding to %s",
			c.name, c.peer, peer))
	}

	if role != c.spec.Role {
		panic(fmt.Sprintf("channel %s is %s, cannot bind it as %s",
			c.name, c.spec.Role, role))
	}

	c.bound = true
	c.peer = peer
}
