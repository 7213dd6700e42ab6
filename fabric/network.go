package fabric

import (
	"fmt"

	"github.com/sarchlab/tardis/hooking"
	"github.com/sarchlab/tardis/naming"
)

// HookPosChannelBound marks when a channel is bound to its endpoint. The hook
// item is the channel.
var HookPosChannelBound = &hooking.HookPos{Name: "Channel Bound"}

// Network is the interconnect side of the fabric. Outbound channels feed the
// network's ingress endpoint and inbound channels are fed by its egress
// endpoint. Once frozen, the network refuses any change.
type Network struct {
	naming.NamedBase
	hooking.HookableBase

	numVirtualNetworks int
	frozen             bool

	outbound []*Channel
	inbound  []*Channel
	local    []*Channel
	memory   []*Channel
}

// NewNetwork creates an empty network.
func NewNetwork(name string) *Network {
	return &Network{
		NamedBase: naming.MakeNamedBase(name),
	}
}

// IngressName is the name of the endpoint that receives outbound channels.
func (n *Network) IngressName() string {
	return naming.BuildName(n.Name(), "Ingress")
}

// EgressName is the name of the endpoint that feeds inbound channels.
func (n *Network) EgressName() string {
	return naming.BuildName(n.Name(), "Egress")
}

// Connect binds an outbound or inbound channel to the network.
func (n *Network) Connect(ch *Channel) {
	n.mustNotBeFrozen()

	switch ch.Role() {
	case RoleOutbound:
		ch.bindTo(RoleOutbound, n.IngressName())
		n.outbound = append(n.outbound, ch)
	case RoleInbound:
		ch.bindTo(RoleInbound, n.EgressName())
		n.inbound = append(n.inbound, ch)
	default:
		panic(fmt.Sprintf("channel %s is %s and cannot connect to the network",
			ch.Name(), ch.Role()))
	}

	n.channelBound(ch)
}

// BindLocal binds a channel that stays inside its owner.
func (n *Network) BindLocal(ch *Channel) {
	n.mustNotBeFrozen()

	ch.bindTo(RoleLocal, ch.Owner().Name())
	n.local = append(n.local, ch)

	n.channelBound(ch)
}

// BindMemory binds a channel to the memory backend.
func (n *Network) BindMemory(ch *Channel, backend naming.Named) {
	n.mustNotBeFrozen()

	if backend == nil {
		panic(fmt.Sprintf("channel %s needs a memory backend", ch.Name()))
	}

	ch.bindTo(RoleMemory, backend.Name())
	n.memory = append(n.memory, ch)

	n.channelBound(ch)
}

// Bind binds a channel according to its role.
func (n *Network) Bind(ch *Channel, backend naming.Named) {
	switch ch.Role() {
	case RoleOutbound, RoleInbound:
		n.Connect(ch)
	case RoleLocal:
		n.BindLocal(ch)
	case RoleMemory:
		n.BindMemory(ch, backend)
	default:
		panic("unknown role " + ch.Role().String())
	}
}

func (n *Network) channelBound(ch *Channel) {
	n.InvokeHook(hooking.HookCtx{
		Domain: n,
		Pos:    HookPosChannelBound,
		Item:   ch,
	})
}

// SetNumVirtualNetworks sets the number of virtual network classes.
func (n *Network) SetNumVirtualNetworks(num int) {
	n.mustNotBeFrozen()

	if num <= 0 {
		panic(fmt.Sprintf("number of virtual networks must be positive, got %d",
			num))
	}

	n.numVirtualNetworks = num
}

// NumVirtualNetworks returns the number of virtual network classes.
func (n *Network) NumVirtualNetworks() int {
	return n.numVirtualNetworks
}

// Freeze forbids any later change to the network.
func (n *Network) Freeze() {
	n.frozen = true
}

// IsFrozen tells whether the network has been frozen.
func (n *Network) IsFrozen() bool {
	return n.frozen
}

// OutboundChannels returns the channels that send into the network, in the
// order they were connected.
func (n *Network) OutboundChannels() []*Channel {
	return append([]*Channel(nil), n.outbound...)
}

// InboundChannels returns the channels the network delivers to, in the order
// they were connected.
func (n *Network) InboundChannels() []*Channel {
	return append([]*Channel(nil), n.inbound...)
}

// NumBoundChannels returns the number of channels bound through the network,
// including local and memory channels.
func (n *Network) NumBoundChannels() int {
	return len(n.outbound) + len(n.inbound) + len(n.local) + len(n.memory)
}

// A Checkpoint records the state of a network so that a failed assembly can
// be undone.
type Checkpoint struct {
	numVirtualNetworks int
	numOutbound        int
	numInbound         int
	numLocal           int
	numMemory          int
}

// Checkpoint records the current state of the network.
func (n *Network) Checkpoint() Checkpoint {
	return Checkpoint{
		numVirtualNetworks: n.numVirtualNetworks,
		numOutbound:        len(n.outbound),
		numInbound:         len(n.inbound),
		numLocal:           len(n.local),
		numMemory:          len(n.memory),
	}
}

// Rollback forgets every channel bound since the checkpoint and restores the
// virtual network count. The forgotten channels stay bound on their owners,
// so the nodes owning them must be discarded.
func (n *Network) Rollback(cp Checkpoint) {
	n.mustNotBeFrozen()

	n.numVirtualNetworks = cp.numVirtualNetworks
	n.outbound = n.outbound[:cp.numOutbound]
	n.inbound = n.inbound[:cp.numInbound]
	n.local = n.local[:cp.numLocal]
	n.memory = n.memory[:cp.numMemory]
}

func (n *Network) mustNotBeFrozen() {
	if n.frozen {
		panic("network " + n.Name() + " is frozen")
	}
}
