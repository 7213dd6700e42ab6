package recording

import (
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/hooking"
	"github.com/sarchlab/tardis/topology"
)

// The tables a TopologyRecorder writes.
const (
	NodeTable    = "fabric_node"
	ChannelTable = "fabric_channel"
	RouterTable  = "fabric_router"
	LinkTable    = "fabric_link"
)

// NodeEntry is a row of the node table.
type NodeEntry struct {
	ID          int
	Name        string
	Kind        string
	Version     int
	Router      int
	NumChannels int
}

// ChannelEntry is a row of the channel table.
type ChannelEntry struct {
	Node           string
	Name           string
	Class          string
	Role           string
	Ordered        bool
	VirtualNetwork int
	Peer           string
}

// RouterEntry is a row of the router table.
type RouterEntry struct {
	ID   int
	Name string
}

// LinkEntry is a row of the link table. Links between routers have a weight;
// links attaching a node to its router have a Node ID and weight 0.
type LinkEntry struct {
	Src    int
	Dst    int
	Node   int
	Weight int
}

// TopologyRecorder is a hook that writes an assembled topology into a
// DataRecorder.
type TopologyRecorder struct {
	recorder DataRecorder
}

// NewTopologyRecorder creates a TopologyRecorder and the tables it writes.
func NewTopologyRecorder(recorder DataRecorder) *TopologyRecorder {
	recorder.CreateTable(NodeTable, NodeEntry{})
	recorder.CreateTable(ChannelTable, ChannelEntry{})
	recorder.CreateTable(RouterTable, RouterEntry{})
	recorder.CreateTable(LinkTable, LinkEntry{})

	return &TopologyRecorder{recorder: recorder}
}

// Func records the topology once it is assembled.
func (r *TopologyRecorder) Func(ctx hooking.HookCtx) {
	topo, ok := ctx.Item.(*topology.Topology)
	if !ok {
		return
	}

	r.Record(topo)
}

// Record writes the nodes, channels, routers and links of a topology and
// flushes the recorder.
func (r *TopologyRecorder) Record(topo *topology.Topology) {
	for id, node := range topo.Nodes() {
		r.recorder.InsertData(NodeTable, NodeEntry{
			ID:          id,
			Name:        node.Name(),
			Kind:        node.Kind().String(),
			Version:     node.Version(),
			Router:      topo.RouterOf(id),
			NumChannels: len(node.Channels()),
		})

		for _, ch := range node.Channels() {
			r.recordChannel(node, ch)
		}
	}

	for _, router := range topo.Routers() {
		r.recorder.InsertData(RouterTable, RouterEntry{
			ID:   router.ID,
			Name: router.Name,
		})
	}

	for _, l := range topo.ExtLinks() {
		r.recorder.InsertData(LinkTable, LinkEntry{
			Src:  l.RouterID,
			Dst:  l.RouterID,
			Node: l.NodeID,
		})
	}

	for _, l := range topo.IntLinks() {
		r.recorder.InsertData(LinkTable, LinkEntry{
			Src:    l.Src,
			Dst:    l.Dst,
			Node:   -1,
			Weight: l.Weight,
		})
	}

	r.recorder.Flush()
}

func (r *TopologyRecorder) recordChannel(node fabric.Node, ch *fabric.Channel) {
	r.recorder.InsertData(ChannelTable, ChannelEntry{
		Node:           node.Name(),
		Name:           ch.ShortName(),
		Class:          ch.Class().String(),
		Role:           ch.Role().String(),
		Ordered:        ch.IsOrdered(),
		VirtualNetwork: int(ch.VirtualNetwork()),
		Peer:           ch.Peer(),
	})
}
