// Package topology arranges fabric nodes into an interconnect of routers and
// links.
package topology

import (
	"fmt"

	"github.com/sarchlab/tardis/fabric"
)

// Router is a switch of the interconnect.
type Router struct {
	ID   int
	Name string
}

// ExtLink attaches a node to a router.
type ExtLink struct {
	NodeID   int
	RouterID int
}

// IntLink is a one-directional link between two routers. Routing prefers
// links of lower weight.
type IntLink struct {
	Src, Dst int
	Weight   int
}

// Topology is an assembled interconnect. It cannot be changed after creation;
// every accessor returns a copy.
type Topology struct {
	name               string
	nodes              []fabric.Node
	numVirtualNetworks int

	routers  []Router
	extLinks []ExtLink
	intLinks []IntLink
	tables   []Table
}

// New creates a topology of nodes that has no routers yet. The node ID of a
// node is its position in the list.
func New(name string, nodes []fabric.Node, numVirtualNetworks int) *Topology {
	list := make([]fabric.Node, len(nodes))
	copy(list, nodes)

	return &Topology{
		name:               name,
		nodes:              list,
		numVirtualNetworks: numVirtualNetworks,
	}
}

// Name returns the name of the topology kind, e.g. "Crossbar".
func (t *Topology) Name() string {
	return t.name
}

// Nodes returns the nodes in assembly order.
func (t *Topology) Nodes() []fabric.Node {
	list := make([]fabric.Node, len(t.nodes))
	copy(list, t.nodes)

	return list
}

// NumNodes returns the number of nodes.
func (t *Topology) NumNodes() int {
	return len(t.nodes)
}

// NumVirtualNetworks returns the number of virtual networks of the
// interconnect.
func (t *Topology) NumVirtualNetworks() int {
	return t.numVirtualNetworks
}

// NodeID returns the physical ID of a node, which is its position in the node
// list. It returns -1 if the node is not part of the topology.
func (t *Topology) NodeID(node fabric.Node) int {
	for i, n := range t.nodes {
		if n == node {
			return i
		}
	}

	return -1
}

// Routers returns the routers.
func (t *Topology) Routers() []Router {
	list := make([]Router, len(t.routers))
	copy(list, t.routers)

	return list
}

// ExtLinks returns the links between nodes and routers.
func (t *Topology) ExtLinks() []ExtLink {
	list := make([]ExtLink, len(t.extLinks))
	copy(list, t.extLinks)

	return list
}

// IntLinks returns the links between routers.
func (t *Topology) IntLinks() []IntLink {
	list := make([]IntLink, len(t.intLinks))
	copy(list, t.intLinks)

	return list
}

// RouterOf returns the router a node is attached to, or -1.
func (t *Topology) RouterOf(nodeID int) int {
	for _, l := range t.extLinks {
		if l.NodeID == nodeID {
			return l.RouterID
		}
	}

	return -1
}

// Route returns the routers a message from src to dst travels through,
// starting with the router src is attached to.
func (t *Topology) Route(src, dst int) ([]int, error) {
	current := t.RouterOf(src)
	if current < 0 || t.RouterOf(dst) < 0 {
		return nil, fmt.Errorf("nodes %d and %d are not both attached", src, dst)
	}

	path := []int{current}
	for {
		next := t.tables[current].FindNextHop(dst)
		if next == LocalPort {
			if t.RouterOf(dst) != current {
				return nil, fmt.Errorf("router %d delivers node %d locally",
					current, dst)
			}

			return path, nil
		}

		if len(path) > len(t.routers) {
			return nil, fmt.Errorf("routing loop from %d to %d", src, dst)
		}

		path = append(path, next)
		current = next
	}
}

func (t *Topology) addRouter(name string, table Table) int {
	id := len(t.routers)
	t.routers = append(t.routers, Router{ID: id, Name: name})
	t.tables = append(t.tables, table)

	return id
}

func (t *Topology) attach(nodeID, routerID int) {
	t.extLinks = append(t.extLinks, ExtLink{NodeID: nodeID, RouterID: routerID})
}

func (t *Topology) connect(a, b, weight int) {
	t.intLinks = append(t.intLinks,
		IntLink{Src: a, Dst: b, Weight: weight},
		IntLink{Src: b, Dst: a, Weight: weight},
	)
}
