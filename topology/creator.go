package topology

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
)

// ErrUnknownTopology is returned when no creator is registered under the
// requested name.
var ErrUnknownTopology = errors.New("unknown topology")

// A Creator arranges nodes into a topology. The node ID of a node is its
// position in the list.
type Creator interface {
	CreateTopology(
		net *fabric.Network,
		nodes []fabric.Node,
		opts config.Options,
	) (*Topology, error)
}

var creators = map[string]Creator{
	"Crossbar": CrossbarCreator{},
	"Pt2Pt":    Pt2PtCreator{},
	"Mesh_XY":  MeshXYCreator{},
}

// Lookup returns the creator registered under the name.
func Lookup(name string) (Creator, error) {
	c, found := creators[name]
	if !found {
		return nil, fmt.Errorf("%w: %q, available: %v",
			ErrUnknownTopology, name, Names())
	}

	return c, nil
}

// Names returns the names of the registered topologies, sorted.
func Names() []string {
	names := make([]string, 0, len(creators))
	for name := range creators {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func routerName(net *fabric.Network, index int) string {
	return naming.BuildNameWithIndex(net.Name(), "Router", index)
}

func nodesMustBeGiven(nodes []fabric.Node) error {
	if len(nodes) == 0 {
		return fmt.Errorf("%w: no nodes to connect", config.ErrInvalidOptions)
	}

	return nil
}

// CrossbarCreator attaches every node to its own router and connects all the
// routers to one central crossbar router.
type CrossbarCreator struct{}

// CreateTopology creates a crossbar topology.
func (CrossbarCreator) CreateTopology(
	net *fabric.Network,
	nodes []fabric.Node,
	_ config.Options,
) (*Topology, error) {
	if err := nodesMustBeGiven(nodes); err != nil {
		return nil, err
	}

	t := New("Crossbar", nodes, net.NumVirtualNetworks())
	xbarID := len(nodes)

	for i := range nodes {
		table := NewTable()
		table.DefineRoute(i, LocalPort)
		table.DefineDefaultRoute(xbarID)
		t.addRouter(routerName(net, i), table)
		t.attach(i, i)
	}

	xbarTable := NewTable()
	for i := range nodes {
		xbarTable.DefineRoute(i, i)
	}

	t.addRouter(routerName(net, xbarID), xbarTable)

	for i := range nodes {
		t.connect(i, xbarID, 1)
	}

	return t, nil
}

// Pt2PtCreator directly connects the routers of every pair of nodes.
type Pt2PtCreator struct{}

// CreateTopology creates a point-to-point topology.
func (Pt2PtCreator) CreateTopology(
	net *fabric.Network,
	nodes []fabric.Node,
	_ config.Options,
) (*Topology, error) {
	if err := nodesMustBeGiven(nodes); err != nil {
		return nil, err
	}

	t := New("Pt2Pt", nodes, net.NumVirtualNetworks())

	for i := range nodes {
		table := NewTable()
		for j := range nodes {
			if j != i {
				table.DefineRoute(j, j)
			}
		}

		t.addRouter(routerName(net, i), table)
		t.attach(i, i)
	}

	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			t.connect(i, j, 1)
		}
	}

	return t, nil
}

// MeshXYCreator places one router per node on a grid of MeshRows rows and
// routes with X-Y dimension order. Horizontal links weigh less than vertical
// ones.
type MeshXYCreator struct{}

// CreateTopology creates a mesh topology.
func (MeshXYCreator) CreateTopology(
	net *fabric.Network,
	nodes []fabric.Node,
	opts config.Options,
) (*Topology, error) {
	if err := nodesMustBeGiven(nodes); err != nil {
		return nil, err
	}

	rows := opts.MeshRows
	if rows <= 0 || len(nodes)%rows != 0 {
		return nil, fmt.Errorf("%w: %d mesh rows cannot hold %d nodes",
			config.ErrInvalidOptions, rows, len(nodes))
	}

	cols := len(nodes) / rows
	t := New("Mesh_XY", nodes, net.NumVirtualNetworks())

	dstTable := make(map[int]coordinate, len(nodes))
	for i := range nodes {
		dstTable[i] = coordinate{x: i % cols, y: i / cols}
	}

	for i := range nodes {
		x, y := i%cols, i/cols
		table := &meshRoutingTable{
			x: x, y: y,
			top: i - cols, bottom: i + cols,
			left: i - 1, right: i + 1,
			dstTable: dstTable,
		}
		table.DefineDefaultRoute(LocalPort)

		t.addRouter(routerName(net, i), table)
		t.attach(i, i)
	}

	for i := range nodes {
		x, y := i%cols, i/cols

		if x+1 < cols {
			t.connect(i, i+1, 1)
		}

		if y+1 < rows {
			t.connect(i, i+cols, 2)
		}
	}

	return t, nil
}
