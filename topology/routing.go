package topology

// LocalPort is the hop returned when the destination node is attached to the
// router itself.
const LocalPort = -1

// Table is a routing table that can find the next-hop router according to the
// final destination node.
type Table interface {
	FindNextHop(dstNodeID int) int
	DefineRoute(dstNodeID, nextHop int)
	DefineDefaultRoute(nextHop int)
}

// NewTable creates a new Table. Destinations without a route go to the
// default hop, which is LocalPort until defined.
func NewTable() Table {
	t := &table{defaultHop: LocalPort}
	t.t = make(map[int]int)

	return t
}

type table struct {
	t          map[int]int
	defaultHop int
}

func (t table) FindNextHop(dstNodeID int) int {
	out, found := t.t[dstNodeID]
	if found {
		return out
	}

	return t.defaultHop
}

func (t *table) DefineRoute(dstNodeID, nextHop int) {
	t.t[dstNodeID] = nextHop
}

func (t *table) DefineDefaultRoute(nextHop int) {
	t.defaultHop = nextHop
}

type coordinate struct {
	x, y int
}

// meshRoutingTable routes X first, then Y, according to the coordinate of the
// router the destination node is attached to.
type meshRoutingTable struct {
	x, y                     int
	top, left, bottom, right int
	local                    int
	dstTable                 map[int]coordinate
}

func (t *meshRoutingTable) FindNextHop(dstNodeID int) int {
	dst, found := t.dstTable[dstNodeID]
	if !found {
		panic("destination is not attached to the mesh")
	}

	switch {
	case dst.x < t.x:
		return t.left
	case dst.x > t.x:
		return t.right
	case dst.y < t.y:
		return t.top
	case dst.y > t.y:
		return t.bottom
	default:
		return t.local
	}
}

// DefineRoute does nothing.
func (t *meshRoutingTable) DefineRoute(_, _ int) {
	// Do nothing.
}

// DefineDefaultRoute sets the local port.
func (t *meshRoutingTable) DefineDefaultRoute(nextHop int) {
	t.local = nextHop
}
