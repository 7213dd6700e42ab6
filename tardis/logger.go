package tardis

import (
	"log"

	"github.com/sarchlab/tardis/directory"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/hooking"
	"github.com/sarchlab/tardis/topology"
)

// AssemblyLogger is a hook that prints the progress of an assembly. It can be
// attached to an Assembler and to its network.
type AssemblyLogger struct {
	hooking.LogHookBase
}

// NewAssemblyLogger returns a new AssemblyLogger which will write into the
// logger.
func NewAssemblyLogger(logger *log.Logger) *AssemblyLogger {
	h := new(AssemblyLogger)
	h.Logger = logger

	return h
}

// Func writes the assembly step into the logger.
func (h *AssemblyLogger) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case HookPosNodeBuilt:
		node, ok := ctx.Item.(fabric.Node)
		if !ok {
			return
		}

		h.Logger.Printf("%s, %s, version %d, %d channels",
			ctx.Pos.Name, node.Name(), node.Version(), len(node.Channels()))
	case HookPosDirectoriesWired:
		dirs, ok := ctx.Item.([]*directory.Comp)
		if !ok {
			return
		}

		h.Logger.Printf("%s, %d directories", ctx.Pos.Name, len(dirs))
	case HookPosTopologyAssembled:
		topo, ok := ctx.Item.(*topology.Topology)
		if !ok {
			return
		}

		h.Logger.Printf("%s, %s, %d nodes, %d routers, %d virtual networks",
			ctx.Pos.Name, topo.Name(), topo.NumNodes(), len(topo.Routers()),
			topo.NumVirtualNetworks())
	case fabric.HookPosChannelBound:
		ch, ok := ctx.Item.(*fabric.Channel)
		if !ok {
			return
		}

		h.Logger.Printf("%s, %s -> %s, %s, vnet %d",
			ctx.Pos.Name, ch.Name(), ch.Peer(), ch.Role(), ch.VirtualNetwork())
	}
}
