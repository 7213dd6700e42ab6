// Package l1cache provides the private first-level cache controller of the
// tardis protocol.
package l1cache

import (
	"github.com/sarchlab/tardis/cache"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/sequencer"
	"github.com/sarchlab/tardis/timing"
)

// Comp is an L1 cache controller. It owns an instruction cache, a data cache,
// the timestamp cache memory and the sequencer of one core.
type Comp struct {
	*fabric.NodeBase

	L1ICache    cache.Config
	L1DCache    cache.Config
	CacheMemory cache.Config
	Sequencer   *sequencer.Comp
	ClockDomain timing.ClockDomain

	SendEvictions       bool
	TransitionsPerCycle int

	// ProgTSGlobal is the global program timestamp the controller starts
	// from.
	ProgTSGlobal int
}
