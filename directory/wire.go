package directory

import (
	"errors"

	"github.com/sarchlab/tardis/fabric"
)

// ErrNoDirectories is returned when a directory set has no primary
// directory.
var ErrNoDirectories = errors.New("no directory controllers")

// WireSet wires every directory of the set to the network and to the memory
// backend. It returns the primary directories followed by the ROM directory,
// if any.
func WireSet(
	primary []*Comp,
	rom *Comp,
	net *fabric.Network,
	backend *Backend,
) ([]*Comp, error) {
	if len(primary) == 0 {
		return nil, ErrNoDirectories
	}

	if backend == nil {
		panic("memory backend is not given")
	}

	all := make([]*Comp, 0, len(primary)+1)
	all = append(all, primary...)

	if rom != nil {
		all = append(all, rom)
	}

	for _, dir := range all {
		fabric.WireChannels(dir, net, backend)
	}

	return all, nil
}
