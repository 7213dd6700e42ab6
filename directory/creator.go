package directory

import (
	"fmt"

	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
)

// A Creator creates the directory controllers of a system. It returns the
// primary directories and, if the system has a boot memory, a ROM directory.
type Creator interface {
	CreateDirectories(
		opts config.Options,
		backend *Backend,
		net *fabric.Network,
	) (primary []*Comp, rom *Comp, err error)
}

// DefaultCreator splits the memory evenly over NumDirs directories. When the
// backend carries a boot memory, a ROM directory with version NumDirs is
// created after them.
type DefaultCreator struct {
	// Parent is the name the directories are created under.
	Parent string
}

// NewDefaultCreator creates a DefaultCreator placing directories under the
// parent name.
func NewDefaultCreator(parent string) *DefaultCreator {
	return &DefaultCreator{Parent: parent}
}

// CreateDirectories creates the directory controllers.
func (c *DefaultCreator) CreateDirectories(
	opts config.Options,
	backend *Backend,
	_ *fabric.Network,
) ([]*Comp, *Comp, error) {
	if opts.NumDirs < 1 {
		return nil, nil, fmt.Errorf("%w: numDirs is %d",
			config.ErrInvalidOptions, opts.NumDirs)
	}

	memSize, err := config.ParseSize(opts.MemSize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", config.ErrInvalidOptions, err)
	}

	numDirs := uint64(opts.NumDirs)
	if memSize%numDirs != 0 {
		return nil, nil, fmt.Errorf(
			"%w: memory of %s cannot be split over %d directories",
			config.ErrInvalidOptions, config.FormatSize(memSize), numDirs)
	}

	dirSize := memSize / numDirs
	builder := MakeBuilder().
		WithBackend(backend).
		WithClockDomain(backend.ClockDomain())

	primary := make([]*Comp, 0, opts.NumDirs)
	for i := 0; i < opts.NumDirs; i++ {
		dir := builder.
			WithVersion(i).
			WithAddrRange(uint64(i)*dirSize, dirSize).
			Build(naming.BuildNameWithIndex(c.Parent, "Directory", i))
		primary = append(primary, dir)
	}

	if !backend.HasBootMem() {
		return primary, nil, nil
	}

	rom := builder.
		WithVersion(opts.NumDirs).
		WithAddrRange(0, backend.BootMemSize()).
		AsROM().
		Build(naming.BuildName(c.Parent, "ROMDirectory"))

	return primary, rom, nil
}
