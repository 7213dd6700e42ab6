// Package cache describes the geometry of the cache arrays attached to fabric
// controllers. Access timing and storage are modelled elsewhere.
package cache

import (
	"fmt"

	"github.com/sarchlab/tardis/config"
)

// Config is the geometry of one cache array.
type Config struct {
	Size          uint64
	Assoc         int
	StartIndexBit int
	IsICache      bool

	// Latencies, in cycles, of the data and tag arrays.
	DataAccessLatency int
	TagAccessLatency  int
}

// BlockSize returns the size of a cache line, derived from the index-bit
// offset.
func (c Config) BlockSize() uint64 {
	return 1 << c.StartIndexBit
}

// NumSets returns the number of sets in the array.
func (c Config) NumSets() int {
	return int(c.Size / (c.BlockSize() * uint64(c.Assoc)))
}

// String describes the geometry, e.g. "32 KiB 2-way (icache)".
func (c Config) String() string {
	kind := "dcache"
	if c.IsICache {
		kind = "icache"
	}

	return fmt.Sprintf("%s %d-way (%s)", config.FormatSize(c.Size), c.Assoc, kind)
}

// Builder can build cache configs.
type Builder struct {
	size              uint64
	assoc             int
	startIndexBit     int
	isICache          bool
	dataAccessLatency int
	tagAccessLatency  int
}

// MakeBuilder creates a builder with the defaults of the L1 arrays used by the
// protocol: one-cycle data and tag access and 64-byte lines.
func MakeBuilder() Builder {
	return Builder{
		size:              16 * config.KB,
		assoc:             8,
		startIndexBit:     6,
		dataAccessLatency: 1,
		tagAccessLatency:  1,
	}
}

// WithSize sets the capacity in bytes.
func (b Builder) WithSize(size uint64) Builder {
	b.size = size
	return b
}

// WithAssoc sets the way associativity.
func (b Builder) WithAssoc(assoc int) Builder {
	b.assoc = assoc
	return b
}

// WithStartIndexBit sets the index-bit offset, which is log2 of the cache
// line size.
func (b Builder) WithStartIndexBit(bit int) Builder {
	b.startIndexBit = bit
	return b
}

// AsICache marks the array as an instruction cache.
func (b Builder) AsICache() Builder {
	b.isICache = true
	return b
}

// AsDCache marks the array as a data cache.
func (b Builder) AsDCache() Builder {
	b.isICache = false
	return b
}

// WithAccessLatency sets the data and tag access latency in cycles.
func (b Builder) WithAccessLatency(data, tag int) Builder {
	b.dataAccessLatency = data
	b.tagAccessLatency = tag

	return b
}

// Build creates the config. It panics if the geometry cannot hold at least one
// full set.
func (b Builder) Build() Config {
	b.assocMustBePositive()
	b.mustHoldOneSet()

	return Config{
		Size:              b.size,
		Assoc:             b.assoc,
		StartIndexBit:     b.startIndexBit,
		IsICache:          b.isICache,
		DataAccessLatency: b.dataAccessLatency,
		TagAccessLatency:  b.tagAccessLatency,
	}
}

func (b Builder) assocMustBePositive() {
	if b.assoc <= 0 {
		panic(fmt.Sprintf("associativity must be positive, got %d", b.assoc))
	}
}

func (b Builder) mustHoldOneSet() {
	setSize := (uint64(1) << b.startIndexBit) * uint64(b.assoc)
	if b.size < setSize {
		panic(fmt.Sprintf(
			"cache of %d bytes cannot hold one %d-way set of %d-byte lines",
			b.size, b.assoc, 1<<b.startIndexBit))
	}
}
