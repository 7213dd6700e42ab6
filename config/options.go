// Package config holds the options recognized when assembling a tardis
// coherence fabric.
package config

import (
	"errors"
	"fmt"
	"math/bits"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOptions is returned when an option fails validation.
var ErrInvalidOptions = errors.New("invalid options")

// Options are the recognized options of a fabric assembly. Sizes are written
// the way simulation scripts write them, e.g. "32kB".
type Options struct {
	// Protocol is the coherence protocol the simulator was built with.
	Protocol string `yaml:"protocol"`

	NumCPUs       int    `yaml:"numCPUs"`
	L1ISize       string `yaml:"l1iSize"`
	L1IAssoc      int    `yaml:"l1iAssoc"`
	L1DSize       string `yaml:"l1dSize"`
	L1DAssoc      int    `yaml:"l1dAssoc"`
	CacheLineSize int    `yaml:"cacheLineSize"`

	// Ports limits the number of transitions a controller takes per cycle.
	Ports int `yaml:"ports"`

	NumDirs  int    `yaml:"numDirs"`
	MemSize  string `yaml:"memSize"`
	BootMem  string `yaml:"bootMem"`
	Topology string `yaml:"topology"`
	MeshRows int    `yaml:"meshRows"`

	CPUType    string `yaml:"cpuType"`
	ISA        string `yaml:"isa"`
	CPUClock   string `yaml:"cpuClock"`
	RubyClock  string `yaml:"rubyClock"`
	FullSystem bool   `yaml:"fullSystem"`

	// NumDMAs is the number of DMA request sources the CLI fabricates when no
	// devices are supplied by a surrounding simulation.
	NumDMAs int `yaml:"numDMAs"`
}

// Default returns the default options.
func Default() Options {
	return Options{
		Protocol:      "tardis",
		NumCPUs:       1,
		L1ISize:       "32kB",
		L1IAssoc:      2,
		L1DSize:       "64kB",
		L1DAssoc:      2,
		CacheLineSize: 64,
		Ports:         4,
		NumDirs:       1,
		MemSize:       "512MB",
		Topology:      "Crossbar",
		CPUType:       "TimingSimpleCPU",
		ISA:           "riscv",
		CPUClock:      "2GHz",
		RubyClock:     "2GHz",
	}
}

// Load reads a YAML file on top of the default options and validates the
// result.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

// Validate checks the options that the assembler depends on.
func (o Options) Validate() error {
	if o.NumCPUs < 1 {
		return invalid("numCPUs must be at least 1, got %d", o.NumCPUs)
	}

	if o.CacheLineSize <= 0 || bits.OnesCount(uint(o.CacheLineSize)) != 1 {
		return invalid(
			"cacheLineSize must be a power of two, got %d", o.CacheLineSize)
	}

	if o.L1IAssoc <= 0 || o.L1DAssoc <= 0 {
		return invalid("cache associativity must be positive")
	}

	if o.Ports <= 0 {
		return invalid("ports must be positive, got %d", o.Ports)
	}

	if o.NumDirs < 1 {
		return invalid("numDirs must be at least 1, got %d", o.NumDirs)
	}

	if o.NumDMAs < 0 {
		return invalid("numDMAs must not be negative, got %d", o.NumDMAs)
	}

	for _, s := range []string{o.L1ISize, o.L1DSize, o.MemSize} {
		if _, err := ParseSize(s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
	}

	if err := o.validateCacheGeometry(); err != nil {
		return err
	}

	if o.BootMem != "" {
		if _, err := ParseSize(o.BootMem); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
	}

	for _, c := range []string{o.CPUClock, o.RubyClock} {
		if c == "" {
			continue
		}

		if _, err := ParseFreq(c); err != nil {
			return err
		}
	}

	return nil
}

// The timestamp bookkeeping array every L1 controller carries.
const (
	CacheMemorySize  = 16 * KB
	CacheMemoryAssoc = 8
)

// validateCacheGeometry checks that every L1 array holds at least one full set
// of cache lines. Sizes and the line size must already be valid.
func (o Options) validateCacheGeometry() error {
	arrays := []struct {
		name  string
		size  uint64
		assoc int
	}{
		{"l1i", MustParseSize(o.L1ISize), o.L1IAssoc},
		{"l1d", MustParseSize(o.L1DSize), o.L1DAssoc},
		{"cache memory", CacheMemorySize, CacheMemoryAssoc},
	}

	for _, a := range arrays {
		setSize := uint64(o.CacheLineSize) * uint64(a.assoc)
		if a.size < setSize {
			return invalid("%s of %s cannot hold one %d-way set of %d-byte lines",
				a.name, FormatSize(a.size), a.assoc, o.CacheLineSize)
		}
	}

	return nil
}

// BlockSizeBits returns log2 of the cache line size. The cache line size must
// be a power of two.
func (o Options) BlockSizeBits() int {
	return Log2(o.CacheLineSize)
}

// Log2 returns the base-2 logarithm of a power of two. It panics otherwise.
func Log2(n int) int {
	if n <= 0 || bits.OnesCount(uint(n)) != 1 {
		panic(fmt.Sprintf("%d is not a power of two", n))
	}

	return bits.TrailingZeros(uint(n))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...))
}
