package main

import (
	"github.com/spf13/pflag"

	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/dma"
	"github.com/sarchlab/tardis/naming"
)

func addOptionFlags(flags *pflag.FlagSet) {
	d := config.Default()

	flags.String("protocol", d.Protocol, "coherence protocol the simulator was built with")
	flags.Int("num-cpus", d.NumCPUs, "number of cores")
	flags.String("l1i-size", d.L1ISize, "size of each L1 instruction cache")
	flags.Int("l1i-assoc", d.L1IAssoc, "associativity of the L1 instruction caches")
	flags.String("l1d-size", d.L1DSize, "size of each L1 data cache")
	flags.Int("l1d-assoc", d.L1DAssoc, "associativity of the L1 data caches")
	flags.Int("cacheline-size", d.CacheLineSize, "cache line size in bytes")
	flags.Int("ports", d.Ports, "transitions per cycle of the controllers")
	flags.Int("num-dirs", d.NumDirs, "number of directory controllers")
	flags.String("mem-size", d.MemSize, "size of the main memory")
	flags.String("bootmem", d.BootMem, "size of the boot memory, empty for none")
	flags.String("topology", d.Topology, "topology: Crossbar, Pt2Pt or Mesh_XY")
	flags.Int("mesh-rows", d.MeshRows, "number of rows of a Mesh_XY topology")
	flags.String("cpu-type", d.CPUType, "CPU model, decides eviction forwarding")
	flags.String("isa", d.ISA, "instruction set, decides eviction forwarding")
	flags.String("cpu-clock", d.CPUClock, "clock of the cores")
	flags.String("ruby-clock", d.RubyClock, "clock of the fabric")
	flags.Bool("full-system", d.FullSystem, "add the I/O controller")
	flags.Int("num-dmas", d.NumDMAs, "number of DMA devices")
}

// loadOptions reads the config file, if any, and applies the flags the user
// set on top of it.
func loadOptions(flags *pflag.FlagSet, path string) (config.Options, error) {
	opts := config.Default()

	if path != "" {
		var err error

		opts, err = config.Load(path)
		if err != nil {
			return opts, err
		}
	}

	strs := map[string]*string{
		"protocol":   &opts.Protocol,
		"l1i-size":   &opts.L1ISize,
		"l1d-size":   &opts.L1DSize,
		"mem-size":   &opts.MemSize,
		"bootmem":    &opts.BootMem,
		"topology":   &opts.Topology,
		"cpu-type":   &opts.CPUType,
		"isa":        &opts.ISA,
		"cpu-clock":  &opts.CPUClock,
		"ruby-clock": &opts.RubyClock,
	}
	ints := map[string]*int{
		"num-cpus":       &opts.NumCPUs,
		"l1i-assoc":      &opts.L1IAssoc,
		"l1d-assoc":      &opts.L1DAssoc,
		"cacheline-size": &opts.CacheLineSize,
		"ports":          &opts.Ports,
		"num-dirs":       &opts.NumDirs,
		"mesh-rows":      &opts.MeshRows,
		"num-dmas":       &opts.NumDMAs,
	}

	for name, field := range strs {
		if flags.Changed(name) {
			*field, _ = flags.GetString(name)
		}
	}

	for name, field := range ints {
		if flags.Changed(name) {
			*field, _ = flags.GetInt(name)
		}
	}

	if flags.Changed("full-system") {
		opts.FullSystem, _ = flags.GetBool("full-system")
	}

	return opts, opts.Validate()
}

// dmaSources names one device per DMA controller.
func dmaSources(n int) []dma.Source {
	sources := make([]dma.Source, 0, n)
	for i := 0; i < n; i++ {
		sources = append(sources,
			naming.MakeNamedBase(naming.BuildNameWithIndex("System", "DMADevice", i)))
	}

	return sources
}
