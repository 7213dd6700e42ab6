package config

import "strings"

// EvictionPolicy decides whether L1 controllers forward eviction notices to
// the core.
type EvictionPolicy func(opts Options) bool

// SendEvicts is the default eviction policy. Evictions are forwarded when the
// out-of-order core must keep its load-store queue coherent, or when the ISA
// builds monitors (x86 mwait, ARM exclusive monitor) on top of invalidations.
func SendEvicts(opts Options) bool {
	if opts.CPUType == "DerivO3CPU" || opts.CPUType == "O3CPU" {
		return true
	}

	switch strings.ToLower(opts.ISA) {
	case "x86", "arm":
		return true
	}

	return false
}
