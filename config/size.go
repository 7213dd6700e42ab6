package config

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Byte size units, all powers of two.
const (
	KB uint64 = 1 << 10
	MB uint64 = 1 << 20
	GB uint64 = 1 << 30
)

var binarySuffixes = []struct {
	from, to string
}{
	{"kB", "KiB"},
	{"KB", "KiB"},
	{"MB", "MiB"},
	{"GB", "GiB"},
	{"TB", "TiB"},
}

// ParseSize parses a memory size such as "16kB" or "512MB". Following the
// convention of simulation scripts, kB, MB and GB are powers of two.
func ParseSize(s string) (uint64, error) {
	normalized := strings.TrimSpace(s)

	for _, suffix := range binarySuffixes {
		if strings.HasSuffix(normalized, suffix.from) {
			normalized = strings.TrimSuffix(normalized, suffix.from) + suffix.to
			break
		}
	}

	size, err := humanize.ParseBytes(normalized)
	if err != nil {
		return 0, fmt.Errorf("cannot parse size %q: %w", s, err)
	}

	if size == 0 {
		return 0, fmt.Errorf("size %q must not be zero", s)
	}

	return size, nil
}

// MustParseSize is ParseSize that panics on error.
func MustParseSize(s string) uint64 {
	size, err := ParseSize(s)
	if err != nil {
		panic(err)
	}

	return size
}

// FormatSize prints a byte count with binary units.
func FormatSize(size uint64) string {
	return humanize.IBytes(size)
}
