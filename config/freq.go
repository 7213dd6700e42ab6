package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/tardis/timing"
)

var freqUnits = []struct {
	suffix string
	unit   timing.Freq
}{
	{"GHz", timing.GHz},
	{"MHz", timing.MHz},
	{"KHz", timing.KHz},
	{"kHz", timing.KHz},
	{"Hz", timing.Hz},
}

// ParseFreq parses a clock such as "2GHz" or "800MHz".
func ParseFreq(s string) (timing.Freq, error) {
	trimmed := strings.TrimSpace(s)

	for _, u := range freqUnits {
		if !strings.HasSuffix(trimmed, u.suffix) {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, u.suffix), 64)
		if err != nil || v <= 0 {
			return 0, fmt.Errorf("%w: bad clock %q", ErrInvalidOptions, s)
		}

		return timing.Freq(v) * u.unit, nil
	}

	return 0, fmt.Errorf("%w: clock %q has no unit", ErrInvalidOptions, s)
}
