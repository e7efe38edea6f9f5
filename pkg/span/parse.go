package span

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	errNoRangeSep           = errors.New("range must contain .. or ..=")
	errBoundNotInt          = errors.New("range bound must be an integer")
	errInclusiveEndTooLarge = errors.New("inclusive end is too large")
)

// Parse parses a range from its textual notation: ".." is the full range,
// "a..", "..b" and "a..b" are half-open ranges, and "a..=b" (with either
// bound omissible) is a range whose end bound is itself included. Bounds
// may be negative. An inclusive end of -1 includes the last element and is
// therefore the same as an omitted end.
//
// Range = [ Bound ] ( ".." | "..=" ) [ Bound ]
func Parse(s string) (Spec, error) {
	low, sep, high := splitRange(s)
	if sep == "" {
		return Spec{}, errNoRangeSep
	}
	var spec Spec
	if low != "" {
		i, err := strconv.Atoi(low)
		if err != nil {
			return Spec{}, errBoundNotInt
		}
		spec.start, spec.hasStart = i, true
	}
	if high != "" {
		j, err := strconv.Atoi(high)
		if err != nil {
			return Spec{}, errBoundNotInt
		}
		if sep == "..=" {
			switch {
			case j == -1:
				// Including the element at -1 is the same as leaving the
				// end open.
				return spec, nil
			case j == math.MaxInt:
				return Spec{}, errInclusiveEndTooLarge
			default:
				j++
			}
		}
		spec.end, spec.hasEnd = j, true
	}
	return spec, nil
}

func splitRange(s string) (low, sep, high string) {
	if i := strings.Index(s, "..="); i >= 0 {
		return s[:i], "..=", s[i+3:]
	}
	if i := strings.Index(s, ".."); i >= 0 {
		return s[:i], "..", s[i+2:]
	}
	return s, "", ""
}
