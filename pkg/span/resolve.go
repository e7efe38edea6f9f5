package span

import "fmt"

// Resolved is a range whose bounds have been resolved against a concrete
// sequence length. It satisfies 0 <= Lo <= Hi <= length and is only
// produced by Resolve; the bounds index the sequence directly.
type Resolved struct {
	Lo, Hi int
}

// Len returns the number of elements covered by the range.
func (r Resolved) Len() int { return r.Hi - r.Lo }

// IsEmpty reports whether the range covers no elements.
func (r Resolved) IsEmpty() bool { return r.Lo == r.Hi }

// IndexUnderflow is returned when a negative index reaches before the
// start of the sequence, i.e. Len + Index is still negative.
type IndexUnderflow struct {
	Index int // the negative index as given
	Len   int // the sequence length it was resolved against
}

func (e IndexUnderflow) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf(
			"index underflow: no negative index is valid for an empty sequence, but index is %d", e.Index)
	}
	return fmt.Sprintf(
		"index underflow: negative index must be from %d to -1, but is %d", -e.Len, e.Index)
}

// IndexOutOfBounds is returned when a resolved position exceeds the
// largest valid value: the sequence length for range endpoints, or one
// less than that for single-element access.
type IndexOutOfBounds struct {
	Index int // the resolved position
	Max   int // the largest valid position
}

func (e IndexOutOfBounds) Error() string {
	if e.Max < 0 {
		return fmt.Sprintf(
			"index out of bounds: no index is valid for an empty sequence, but index is %d", e.Index)
	}
	return fmt.Sprintf(
		"index out of bounds: index must be from 0 to %d, but is %d", e.Max, e.Index)
}

// InvertedRange is returned when the resolved start lies after the
// resolved end, even though both are within bounds on their own.
type InvertedRange struct {
	Lo, Hi int // resolved positions
}

func (e InvertedRange) Error() string {
	return fmt.Sprintf("inverted range: start resolves to %d, after end %d", e.Lo, e.Hi)
}

// Resolve resolves spec against a sequence of length n, yielding concrete
// nonnegative bounds. An endpoint equal to n is valid and denotes the
// empty tail, and any range with equal resolved bounds is a valid empty
// range. Out-of-range endpoints are never clamped.
//
// When more than one endpoint is invalid, the most specific error wins:
// underflow of either endpoint is reported before out-of-bounds, which is
// reported before an inverted range.
func Resolve(spec Spec, n int) (Resolved, error) {
	lo, hi := 0, n
	if spec.hasStart {
		lo = adjust(spec.start, n)
	}
	if spec.hasEnd {
		hi = adjust(spec.end, n)
	}
	// A negative result means a negative endpoint stayed negative after
	// adding n. The sum cannot wrap around: n is a slice length, so adding
	// it to any int keeps the value at or above MinInt.
	if lo < 0 {
		return Resolved{}, IndexUnderflow{Index: spec.start, Len: n}
	}
	if hi < 0 {
		return Resolved{}, IndexUnderflow{Index: spec.end, Len: n}
	}
	if lo > n {
		return Resolved{}, IndexOutOfBounds{Index: lo, Max: n}
	}
	if hi > n {
		return Resolved{}, IndexOutOfBounds{Index: hi, Max: n}
	}
	if lo > hi {
		return Resolved{}, InvertedRange{Lo: lo, Hi: hi}
	}
	return Resolved{Lo: lo, Hi: hi}, nil
}

func adjust(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}
