// Package span resolves ranges with possibly-negative bounds against
// contiguous sequences: a negative bound counts backwards from the end of
// the sequence, Python-style.
//
// A Spec describes a half-open range whose endpoints may be absent or
// negative. Resolve turns a Spec and a sequence length into concrete
// nonnegative bounds, and View, ViewMut and friends return subviews of a
// slice over those bounds. Resolution never clamps: an endpoint that falls
// outside the sequence is reported as a typed error instead of being
// silently adjusted to a nearby valid position.
package span

import (
	"strconv"
	"strings"
)

// Spec describes a half-open range [start, end) whose endpoints may be
// negative or absent. A negative endpoint counts from the end of the
// sequence, -1 being the position of the last element. An absent start
// defaults to 0 and an absent end to the length of the sequence.
//
// A Spec carries no validity invariant of its own; endpoints are only
// checked when the Spec is resolved against a concrete length.
type Spec struct {
	start, end       int
	hasStart, hasEnd bool
}

// Full returns the fully open range "..", covering the whole sequence.
func Full() Spec { return Spec{} }

// From returns the range "start..", from start to the end of the sequence.
func From(start int) Spec { return Spec{start: start, hasStart: true} }

// To returns the range "..end", from the beginning of the sequence up to
// but not including end.
func To(end int) Spec { return Spec{end: end, hasEnd: true} }

// Between returns the range "start..end".
func Between(start, end int) Spec {
	return Spec{start: start, end: end, hasStart: true, hasEnd: true}
}

// Start returns the start endpoint and whether it is present.
func (s Spec) Start() (int, bool) { return s.start, s.hasStart }

// End returns the end endpoint and whether it is present.
func (s Spec) End() (int, bool) { return s.end, s.hasEnd }

// String renders the range in the "a..b" notation accepted by Parse.
func (s Spec) String() string {
	var sb strings.Builder
	if s.hasStart {
		sb.WriteString(strconv.Itoa(s.start))
	}
	sb.WriteString("..")
	if s.hasEnd {
		sb.WriteString(strconv.Itoa(s.end))
	}
	return sb.String()
}
