package span

import (
	"math"
	"testing"

	. "github.com/tos-kamiya/clip-slice/pkg/tt"
)

func TestResolve(t *testing.T) {
	Test(t, Fn("Resolve", Resolve), Table{
		// Fully open ranges cover the whole sequence.
		Args(Full(), 0).Rets(Resolved{0, 0}, nil),
		Args(Full(), 6).Rets(Resolved{0, 6}, nil),
		// Nonnegative endpoints resolve to themselves.
		Args(From(2), 6).Rets(Resolved{2, 6}, nil),
		Args(To(4), 6).Rets(Resolved{0, 4}, nil),
		Args(Between(1, 4), 6).Rets(Resolved{1, 4}, nil),
		Args(From(0), 6).Rets(Resolved{0, 6}, nil),
		// An endpoint equal to the length is valid and denotes the empty
		// tail.
		Args(From(6), 6).Rets(Resolved{6, 6}, nil),
		Args(To(6), 6).Rets(Resolved{0, 6}, nil),
		Args(Between(6, 6), 6).Rets(Resolved{6, 6}, nil),
		// Negative endpoints count from the end; the end bound stays
		// exclusive.
		Args(To(-2), 6).Rets(Resolved{0, 4}, nil),
		Args(To(-1), 6).Rets(Resolved{0, 5}, nil),
		Args(Between(-4, -1), 6).Rets(Resolved{2, 5}, nil),
		Args(From(-1), 6).Rets(Resolved{5, 6}, nil),
		Args(From(-6), 6).Rets(Resolved{0, 6}, nil),
		// -v and len-v name the same position.
		Args(From(-2), 6).Rets(Resolved{4, 6}, nil),
		Args(From(4), 6).Rets(Resolved{4, 6}, nil),
		// Empty ranges are valid, not errors.
		Args(Between(0, 0), 6).Rets(Resolved{0, 0}, nil),
		Args(Between(3, 3), 6).Rets(Resolved{3, 3}, nil),
		Args(Between(-1, -1), 6).Rets(Resolved{5, 5}, nil),

		// Underflow: the negative endpoint reaches before position 0.
		Args(From(-10), 6).Rets(Resolved{}, IndexUnderflow{Index: -10, Len: 6}),
		Args(From(-7), 6).Rets(Resolved{}, IndexUnderflow{Index: -7, Len: 6}),
		Args(To(-7), 6).Rets(Resolved{}, IndexUnderflow{Index: -7, Len: 6}),
		Args(From(-1), 0).Rets(Resolved{}, IndexUnderflow{Index: -1, Len: 0}),
		Args(From(math.MinInt), 6).Rets(Resolved{}, IndexUnderflow{Index: math.MinInt, Len: 6}),
		// Out of bounds: the resolved position exceeds the length.
		Args(From(7), 6).Rets(Resolved{}, IndexOutOfBounds{Index: 7, Max: 6}),
		Args(To(7), 6).Rets(Resolved{}, IndexOutOfBounds{Index: 7, Max: 6}),
		Args(Between(0, 100), 6).Rets(Resolved{}, IndexOutOfBounds{Index: 100, Max: 6}),
		Args(From(1), 0).Rets(Resolved{}, IndexOutOfBounds{Index: 1, Max: 0}),
		// When both endpoints are invalid, underflow wins over out of
		// bounds, regardless of which endpoint underflowed.
		Args(Between(7, -10), 6).Rets(Resolved{}, IndexUnderflow{Index: -10, Len: 6}),
		Args(Between(-10, 7), 6).Rets(Resolved{}, IndexUnderflow{Index: -10, Len: 6}),
		// Inverted range: start after end, both within bounds on their
		// own.
		Args(Between(2, 1), 6).Rets(Resolved{}, InvertedRange{Lo: 2, Hi: 1}),
		Args(Between(-1, -4), 6).Rets(Resolved{}, InvertedRange{Lo: 5, Hi: 2}),
		Args(Between(4, -4), 6).Rets(Resolved{}, InvertedRange{Lo: 4, Hi: 2}),
		Args(Between(1, 0), 1).Rets(Resolved{}, InvertedRange{Lo: 1, Hi: 0}),
	})
}

func TestResolvedLen(t *testing.T) {
	Test(t, Fn("Resolved.Len", Resolved.Len), Table{
		Args(Resolved{2, 5}).Rets(3),
		Args(Resolved{0, 6}).Rets(6),
		Args(Resolved{4, 4}).Rets(0),
	})
}

func TestResolvedIsEmpty(t *testing.T) {
	Test(t, Fn("Resolved.IsEmpty", Resolved.IsEmpty), Table{
		Args(Resolved{2, 5}).Rets(false),
		Args(Resolved{4, 4}).Rets(true),
	})
}

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		IndexUnderflow{Index: -10, Len: 6},
		"index underflow: negative index must be from -6 to -1, but is -10",
	},
	{
		IndexUnderflow{Index: -1, Len: 0},
		"index underflow: no negative index is valid for an empty sequence, but index is -1",
	},
	{
		IndexOutOfBounds{Index: 7, Max: 6},
		"index out of bounds: index must be from 0 to 6, but is 7",
	},
	{
		IndexOutOfBounds{Index: 0, Max: -1},
		"index out of bounds: no index is valid for an empty sequence, but index is 0",
	},
	{
		InvertedRange{Lo: 2, Hi: 1},
		"inverted range: start resolves to 2, after end 1",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}
