package span

// View returns the subview of s described by spec. The subview shares
// storage with s; no elements are copied. If spec does not resolve against
// len(s), the resolver's error is returned and s is never indexed.
func View[S ~[]E, E any](s S, spec Spec) (S, error) {
	r, err := Resolve(spec, len(s))
	if err != nil {
		return nil, err
	}
	return s[r.Lo:r.Hi], nil
}

// ViewMut is View for callers that intend to write through the subview.
// The two differ only by contract: while the subview returned by ViewMut
// is in use, no other view overlapping it should be read or written. Go
// does not enforce this at compile time; Guarded provides a
// runtime-checked alternative.
func ViewMut[S ~[]E, E any](s S, spec Spec) (S, error) {
	return View(s, spec)
}

// ViewString is View over the bytes of a string. Indices count bytes, not
// runes; the returned substring may split a multi-byte rune.
func ViewString(s string, spec Spec) (string, error) {
	r, err := Resolve(spec, len(s))
	if err != nil {
		return "", err
	}
	return s[r.Lo:r.Hi], nil
}

// At returns the element of s at i, which may be negative to count from
// the end. Valid indices are -len(s) through len(s)-1.
func At[S ~[]E, E any](s S, i int) (E, error) {
	j, err := element(i, len(s))
	if err != nil {
		var zero E
		return zero, err
	}
	return s[j], nil
}

// PtrAt returns a pointer to the element of s at i, for writing through a
// possibly-negative index. Valid indices are the same as for At.
func PtrAt[S ~[]E, E any](s S, i int) (*E, error) {
	j, err := element(i, len(s))
	if err != nil {
		return nil, err
	}
	return &s[j], nil
}

// element resolves a single-element index. Unlike a range endpoint, the
// length itself is not a valid position.
func element(i, n int) (int, error) {
	if i < 0 {
		if i+n < 0 {
			return 0, IndexUnderflow{Index: i, Len: n}
		}
		return i + n, nil
	}
	if i >= n {
		return 0, IndexOutOfBounds{Index: i, Max: n - 1}
	}
	return i, nil
}
