package span

import (
	"errors"
	"sync"
)

// ErrViewLive is returned by Guarded when a requested view or append
// conflicts with a view that has not been released yet.
var ErrViewLive = errors.New("conflicting view is live")

// Guarded owns a growable sequence and checks at runtime the access
// discipline that View and ViewMut can only document: any number of
// shared views may be live at once, or a single exclusive view, never
// both. Conflicting requests fail immediately with ErrViewLive rather
// than block.
type Guarded[E any] struct {
	mu      sync.Mutex
	readers int
	writer  bool
	elems   []E
}

// NewGuarded returns a Guarded sequence holding the given elements.
func NewGuarded[E any](elems ...E) *Guarded[E] {
	return &Guarded[E]{elems: elems}
}

// Len returns the current length of the sequence.
func (g *Guarded[E]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.elems)
}

// View returns a shared subview over spec and a release func. The view
// stays valid until released; releasing more than once is a no-op. It
// fails with ErrViewLive while an exclusive view is live.
func (g *Guarded[E]) View(spec Spec) ([]E, func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.writer {
		return nil, nil, ErrViewLive
	}
	r, err := Resolve(spec, len(g.elems))
	if err != nil {
		return nil, nil, err
	}
	g.readers++
	release := sync.OnceFunc(func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.readers--
	})
	return g.elems[r.Lo:r.Hi], release, nil
}

// ViewMut returns an exclusive subview over spec and a release func. It
// fails with ErrViewLive while any other view is live.
func (g *Guarded[E]) ViewMut(spec Spec) ([]E, func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.writer || g.readers > 0 {
		return nil, nil, ErrViewLive
	}
	r, err := Resolve(spec, len(g.elems))
	if err != nil {
		return nil, nil, err
	}
	g.writer = true
	release := sync.OnceFunc(func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.writer = false
	})
	return g.elems[r.Lo:r.Hi], release, nil
}

// Append grows the sequence. Growth may move the backing array out from
// under live views, so it fails with ErrViewLive while any view is live.
func (g *Guarded[E]) Append(elems ...E) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.writer || g.readers > 0 {
		return ErrViewLive
	}
	g.elems = append(g.elems, elems...)
	return nil
}
