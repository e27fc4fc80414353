package derived

// Keyed is implemented by values that expose a stable cache key.
// Two values with equal contents must report the same key.
type Keyed interface {
	CacheKey() uint64
}

// Cell memoizes a single pure derivation keyed by its last input.
//
// Value recomputes the wrapped function if and only if the incoming input's
// cache key differs from the one used on the previous computation; otherwise
// the previously computed output is returned unchanged. The cached result is
// therefore never stale relative to the last input, and never recomputed
// spuriously when the input has not changed.
//
// IMPORTANT:
// A Cell is **intentionally NOT thread-safe**. It assumes a single logical
// thread of control, the same ownership model as the store that embeds it.
// Sharing a Cell across goroutines without external synchronization leads to
// undefined behavior.
type Cell[I Keyed, O any] struct {
	fn      func(I) O
	lastKey uint64
	lastOut O
	primed  bool
}

// NewCell wraps a pure derivation in a fresh, unprimed cell.
func NewCell[I Keyed, O any](fn func(I) O) *Cell[I, O] {
	if fn == nil {
		panic("derived: nil derivation")
	}
	return &Cell[I, O]{fn: fn}
}

// Value returns the derivation result for in, reusing the cached output when
// in's cache key matches the one from the previous call.
func (c *Cell[I, O]) Value(in I) O {
	key := in.CacheKey()
	if c.primed && key == c.lastKey {
		return c.lastOut
	}
	c.lastOut = c.fn(in)
	c.lastKey = key
	c.primed = true
	return c.lastOut
}

// Invalidate drops the cached output so the next Value call recomputes.
func (c *Cell[I, O]) Invalidate() {
	c.primed = false
}
