package derived

// CacheStore is the memo backend used by MemoizeInto. Implementations may
// bound or evict entries freely; a miss simply costs one recomputation.
type CacheStore[O any] interface {
	Load(key uint64) (O, bool)
	Store(key uint64, val O)
}

// boundedStore keeps two generations of entries and rotates them once the
// live generation reaches maxSize: the retired generation stays readable
// until the next rotation throws it away. The table never holds more than
// 2*maxSize entries and recently used keys survive one rotation.
//
// Like Cell, it assumes single-goroutine ownership.
type boundedStore[O any] struct {
	gens    [2]map[uint64]O
	head    int
	maxSize uint32
}

// NewBoundedStore builds the default in-memory CacheStore.
func NewBoundedStore[O any](maxSize uint32) CacheStore[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &boundedStore[O]{
		gens:    [2]map[uint64]O{{}, {}},
		maxSize: maxSize,
	}
}

func (s *boundedStore[O]) Load(key uint64) (O, bool) {
	if v, ok := s.gens[s.head][key]; ok {
		return v, true
	}
	v, ok := s.gens[1-s.head][key]
	return v, ok
}

func (s *boundedStore[O]) Store(key uint64, val O) {
	if _, present := s.gens[s.head][key]; !present && uint32(len(s.gens[s.head])) >= s.maxSize {
		s.head = 1 - s.head
		s.gens[s.head] = make(map[uint64]O, s.maxSize)
	}
	s.gens[s.head][key] = val
}

// Memoize wraps a pure derivation with a bounded in-memory memo table keyed
// by the input's cache key.
func Memoize[I Keyed, O any](fn func(I) O, maxSize uint32) func(I) O {
	return MemoizeInto(NewBoundedStore[O](maxSize), fn)
}

// MemoizeInto is Memoize with a caller-provided backend, e.g. a ristretto
// cache shared between several derivations.
func MemoizeInto[I Keyed, O any](store CacheStore[O], fn func(I) O) func(I) O {
	return func(in I) O {
		key := in.CacheKey()
		if v, ok := store.Load(key); ok {
			return v
		}
		v := fn(in)
		store.Store(key, v)
		return v
	}
}
