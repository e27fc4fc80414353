// Package store exposes the stateful facade over the roster core: it owns
// the current roster value, the id allocator, and the memoized active-user
// count, and notifies observers of every change through time-bounded events.
package store

import (
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/roster_ive_go/derived"
	"github.com/on-the-ground/roster_ive_go/draft"
	"github.com/on-the-ground/roster_ive_go/roster"
)

// IMPORTANT:
// A Store is **intentionally NOT thread-safe**.
//
// It assumes a single logical thread of control driving strictly sequential
// events (form keystrokes, button clicks): every operation runs to completion
// before the next one starts, so there is nothing to lock.
//
// ➤ Sharing a Store across goroutines without external synchronization
//
//	leads to undefined behavior.
//
// If you need shared access, manage synchronization outside the store.
type Store struct {
	id     string
	logger *zap.Logger

	rst   roster.Roster
	alloc roster.Allocator

	activeCount *derived.Cell[roster.Roster, int]

	sink   chan TimeBoundedEvent
	hist   *history
	closed bool
}

type options struct {
	logger  *zap.Logger
	config  Config
	initial *initialState
}

type initialState struct {
	rst   roster.Roster
	alloc roster.Allocator
}

// Option configures a Store at construction time.
type Option func(*options)

// WithLogger replaces the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithConfig sizes the event buffer and history.
func WithConfig(config Config) Option {
	return func(o *options) { o.config = config }
}

// WithInitial replaces the default seed roster and allocator. The allocator
// must be positioned past every id in the roster; the store does not check.
func WithInitial(r roster.Roster, a roster.Allocator) Option {
	return func(o *options) { o.initial = &initialState{rst: r, alloc: a} }
}

// New builds a store seeded via roster.Seed unless WithInitial overrides it.
func New(opts ...Option) *Store {
	o := options{
		logger: zap.NewNop(),
		config: NewConfig(0, 0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	// zero-valued sizes degrade to the defaults even for a hand-built Config
	o.config = NewConfig(o.config.EventBufferSize, o.config.HistorySize)

	rst, alloc := roster.Seed()
	if o.initial != nil {
		rst, alloc = o.initial.rst, o.initial.alloc
	}

	s := &Store{
		id:          uuid.New().String(),
		logger:      o.logger,
		rst:         rst,
		alloc:       alloc,
		activeCount: derived.NewCell(roster.CountActive),
		sink:        make(chan TimeBoundedEvent, o.config.EventBufferSize),
		hist:        newHistory(o.config.HistorySize),
	}
	s.logger.Debug("roster store ready",
		zap.String("storeId", s.id),
		zap.Int("users", rst.Len()),
		zap.Uint64("fingerprint", rst.CacheKey()),
	)
	return s
}

// Add appends a new inactive user built from the draft fields and advances
// the allocator by one. It is total: empty fields are accepted as-is.
func (s *Store) Add(username, email string) roster.User {
	rst, alloc, u := roster.Add(s.rst, s.alloc, username, email)
	s.rst, s.alloc = rst, alloc
	s.emit(UserAdded{User: u})
	return u
}

// Remove drops the matching user. Removing an absent id is a no-op, not an
// error: the roster value is left untouched, so derived caches stay valid.
func (s *Store) Remove(id roster.ID) bool {
	if _, ok := s.rst.Lookup(id); !ok {
		return false
	}
	s.rst = s.rst.Remove(id)
	s.emit(UserRemoved{ID: id})
	return true
}

// Toggle flips the matching user's active flag. No-op on an absent id.
func (s *Store) Toggle(id roster.ID) bool {
	u, ok := s.rst.Lookup(id)
	if !ok {
		return false
	}
	s.rst = s.rst.Toggle(id)
	s.emit(UserToggled{ID: id, Active: !u.Active})
	return true
}

// ActiveCount returns the number of active users. The scan is memoized keyed
// by the roster value: repeated calls on an unchanged roster reuse the
// previous result, and unrelated state (draft edits, say) never invalidates
// it.
func (s *Store) ActiveCount() int {
	return s.activeCount.Value(s.rst)
}

// Submit implements the create-form contract: read the draft buffer, add the
// user, hand back the reset buffer for the next draft.
func (s *Store) Submit(b draft.Buffer) (roster.User, draft.Buffer) {
	u := s.Add(b.Username, b.Email)
	return u, b.Reset()
}

// Roster returns the current roster value.
func (s *Store) Roster() roster.Roster { return s.rst }

// Allocator returns the current allocator value.
func (s *Store) Allocator() roster.Allocator { return s.alloc }

// Snapshot encodes the current roster as JSON for the presentation layer.
func (s *Store) Snapshot() ([]byte, error) {
	return json.Marshal(s.rst)
}

// Events exposes the live change feed. Emission is non-blocking: events are
// dropped when the buffer is full and nobody is draining it.
func (s *Store) Events() <-chan TimeBoundedEvent { return s.sink }

// Recent returns the bounded, time-ordered history of change events.
func (s *Store) Recent() []TimeBoundedEvent { return s.hist.recent() }

// Close closes the event sink. Idempotent; mutations after Close still apply
// but no longer reach the live feed.
func (s *Store) Close() {
	if !s.closed {
		s.closed = true
		close(s.sink)
		s.logger.Debug("roster store closed", zap.String("storeId", s.id))
	}
}

func (s *Store) emit(e Event) {
	tbe := eventWithNow(e)
	s.hist.insert(tbe)
	if !s.closed {
		select {
		case s.sink <- tbe:
		default:
		}
	}
	s.logger.Debug("roster changed",
		zap.String("storeId", s.id),
		zap.String("event", e.eventName()),
		zap.Int("users", s.rst.Len()),
		zap.Uint64("fingerprint", s.rst.CacheKey()),
	)
}
