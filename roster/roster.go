package roster

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Roster is a persistent, insertion-ordered sequence of users.
//
// Operations never mutate the receiver. They return a fresh value whose
// untouched entries are shared with the original, so callers can hold on to
// old roster values and detect change cheaply through CacheKey.
type Roster struct {
	users []User
	key   uint64
}

// New builds a roster from the given users in order.
func New(users ...User) Roster {
	owned := make([]User, len(users))
	copy(owned, users)
	return Roster{users: owned, key: fingerprint(owned)}
}

// Len reports the number of users in the roster.
func (r Roster) Len() int { return len(r.users) }

// Users returns a copy of the roster's entries in insertion order.
func (r Roster) Users() []User {
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out
}

// Lookup finds the user with the given id.
func (r Roster) Lookup(id ID) (User, bool) {
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Append returns a new roster with u added at the end.
func (r Roster) Append(u User) Roster {
	users := make([]User, len(r.users)+1)
	copy(users, r.users)
	users[len(r.users)] = u
	return Roster{users: users, key: fingerprint(users)}
}

// Remove returns a new roster without the user matching id, preserving the
// relative order of the rest. Removing an absent id is a no-op, not an error:
// the receiver is returned unchanged.
func (r Roster) Remove(id ID) Roster {
	if _, ok := r.Lookup(id); !ok {
		return r
	}
	users := make([]User, 0, len(r.users)-1)
	for _, u := range r.users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	return Roster{users: users, key: fingerprint(users)}
}

// Toggle returns a new roster where the user matching id has its active flag
// flipped; all other entries are the same values as before. Toggling an
// absent id is a no-op, not an error.
func (r Roster) Toggle(id ID) Roster {
	idx := -1
	for i, u := range r.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r
	}
	users := make([]User, len(r.users))
	copy(users, r.users)
	users[idx] = users[idx].toggled()
	return Roster{users: users, key: fingerprint(users)}
}

// CacheKey returns the roster's content fingerprint: two rosters with equal
// contents report the same key. It is computed once at construction, so
// comparing keys is O(1). Derived-value caches use it as their invalidation
// key (see the derived package).
func (r Roster) CacheKey() uint64 { return r.key }

// Equal reports element-wise content equality.
func (r Roster) Equal(other Roster) bool {
	if len(r.users) != len(other.users) {
		return false
	}
	for i, u := range r.users {
		if u != other.users[i] {
			return false
		}
	}
	return true
}

// CountActive returns the number of users with an active flag set. It is a
// pure linear scan over the roster's contents, safe to memoize keyed by
// CacheKey.
func CountActive(r Roster) int {
	n := 0
	for _, u := range r.users {
		if u.Active {
			n++
		}
	}
	return n
}

// Add allocates the next id from a, appends a new inactive user built from
// the draft fields, and returns the new roster, the advanced allocator, and
// the created user. It is total: empty usernames and emails are accepted
// as-is, no validation happens at this layer.
func Add(r Roster, a Allocator, username, email string) (Roster, Allocator, User) {
	id, next := a.Allocate()
	u := User{ID: id, Username: username, Email: email}
	return r.Append(u), next, u
}

func fingerprint(users []User) uint64 {
	d := xxhash.New()
	var word [8]byte
	// Field content is unconstrained, so strings are length-prefixed: no
	// byte sequence can shift content across a field boundary.
	writeString := func(s string) {
		binary.LittleEndian.PutUint64(word[:], uint64(len(s)))
		_, _ = d.Write(word[:])
		_, _ = d.WriteString(s)
	}
	for _, u := range users {
		binary.LittleEndian.PutUint64(word[:], uint64(u.ID))
		_, _ = d.Write(word[:])
		writeString(u.Username)
		writeString(u.Email)
		if u.Active {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
	}
	return d.Sum64()
}
