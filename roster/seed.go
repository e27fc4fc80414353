package roster

// Seed returns the initial roster and allocator a fresh process starts with:
// three users with ids 1-3, the first one active, allocator positioned at 4.
func Seed() (Roster, Allocator) {
	return New(
		User{ID: 1, Username: "ada", Email: "ada@example.com", Active: true},
		User{ID: 2, Username: "brian", Email: "brian@example.com"},
		User{ID: 3, Username: "clara", Email: "clara@example.com"},
	), NewAllocator(4)
}
