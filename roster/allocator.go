package roster

// Allocator issues user IDs in strictly increasing order. Like the roster
// itself it is a value: Allocate returns the issued id together with the
// advanced allocator, so exactly one id is consumed per successful add and
// an id is never handed out twice, even after its user has been removed.
type Allocator struct {
	next ID
}

// NewAllocator positions the allocator so that next is the first id issued.
func NewAllocator(next ID) Allocator {
	return Allocator{next: next}
}

// Next reports the id the allocator will issue on the next Allocate call.
func (a Allocator) Next() ID { return a.next }

// Allocate issues the current id and returns the allocator advanced by one.
func (a Allocator) Allocate() (ID, Allocator) {
	return a.next, Allocator{next: a.next + 1}
}
