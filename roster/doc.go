// Package roster implements an in-memory user roster with a persistent-update
// discipline: every mutating operation returns a fresh Roster value and leaves
// its input untouched.
//
// Because roster values never change after construction, derived computations
// such as CountActive can be cached keyed by the roster's content fingerprint
// (see CacheKey) and reused for as long as the roster stays the same. The
// derived package builds on exactly that property.
//
// Identifier allocation is separated into the Allocator value: IDs are issued
// in strictly increasing order and are never reused, even after the user they
// were issued to has been removed.
package roster
