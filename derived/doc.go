// Package derived provides memoization utilities for pure derivations.
//
// A derivation is a function computed purely from one input value. If the
// input exposes a stable content key (the Keyed interface), the derivation
// can be treated as a lazy table: look the key up, recompute only on a miss.
//
// Two shapes are provided:
//
//   - Cell: a single-slot memo holding the result for the most recent input.
//     This is the right shape for "recompute if and only if the value changed
//     since the last call" contracts, where unrelated state changes must not
//     trigger recomputation.
//   - Memoize / MemoizeInto: a table memo over a pluggable CacheStore, for
//     callers that revisit older inputs.
//
// WARNING: do not memoize impure functions (anything depending on time, I/O,
// or hidden mutable state).
package derived
