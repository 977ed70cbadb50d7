// Package either provides a two-branch disjoint union Either[L, R] and the
// bridges between it and rop.Result[T]. Right is the success-biased branch
// by convention.
//
// Highlights:
// - Left/Right: construct an Either
// - ToLeft/ToRight: lift a bare value into a branch
// - ToResult/ToResultWith: convert an Either into a Result, optionally
//   adapting the left payload into an error
// - FromResult/FromPair: build an Either from a Result or a (value, error) pair
// - Map/MapLeft/BiMap/Fold: transform or collapse branches
//
// All operations are pure and allocate fresh values, so concurrent use needs
// no coordination.
package either
