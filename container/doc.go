// Package container provides the small, graph-agnostic data structures the
// track graph is built from: a count-bag (Multiset) and a map keyed by
// unordered pairs (PairMap).
//
// Neither type knows anything about nodes, edges, or slices — they are pure
// containers, mirroring how core/types.go keeps Graph's storage primitives
// (plain maps) free of algorithmic concerns.
package container
