package track

import "errors"

// Sentinel errors for track graph operations.
var (
	// ErrInvalidLength indicates a non-positive or non-integer edge length.
	ErrInvalidLength = errors.New("track: edge length must be a positive integer")

	// ErrSelfEdge indicates an edge was attempted between a node and itself.
	ErrSelfEdge = errors.New("track: self-edges are not allowed")

	// ErrNonDistinctTriple indicates connect/disconnect was called with a
	// node triple that is not pairwise distinct.
	ErrNonDistinctTriple = errors.New("track: a, through, and b must be pairwise distinct")
)
