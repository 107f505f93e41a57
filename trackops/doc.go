// Package trackops implements high-level helpers expressed purely through
// track.Graph's public surface: SplitEdge, MoveSlice, CloneSlice, and
// AddDescribedSlice. None of them reach inside the graph's internals — each
// is a sequence of ordinary track.Graph calls, the way a caller of the
// library would have to assemble the same behaviour by hand.
package trackops
