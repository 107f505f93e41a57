// Package trackgraph is an in-memory, mutable model of a railway-style
// track network in Go.
//
// Three coupled concerns live here, each its own subpackage:
//
//	container/ — generic multiset and symmetric pair-map containers
//	track/     — topology (nodes, edges, through-connections) and the
//	             contiguous-slice occupancy engine, plus an edge-change feed
//	component/ — abstract dynamic connectivity over an adjacency relation
//	division/  — block-aware reachability, composed over component atop
//	             track's edge-change feed
//	trackops/  — SplitEdge, MoveSlice, CloneSlice, AddDescribedSlice: pure
//	             helpers layered on track's public surface
//
// Edge deletion is refused while a slice occupies the edge; slice growth is
// constrained by declared node connections; divisions observe the topology
// but never mutate it. The library is single-threaded by design — callers
// owning multiple goroutines are responsible for their own synchronization.
package trackgraph
