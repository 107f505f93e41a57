// Package track implements the authoritative railway-style track topology:
// nodes joined by undirected, positive-length edges, a per-node "through"
// connection relation declaring which pairs of edges may be crossed in one
// pass, and an inventory of slices — contiguous occupants anchored on a node
// sequence with two integer end offsets.
//
// A Graph owns all three: topology (Node, Side, Edge), the slice state
// machine (grow/shrink/lookup/delete), and an edge-change event feed that
// downstream connectivity layers (see package division) subscribe to.
//
// Nodes are created implicitly on first reference and are never deleted;
// edges and slices have an explicit lifecycle (AddEdge/DeleteEdge,
// AddSlice/DeleteSlice). Every mutating method that can fail for a reason a
// caller should anticipate returns a bool or a sentinel error rather than
// panicking — panics are reserved for internal invariant violations, which
// should never be observable from outside this package.
package track
