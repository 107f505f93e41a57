package trackops

import "github.com/katalvlaran/trackgraph/track"

// CloneSlice looks up prev's described state and reconstructs it under
// newID. Returns false if prev is unknown or the reconstruction fails.
func CloneSlice(g *track.Graph, prev, newID string) bool {
	view, ok := g.LookupSlice(prev)
	if !ok {
		return false
	}
	return AddDescribedSlice(g, newID, view)
}
