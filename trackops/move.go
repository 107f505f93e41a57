package trackops

import "github.com/katalvlaran/trackgraph/track"

// MoveSlice grows end by by, then shrinks the opposite end by whatever
// amount was actually grown. Panics if the two magnitudes ever disagree —
// that would mean a shrink by no more than the slice's length fell short,
// which ModifySlice's shrink rule rules out.
func MoveSlice(g *track.Graph, id string, end, by int, where func([]string) (string, bool)) int {
	grown := g.ModifySlice(id, end, by, where)

	opposite := end * -1
	shrunk := g.ModifySlice(id, opposite, -grown, where)
	if -shrunk != grown {
		panic("trackops: invariant violation: MoveSlice grow/shrink amounts disagree")
	}

	return grown
}
