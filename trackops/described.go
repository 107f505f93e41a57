package trackops

import "github.com/katalvlaran/trackgraph/track"

// AddDescribedSlice reconstructs a slice matching described. It seeds a
// point at described.Along[0], then:
//
//   - for a non-degenerate slice (Length > 0), grows the front end by
//     Back+Length — using a cursor that re-derives its expected next node
//     from the slice's own live state on every call, so it never desyncs
//     regardless of how many times where is actually consulted — and
//     finally shrinks the back end by Back to install the final back
//     offset;
//   - for a degenerate point (Length == 0) sitting strictly inside one
//     edge (a two-node Along with Back+Front equal to that edge's length),
//     grows fully across the edge and shrinks each end back down to its
//     described offset, via addDescribedPoint.
//
// Any shortfall tears the slice down and returns false.
func AddDescribedSlice(g *track.Graph, id string, described track.SliceView) bool {
	if len(described.Along) == 0 {
		return false
	}
	if !g.AddSlice(id, described.Along[0]) {
		return false
	}

	if described.Length == 0 {
		return addDescribedPoint(g, id, described)
	}

	cursor := func(candidates []string) (string, bool) {
		sv, ok := g.LookupSlice(id)
		if !ok {
			return "", false
		}
		idx := len(sv.Along)
		if idx >= len(described.Along) {
			return "", false
		}
		want := described.Along[idx]
		for _, c := range candidates {
			if c == want {
				return want, true
			}
		}
		return "", false
	}

	total := described.Back + described.Length
	if g.ModifySlice(id, +1, total, cursor) != total {
		g.DeleteSlice(id)
		return false
	}

	if described.Back > 0 {
		if g.ModifySlice(id, -1, -described.Back, cursor) != -described.Back {
			g.DeleteSlice(id)
			return false
		}
	}

	return true
}

// addDescribedPoint reconstructs a zero-length slice. A single-node Along
// is already installed by AddSlice above. A two-node Along describes a
// point sitting strictly inside one edge (Back+Front == that edge's full
// length) — reached by growing fully across the edge, then shrinking each
// end back down to its described offset.
func addDescribedPoint(g *track.Graph, id string, described track.SliceView) bool {
	switch len(described.Along) {
	case 1:
		return true
	case 2:
		ev, ok := g.LookupEdge(described.Along[0], described.Along[1])
		if !ok {
			g.DeleteSlice(id)
			return false
		}
		toSecond := onlyChoice(described.Along[1])
		if g.ModifySlice(id, +1, ev.Length, toSecond) != ev.Length {
			g.DeleteSlice(id)
			return false
		}
		if described.Front > 0 && g.ModifySlice(id, +1, -described.Front, nil) != -described.Front {
			g.DeleteSlice(id)
			return false
		}
		if described.Back > 0 && g.ModifySlice(id, -1, -described.Back, nil) != -described.Back {
			g.DeleteSlice(id)
			return false
		}
		return true
	default:
		g.DeleteSlice(id)
		return false
	}
}

func onlyChoice(want string) func([]string) (string, bool) {
	return func(candidates []string) (string, bool) {
		for _, c := range candidates {
			if c == want {
				return want, true
			}
		}
		return "", false
	}
}
