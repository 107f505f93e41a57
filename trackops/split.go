package trackops

import "github.com/katalvlaran/trackgraph/track"

// SplitEdge replaces the edge {a,b} with two shorter edges (a,newNode,at)
// and (newNode,b,length-at), connected through newNode, and re-homes every
// slice that occupied the old edge onto the new pair. at may be negative,
// meaning length+at; it must land strictly inside (0, length) or
// ErrInvalidSplitPosition is returned.
//
// The operation is transactional from the caller's viewpoint: if
// re-materializing any snapshotted slice fails, the original edge and
// slices are restored and (false, nil) is returned.
func SplitEdge(g *track.Graph, a, b string, at int, newNode string) (bool, error) {
	ev, ok := g.LookupEdge(a, b)
	if !ok {
		return false, nil
	}
	length := ev.Length
	if at < 0 {
		at = length + at
	}
	if at <= 0 || at >= length {
		return false, ErrInvalidSplitPosition
	}

	// Neighbours of a and b reachable through the old edge on the other
	// side — these through-links must be re-pointed at newNode once the
	// old edge is gone, so interior pass-throughs keep working.
	throughBAtA := g.LookupNode(a).Other[b]
	throughAAtB := g.LookupNode(b).Other[a]

	snaps := make([]snapshot, 0, len(ev.Slices))
	for _, id := range ev.Slices {
		if sv, ok := g.LookupSlice(id); ok {
			snaps = append(snaps, snapshot{id: id, view: sv})
		}
	}

	for _, sn := range snaps {
		g.DeleteSlice(sn.id)
	}
	if !g.DeleteEdge(a, b) {
		for _, sn := range snaps {
			restoreSlice(g, sn.id, sn.view)
		}
		return false, nil
	}

	if ok1, err1 := g.AddEdge(a, newNode, at); err1 != nil || !ok1 {
		rollbackSplit(g, a, b, length, snaps)
		return false, nil
	}
	if ok2, err2 := g.AddEdge(newNode, b, length-at); err2 != nil || !ok2 {
		g.DeleteEdge(a, newNode)
		rollbackSplit(g, a, b, length, snaps)
		return false, nil
	}
	if ok, err := g.Connect(a, newNode, b); err != nil || !ok {
		rollbackSplit(g, a, b, length, snaps)
		return false, nil
	}
	for _, x := range throughBAtA {
		g.Connect(x, a, newNode)
	}
	for _, y := range throughAAtB {
		g.Connect(newNode, b, y)
	}

	for _, sn := range snaps {
		along := patchAlong(sn.view.Along, a, b, newNode)
		along, back := normalizeBack(g, along, sn.view.Back)
		along, front := normalizeFront(g, along, sn.view.Front)
		described := track.SliceView{Along: along, Back: back, Front: front, Length: sn.view.Length}
		if !AddDescribedSlice(g, sn.id, described) {
			rollbackSplit(g, a, b, length, snaps)
			return false, nil
		}
	}

	return true, nil
}

// patchAlong inserts newNode between every consecutive occurrence of
// {a,b} (in either order) in along.
func patchAlong(along []string, a, b, newNode string) []string {
	out := make([]string, 0, len(along)+1)
	for i, n := range along {
		out = append(out, n)
		if i+1 < len(along) {
			next := along[i+1]
			if (n == a && next == b) || (n == b && next == a) {
				out = append(out, newNode)
			}
		}
	}
	return out
}

// normalizeBack pops along[0] while back has overflowed the (now possibly
// shorter) first edge, mirroring shrinkEnd's own pop-and-reset rule.
func normalizeBack(g *track.Graph, along []string, back int) ([]string, int) {
	for len(along) >= 2 {
		ev, ok := g.LookupEdge(along[0], along[1])
		if !ok || back < ev.Length {
			break
		}
		along = along[1:]
		back -= ev.Length
	}
	if len(along) == 1 {
		back = 0
	}
	return along, back
}

// normalizeFront is the mirror of normalizeBack, popping along[-1].
func normalizeFront(g *track.Graph, along []string, front int) ([]string, int) {
	for len(along) >= 2 {
		n := len(along)
		ev, ok := g.LookupEdge(along[n-2], along[n-1])
		if !ok || front < ev.Length {
			break
		}
		along = along[:n-1]
		front -= ev.Length
	}
	if len(along) == 1 {
		front = 0
	}
	return along, front
}

// snapshot is one slice's described state, captured before a split.
type snapshot struct {
	id   string
	view track.SliceView
}

// rollbackSplit restores the original edge and slices after a failed split,
// tearing down whatever partial new state was created.
func rollbackSplit(g *track.Graph, a, b string, length int, snaps []snapshot) {
	g.DeleteEdge(a, b) // in case a stale (a,b) edge exists from a partial retry
	g.AddEdge(a, b, length)
	for _, sn := range snaps {
		restoreSlice(g, sn.id, sn.view)
	}
}

// restoreSlice re-materializes a snapshotted slice after a rollback.
func restoreSlice(g *track.Graph, id string, view track.SliceView) {
	AddDescribedSlice(g, id, view)
}
