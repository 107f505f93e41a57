package track

import "sort"

// chooseFrom implements the branch-resolution rule shared by grow and the
// point-state's initial direction pick: zero candidates halts growth, one
// candidate is taken without consulting where, and two or more require
// where to pick one of the offered candidates.
func chooseFrom(candidates []string, where func([]string) (string, bool)) (string, bool) {
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	default:
		if where == nil {
			return "", false
		}
		choice, ok := where(candidates)
		if !ok {
			return "", false
		}
		for _, c := range candidates {
			if c == choice {
				return choice, true
			}
		}
		return "", false
	}
}

// neighborsOf returns node's neighbour ids, sorted for deterministic
// single-candidate selection and for a stable order to hand to where.
func neighborsOf(g *Graph, node string) []string {
	n, ok := g.nodes[node]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(n.other))
	for x := range n.other {
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}

// throughCandidates returns the neighbours of active reachable by a
// declared through-connection with predecessor — the only legal next hops
// when crossing a junction mid-slice.
func throughCandidates(g *Graph, active, predecessor string) []string {
	n, ok := g.nodes[active]
	if !ok {
		return nil
	}
	s, ok := n.other[predecessor]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(s.through))
	for x := range s.through {
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}

// growFront extends the slice's front end by up to by units, crossing
// junctions via where when more than one candidate is offered. Returns the
// amount actually grown (0 <= grown <= by).
func growFront(g *Graph, s *sliceState, by int, where func([]string) (string, bool)) int {
	grown := 0
	for by > 0 {
		if len(s.along) == 1 {
			choice, ok := chooseFrom(neighborsOf(g, s.along[0]), where)
			if !ok {
				break
			}
			e := mustEdge(g, s.along[0], choice)
			s.along = append(s.along, choice)
			s.front = e.Length
		}

		n := len(s.along)
		step := by
		if s.front < step {
			step = s.front
		}
		s.front -= step
		by -= step
		grown += step

		if s.front > 0 {
			break
		}
		if by == 0 {
			break
		}

		predecessor, active := s.along[n-2], s.along[n-1]
		choice, ok := chooseFrom(throughCandidates(g, active, predecessor), where)
		if !ok {
			break
		}
		e := mustEdge(g, active, choice)
		s.along = append(s.along, choice)
		s.front = e.Length
	}
	return grown
}

// growBack extends the slice's back end by up to by units; the mirror image
// of growFront, prepending to along instead of appending.
func growBack(g *Graph, s *sliceState, by int, where func([]string) (string, bool)) int {
	grown := 0
	for by > 0 {
		if len(s.along) == 1 {
			choice, ok := chooseFrom(neighborsOf(g, s.along[0]), where)
			if !ok {
				break
			}
			e := mustEdge(g, choice, s.along[0])
			s.along = append([]string{choice}, s.along...)
			s.back = e.Length
		}

		step := by
		if s.back < step {
			step = s.back
		}
		s.back -= step
		by -= step
		grown += step

		if s.back > 0 {
			break
		}
		if by == 0 {
			break
		}

		active, predecessor := s.along[0], s.along[1]
		choice, ok := chooseFrom(throughCandidates(g, active, predecessor), where)
		if !ok {
			break
		}
		e := mustEdge(g, choice, active)
		s.along = append([]string{choice}, s.along...)
		s.back = e.Length
	}
	return grown
}
