package track

// shrinkEnd retracts end (+1 front, -1 back) by up to amount units, already
// clamped by the caller to s.length. Consumes one edge at a time from the
// active end; when the offset reaches the edge's full length the terminal
// node is popped off along and the offset resets to zero. Returns the
// amount actually shrunk.
func shrinkEnd(g *Graph, s *sliceState, end, amount int) int {
	shrunk := 0
	for amount > 0 && s.length > 0 && len(s.along) > 1 {
		if end == -1 {
			edgeLen := mustEdgeLength(g, s.along[0], s.along[1])
			room := edgeLen - s.back
			step := amount
			if room < step {
				step = room
			}
			s.back += step
			amount -= step
			s.length -= step
			shrunk += step

			if s.back == edgeLen {
				s.along = s.along[1:]
				s.back = 0
				if len(s.along) == 1 {
					s.front = 0
				}
			}
		} else {
			n := len(s.along)
			edgeLen := mustEdgeLength(g, s.along[n-2], s.along[n-1])
			room := edgeLen - s.front
			step := amount
			if room < step {
				step = room
			}
			s.front += step
			amount -= step
			s.length -= step
			shrunk += step

			if s.front == edgeLen {
				s.along = s.along[:len(s.along)-1]
				s.front = 0
				if len(s.along) == 1 {
					s.back = 0
				}
			}
		}
	}
	return shrunk
}
