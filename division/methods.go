package division

import "github.com/katalvlaran/trackgraph/track"

// onEvent handles one track.EdgeEvent: a positive length allocates the
// edge's token and links it to both endpoints (skipping any endpoint
// currently blocked); a zero length tears the token down.
func (d *Graph) onEvent(ev track.EdgeEvent) {
	if d.checkCancelled() {
		return
	}
	token := pairToken(ev.A, ev.B)

	if ev.Length > 0 {
		d.tokenPair[token] = [2]string{ev.A, ev.B}
		d.nodeTokens[ev.A] = append(d.nodeTokens[ev.A], token)
		d.nodeTokens[ev.B] = append(d.nodeTokens[ev.B], token)
		if !d.blocked[ev.A] {
			d.comp.Add(ev.A, token)
		}
		if !d.blocked[ev.B] {
			d.comp.Add(ev.B, token)
		}
		return
	}

	if !d.blocked[ev.A] {
		d.comp.Delete(ev.A, token)
	}
	if !d.blocked[ev.B] {
		d.comp.Delete(ev.B, token)
	}
	delete(d.tokenPair, token)
	d.nodeTokens[ev.A] = removeToken(d.nodeTokens[ev.A], token)
	d.nodeTokens[ev.B] = removeToken(d.nodeTokens[ev.B], token)
}

func removeToken(tokens []string, token string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if t != token {
			out = append(out, t)
		}
	}
	return out
}

// checkCancelled observes the governing context and, on first cancellation,
// drops the feed subscription. Re-observing an already-cancelled context is
// a no-op, matching the "signalled at most once" contract.
func (d *Graph) checkCancelled() bool {
	if d.cancelled {
		return true
	}
	if d.ctx.Err() != nil {
		d.cancelled = true
		if d.unsubscribe != nil {
			d.unsubscribe()
		}
	}
	return d.cancelled
}

// AddDivision places a block on at. Returns false if at is already blocked
// or the Division Graph has been cancelled.
func (d *Graph) AddDivision(at string) bool {
	if d.checkCancelled() || d.blocked[at] {
		return false
	}
	d.blocked[at] = true
	for _, tok := range d.nodeTokens[at] {
		d.comp.Delete(at, tok)
	}
	return true
}

// DeleteDivision removes a block from at. Returns false if at was not
// blocked or the Division Graph has been cancelled.
func (d *Graph) DeleteDivision(at string) bool {
	if d.checkCancelled() || !d.blocked[at] {
		return false
	}
	d.blocked[at] = false
	for _, tok := range d.nodeTokens[at] {
		d.comp.Add(at, tok)
	}
	return true
}

// LookupDivisionByEdge returns every edge endpoint pair sharing {a,b}'s
// division-component, including {a,b} itself. Returns nil if {a,b} has no
// edge, or the Division Graph has been cancelled.
func (d *Graph) LookupDivisionByEdge(a, b string) [][2]string {
	if d.checkCancelled() {
		return nil
	}
	token := pairToken(a, b)
	if _, ok := d.tokenPair[token]; !ok {
		return nil
	}

	shared := d.comp.SharedWith(token)
	out := make([][2]string, 0, len(shared))
	for _, k := range shared {
		if pair, ok := d.tokenPair[k]; ok {
			out = append(out, pair)
		}
	}
	return out
}
