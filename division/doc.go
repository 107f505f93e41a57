// Package division maintains edge-level connectivity over a track.Graph
// that respects blocked nodes ("divisions"), without mutating the track
// topology itself.
//
// It subscribes to the track graph's edge-change feed and materializes one
// surrogate token per edge, then delegates the actual reachability
// bookkeeping to a component.Graph over the union of node ids and edge
// tokens — the edge-as-node trick. Blocking a node removes its pairings to
// its incident edge-tokens from the component graph; unblocking restores
// them.
//
// A Graph is constructed against a cancellation context (WithContext); once
// that context is done, the subscription is dropped and every subsequent
// call returns an empty/false result, with no partial state observable
// thereafter.
package division
