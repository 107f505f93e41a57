// Package component implements a dynamic undirected connectivity service
// over an abstract universe of string keys: Add/Delete record or remove a
// pairwise link, and SharedWith answers which other keys are reachable from
// a given one without recomputing connectivity from scratch.
//
// Keys with no recorded pairs are isolated and treated as singleton groups
// of virtual size one. The package has no notion of nodes, edges, or
// tracks — it is the same abstract connectivity primitive the division
// package composes with an edge-as-node encoding to get edge-level
// reachability out of this node-level one.
package component
