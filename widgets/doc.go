// Package widgets contains dumb render primitives shared by the list and
// grid hosts.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, clipping, columns, popup card)
//
// Not allowed here:
// - key handling, selection state, or anything that talks to a data source
package widgets
