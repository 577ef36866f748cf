// Package derive computes presentation values from the journal: a baby's
// age, time since the last activity of a type, relative date labels and the
// per-type statistics views.
//
// Every function is pure and recomputed on read. Nothing here is cached or
// persisted.
package derive
