// Package fuzzy implements the edit-distance matching behind catalog search
// and the resolution of typed names and titles into record ids.
//
// Everything is a linear scan over the candidates in the order supplied by
// the caller. Resolution returns the first candidate that satisfies the
// distance threshold rather than the closest one; Closest exists for hints
// only.
package fuzzy
