// Package cix emits drill-test programs in the Biesse CIX (CID3) text format.
//
// A CIX document is a sequence of BEGIN/END blocks of tab-indented key/value
// lines: one ID block, one MAINDATA block with the panel dimensions, then
// repeatable MACRO blocks distinguished by a NAME parameter. This generator
// emits GEOTEXT/ROUTG/ENDPATH macro triples for the per-row engraved labels
// and one BG macro per drilled hole.
//
// The controller is strict about field order, so every block writes its
// exhaustive parameter list in a fixed sequence. Two runs over identical
// inputs produce byte-identical text.
package cix
