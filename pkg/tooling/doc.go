// Package tooling loads CNC tool catalogs from Biesse spindle XML files.
//
// A catalog file describes which drill bit is mounted on each spindle of the
// machine. Elements named Spindle carry two attributes: Name identifies the
// spindle (e.g. "T1", "T10") and Child encodes the mounted bit (e.g.
// "D10MM70" for a 10mm bit, "D1_4IN70" for a quarter-inch bit).
//
// LoadTable parses a catalog into a Table, which supports lookup by spindle
// id, fuzzy lookup by diameter, and grouping spindles by exact diameter for
// drill-test layout.
package tooling
