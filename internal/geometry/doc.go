// Package geometry provides the polygon tests used to lay OCR fragments out
// on a page.
//
// # Coordinate System
//
// Coordinates follow the image convention used by OCR engines:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Negative coordinates are accepted; OCR engines occasionally report vertices
// slightly outside the page for text touching the border.
//
// # Column Test
//
// A "column" is a vertical line at a given X. A polygon straddles the column
// when it has vertices on both sides of it (or on it). This is a crossing test,
// not a containment test: a fragment lying entirely left or right of the line
// is excluded, a fragment whose extent reaches the line is included.
package geometry
