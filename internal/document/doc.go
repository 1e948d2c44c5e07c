// Package document holds the immutable OCR page model and the column scanner.
//
// A Document is built once from the fragments an OCR source produced and is
// never modified afterwards, so everything derived from it can be cached.
//
// # Column Scanning
//
// ScanColumn takes a relative horizontal position in [0, 1], converts it to a
// pixel X using the page width, and returns the text of every fragment whose
// polygon straddles that line, ordered top to bottom. Positions outside
// [0, 1] return an empty slice rather than an error.
package document
