// Package extract pulls player ranking, scores and turn order out of an OCR'd
// end-of-game screenshot.
//
// Each field lives in a vertical column whose horizontal position varies a
// little between devices, so every field has a band of candidate column
// positions. All positions in the band are scanned and the scan yielding the
// most usable entries wins:
//
//  1. Scan the column and keep usable entries (roster matches for ranking and
//     order, purely numeric strings for scores).
//  2. Skip the position if nothing is left.
//  3. Ranking and order only: if the first match appears again later, drop
//     one occurrence of it. Game titles like "6bro's game" OCR as an extra
//     early match of the host's id.
//  4. Keep the result if it is strictly longer than the best so far, so ties
//     go to the earlier position in the band.
//
// Fields are computed on first access and cached; a Result never rescans.
// Extraction never fails: an empty slice means the field could not be found.
package extract
