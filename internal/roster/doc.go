// Package roster maps noisy OCR strings onto a fixed list of known player ids.
//
// The similarity is difflib's SequenceMatcher ratio computed over runes:
//
//	ratio = 2*M / (len(a) + len(b))
//
// where M is the number of runes in matching blocks. An entry qualifies when
// its ratio is at least the matcher's cutoff (DefaultCutoff unless
// overridden). Among qualifying entries the highest ratio wins; equal ratios
// resolve to the lexicographically greater entry, so the result is fully
// deterministic.
package roster
