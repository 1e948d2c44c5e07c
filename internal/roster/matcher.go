package roster

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/unicode/norm"
)

// DefaultCutoff is the minimum similarity ratio for a roster entry to match.
const DefaultCutoff = 0.6

// Matcher finds the closest roster entry for a piece of OCR text.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	players []string
	runes   [][]string
	cutoff  float64
}

// NewMatcher returns a matcher over players. A cutoff outside (0, 1] falls
// back to DefaultCutoff.
func NewMatcher(players []string, cutoff float64) *Matcher {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	m := &Matcher{
		players: append([]string(nil), players...),
		runes:   make([][]string, len(players)),
		cutoff:  cutoff,
	}
	for i, p := range players {
		m.runes[i] = splitRunes(p)
	}
	return m
}

// Players returns the roster in configuration order.
func (m *Matcher) Players() []string {
	return append([]string(nil), m.players...)
}

// Cutoff returns the similarity threshold in use.
func (m *Matcher) Cutoff() float64 {
	return m.cutoff
}

// similarity returns the difflib ratio between text and player.
func similarity(text, player string) float64 {
	sm := difflib.NewMatcher(splitRunes(player), splitRunes(normalize(text)))
	return sm.Ratio()
}

// BestMatch returns the roster entry closest to text, or false when no entry
// reaches the cutoff.
func (m *Matcher) BestMatch(text string) (string, bool) {
	candidate := splitRunes(normalize(text))

	best := ""
	bestScore := -1.0
	sm := difflib.NewMatcher(nil, candidate)
	for i, player := range m.players {
		sm.SetSeq1(m.runes[i])
		// Upper bounds first; they are cheap and prune most entries.
		if sm.RealQuickRatio() < m.cutoff || sm.QuickRatio() < m.cutoff {
			continue
		}
		score := sm.Ratio()
		if score < m.cutoff {
			continue
		}
		if score > bestScore || (score == bestScore && player > best) {
			best = player
			bestScore = score
		}
	}

	if bestScore < 0 {
		return "", false
	}
	return best, true
}

// MatchAll maps BestMatch over texts, dropping texts without a match and
// keeping input order.
func (m *Matcher) MatchAll(texts []string) []string {
	matched := make([]string, 0, len(texts))
	for _, text := range texts {
		if player, ok := m.BestMatch(text); ok {
			matched = append(matched, player)
		}
	}
	return matched
}

func normalize(s string) string {
	return norm.NFKC.String(s)
}

// splitRunes turns s into one element per rune, the sequence type difflib
// compares.
func splitRunes(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "")
}
