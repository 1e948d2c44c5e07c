package extract

import (
	"sync"
	"unicode"

	"github.com/ironsheep/game-result-mcp/internal/document"
	"github.com/ironsheep/game-result-mcp/internal/roster"
)

// field is a compute-once slot for one extracted field.
type field struct {
	once  sync.Once
	value []string
}

func (f *field) get(compute func() []string) []string {
	f.once.Do(func() {
		f.value = compute()
	})
	return append([]string{}, f.value...)
}

// Result extracts and caches the fields of one Document.
// Its accessors are safe for concurrent use.
type Result struct {
	doc     *document.Document
	cfg     Config
	matcher *roster.Matcher

	// scan is the column scanner, swapped out by tests to count scans.
	scan func(relativePosition float64) []string

	ranking field
	score   field
	order   field
}

// New returns a Result for doc. Nothing is scanned until a field is requested.
func New(doc *document.Document, cfg Config) *Result {
	return &Result{
		doc:     doc,
		cfg:     cfg,
		matcher: roster.NewMatcher(cfg.Roster, cfg.Cutoff),
		scan:    doc.ScanColumn,
	}
}

// Matcher returns the roster matcher used for ranking and order.
func (r *Result) Matcher() *roster.Matcher {
	return r.matcher
}

// Document returns the document the result was built from.
func (r *Result) Document() *document.Document {
	return r.doc
}

// PlayerRanking returns the player ids in final ranking order.
func (r *Result) PlayerRanking() []string {
	return r.ranking.get(func() []string {
		return r.longestScan(r.cfg.RankingBand, r.matchPlayers)
	})
}

// PlayerScore returns the final scores, top to bottom, as digit strings.
func (r *Result) PlayerScore() []string {
	return r.score.get(func() []string {
		return r.longestScan(r.cfg.ScoreBand, numericOnly)
	})
}

// PlayerOrder returns the player ids in turn order.
func (r *Result) PlayerOrder() []string {
	return r.order.get(func() []string {
		return r.longestScan(r.cfg.OrderBand, r.matchPlayers)
	})
}

// longestScan scans every position in band, converts each scan with keep and
// returns the first strictly longest non-empty candidate.
func (r *Result) longestScan(band []float64, keep func([]string) []string) []string {
	best := []string{}
	for _, pos := range band {
		candidate := keep(r.scan(pos))
		if len(candidate) == 0 {
			continue
		}
		if len(candidate) > len(best) {
			best = candidate
		}
	}
	return best
}

func (r *Result) matchPlayers(texts []string) []string {
	return dropRepeatedFirst(r.matcher.MatchAll(texts))
}

// dropRepeatedFirst removes the first element when it occurs again later in
// the list. Only the first element is considered.
func dropRepeatedFirst(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	for _, id := range ids[1:] {
		if id == ids[0] {
			return ids[1:]
		}
	}
	return ids
}

// numericOnly keeps the texts made only of decimal digits.
func numericOnly(texts []string) []string {
	kept := make([]string, 0, len(texts))
	for _, text := range texts {
		if isDigits(text) {
			kept = append(kept, text)
		}
	}
	return kept
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
