package extract

import "github.com/ironsheep/game-result-mcp/internal/roster"

// BandSteps is the number of candidate positions in each default band.
const BandSteps = 11

// DefaultPlayers is the roster of known player ids.
var DefaultPlayers = []string{"6bro", "Neil.W", "chiang831", "pg30123", "stan619", "cookieben", "DHYellow"}

// Default bands of relative column positions, tuned to the Through the Ages
// score screen.
var (
	DefaultRankingBand = Linspace(0.45, 0.55, BandSteps)
	DefaultScoreBand   = Linspace(0.55, 0.65, BandSteps)
	DefaultOrderBand   = Linspace(0.87, 0.97, BandSteps)
)

// Config is the static configuration of an extraction.
type Config struct {
	Roster      []string
	RankingBand []float64
	ScoreBand   []float64
	OrderBand   []float64

	// Cutoff is the roster similarity threshold. Zero means roster.DefaultCutoff.
	Cutoff float64
}

// DefaultConfig returns a Config holding copies of the package defaults.
func DefaultConfig() Config {
	return Config{
		Roster:      append([]string(nil), DefaultPlayers...),
		RankingBand: append([]float64(nil), DefaultRankingBand...),
		ScoreBand:   append([]float64(nil), DefaultScoreBand...),
		OrderBand:   append([]float64(nil), DefaultOrderBand...),
		Cutoff:      roster.DefaultCutoff,
	}
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n == 1 yields just lo; n < 1 yields an empty slice.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 1 {
		return []float64{}
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
