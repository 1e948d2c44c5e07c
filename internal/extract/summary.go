package extract

// Summary bundles the three extracted fields for reporting.
type Summary struct {
	Ranking []string `json:"ranking"`
	Score   []string `json:"score"`
	Order   []string `json:"order"`
}

// Standing is one row of the final ranking.
type Standing struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	// Score is empty when scores could not be paired with the ranking.
	Score string `json:"score,omitempty"`
}

// Summary returns all three fields, computing any that are still pending.
func (r *Result) Summary() Summary {
	return Summary{
		Ranking: r.PlayerRanking(),
		Score:   r.PlayerScore(),
		Order:   r.PlayerOrder(),
	}
}

// Standings pairs each ranked player with the score on the same row. Scores
// are only attached when exactly one score was found per ranked player.
func (r *Result) Standings() []Standing {
	ranking := r.PlayerRanking()
	scores := r.PlayerScore()
	paired := len(scores) == len(ranking)

	standings := make([]Standing, len(ranking))
	for i, player := range ranking {
		standings[i] = Standing{Rank: i + 1, Player: player}
		if paired {
			standings[i].Score = scores[i]
		}
	}
	return standings
}
