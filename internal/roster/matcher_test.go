package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var players = []string{"6bro", "Neil.W", "chiang831", "pg30123", "stan619", "cookieben", "DHYellow"}

func TestBestMatch_NearMisses(t *testing.T) {
	m := NewMatcher(players, DefaultCutoff)

	tests := []struct {
		text string
		want string
	}{
		{"Neil W", "Neil.W"},
		{"chang831", "chiang831"},
		{"stan619", "stan619"},
		{"6bro's", "6bro"},
		{"cookiebem", "cookieben"},
		{"DHYel1ow", "DHYellow"},
		{"pg3O123", "pg30123"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := m.BestMatch(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBestMatch_NoMatch(t *testing.T) {
	m := NewMatcher(players, DefaultCutoff)

	for _, text := range []string{"", "qqqq", "%%%%", "Through the Ages", "42"} {
		got, ok := m.BestMatch(text)
		assert.False(t, ok, "text %q matched %q", text, got)
		assert.Empty(t, got)
	}
}

func TestBestMatch_CutoffBoundary(t *testing.T) {
	m := NewMatcher([]string{"abcde"}, DefaultCutoff)

	// 3 of 5 runes shared: ratio is exactly 0.6.
	assert.InDelta(t, 0.6, similarity("abcxy", "abcde"), 1e-12)
	got, ok := m.BestMatch("abcxy")
	assert.True(t, ok)
	assert.Equal(t, "abcde", got)

	// 2 of 5 runes shared: ratio 0.4.
	_, ok = m.BestMatch("abxyz")
	assert.False(t, ok)

	strict := NewMatcher([]string{"abcde"}, 0.61)
	_, ok = strict.BestMatch("abcxy")
	assert.False(t, ok)
}

func TestBestMatch_EqualScoresPreferGreaterEntry(t *testing.T) {
	m := NewMatcher([]string{"abcx", "abcy"}, DefaultCutoff)
	got, ok := m.BestMatch("abcz")
	require.True(t, ok)
	assert.Equal(t, "abcy", got)

	reversed := NewMatcher([]string{"abcy", "abcx"}, DefaultCutoff)
	got, ok = reversed.BestMatch("abcz")
	require.True(t, ok)
	assert.Equal(t, "abcy", got)
}

func TestBestMatch_PrefersHigherScore(t *testing.T) {
	m := NewMatcher([]string{"stan600", "stan619"}, DefaultCutoff)
	got, ok := m.BestMatch("stan61")
	require.True(t, ok)
	assert.Equal(t, "stan619", got)
}

func TestBestMatch_Deterministic(t *testing.T) {
	m := NewMatcher(players, DefaultCutoff)
	first, _ := m.BestMatch("Nei1.W")
	for i := 0; i < 20; i++ {
		got, _ := m.BestMatch("Nei1.W")
		assert.Equal(t, first, got)
	}
}

func TestBestMatch_NormalizesFullWidth(t *testing.T) {
	m := NewMatcher(players, DefaultCutoff)
	got, ok := m.BestMatch("ｓｔａｎ６１９")
	require.True(t, ok)
	assert.Equal(t, "stan619", got)
}

func TestMatchAll(t *testing.T) {
	m := NewMatcher(players, DefaultCutoff)

	got := m.MatchAll([]string{"6bro", "Game", "6bro", "###", "Neil.W"})
	assert.Equal(t, []string{"6bro", "6bro", "Neil.W"}, got)

	assert.Empty(t, m.MatchAll(nil))
	assert.NotNil(t, m.MatchAll(nil))
}

func TestNewMatcher_Defaults(t *testing.T) {
	assert.Equal(t, DefaultCutoff, NewMatcher(players, 0).Cutoff())
	assert.Equal(t, DefaultCutoff, NewMatcher(players, 1.5).Cutoff())
	assert.Equal(t, 0.8, NewMatcher(players, 0.8).Cutoff())

	input := []string{"a", "b"}
	m := NewMatcher(input, DefaultCutoff)
	input[0] = "z"
	assert.Equal(t, []string{"a", "b"}, m.Players())
}

func TestMatcher_EmptyRoster(t *testing.T) {
	m := NewMatcher(nil, DefaultCutoff)
	_, ok := m.BestMatch("6bro")
	assert.False(t, ok)
	assert.Empty(t, m.MatchAll([]string{"6bro"}))
}
