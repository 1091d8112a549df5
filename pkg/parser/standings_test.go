package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standingsPage = "Division Standings\nTeam #: 1 2 3\nTotal: 50 70 30\nsomething else\n"

func TestParseStandings(t *testing.T) {
	points := ParseStandings([]string{standingsPage})
	require.Equal(t, 3, points.Len())

	p, ok := points.Get("1")
	require.True(t, ok)
	assert.Equal(t, 50, p)
	p, _ = points.Get("2")
	assert.Equal(t, 70, p)
	p, _ = points.Get("3")
	assert.Equal(t, 30, p)

	assert.Equal(t, []string{"1", "2", "3"}, points.Teams())
}

func TestParseStandingsLabelWithoutColon(t *testing.T) {
	page := "Team # 4 5\nTotal: 12 8\n"
	points := ParseStandings([]string{page})
	require.Equal(t, 2, points.Len())
	p, _ := points.Get("4")
	assert.Equal(t, 12, p)
}

func TestParseStandingsIgnoresPagesWithoutTotalMarker(t *testing.T) {
	page := "Team #: 1 2\nnothing here\n"
	assert.Equal(t, 0, ParseStandings([]string{page}).Len())
}

func TestParseStandingsTokenCountMismatch(t *testing.T) {
	page := "Team #: 1 2 3\nTotal: 50 70\n"
	assert.Equal(t, 0, ParseStandings([]string{page}).Len())
}

func TestParseStandingsFirstSeenWins(t *testing.T) {
	first := "Team #: 1 2\nTotal: 50 70\n"
	second := "Team #: 2 3\nTotal: 99 30\n"
	points := ParseStandings([]string{first, second})

	require.Equal(t, 3, points.Len())
	p, _ := points.Get("2")
	assert.Equal(t, 70, p, "later duplicate must not overwrite")
	p, _ = points.Get("3")
	assert.Equal(t, 30, p)
}

func TestParseStandingsSkipsNonNumericPointToken(t *testing.T) {
	page := "Team #: 1 2\nTotal: 50 n/a\n"
	points := ParseStandings([]string{page})

	require.Equal(t, 1, points.Len(), "a bad token skips only its pair")
	p, _ := points.Get("1")
	assert.Equal(t, 50, p)
}

func TestParseStandingsIdempotent(t *testing.T) {
	a := ParseStandings([]string{standingsPage})
	b := ParseStandings([]string{standingsPage})
	assert.Equal(t, a.Teams(), b.Teams())
	for _, team := range a.Teams() {
		pa, _ := a.Get(team)
		pb, _ := b.Get(team)
		assert.Equal(t, pa, pb)
	}
}

func TestRankTeamsSortsDescendingTiesStable(t *testing.T) {
	points := NewOrderedPoints()
	points.Put("1", 50)
	points.Put("2", 70)
	points.Put("3", 50)

	ranking := RankTeams(points, func(id string) string { return "Team No." + id })
	require.Len(t, ranking, 3)
	assert.Equal(t, "2", ranking[0].TeamID)
	assert.Equal(t, 70, ranking[0].Points)
	// Teams 1 and 3 tie at 50, first-seen order preserved.
	assert.Equal(t, "1", ranking[1].TeamID)
	assert.Equal(t, "3", ranking[2].TeamID)
	assert.Equal(t, "Team No.2", ranking[0].TeamName)
}

func TestOrderedPointsDuplicatePolicy(t *testing.T) {
	points := NewOrderedPoints()
	assert.True(t, points.Put("7", 10))
	assert.False(t, points.Put("7", 99))
	p, _ := points.Get("7")
	assert.Equal(t, 10, p)
}
