package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainName(teamID string) string { return "Team No." + teamID }

func TestParseIndividualStats(t *testing.T) {
	page := "Individual Statistics\n" +
		"Taro Yamada 12345 4 M 02810 10 6 45 3.5 55.6%\n" +
		"Hanako Sato 67890 5 F 02801 8 4 30 2.5 40.0\n" +
		"garbled line without the layout\n"

	records := ParseIndividualStats([]string{page}, "028", DedupKeepAll, plainName)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Taro Yamada", first.PlayerName)
	assert.Equal(t, "12345", first.PlayerNumber)
	assert.Equal(t, 4, first.SkillLevel)
	assert.Equal(t, GenderMale, first.Gender)
	assert.Equal(t, "Team No.10", first.TeamName)
	assert.Equal(t, "6/10", first.Wins)
	assert.Equal(t, 3.5, first.AveragePoints)
	assert.Equal(t, "55.6%", first.PointsRate)

	second := records[1]
	assert.Equal(t, GenderFemale, second.Gender)
	assert.Equal(t, "Team No.1", second.TeamName)
	assert.Equal(t, "40.0%", second.PointsRate)
}

func TestParseIndividualStatsGenderPassthrough(t *testing.T) {
	page := "Some Player 111 3 X 02802 1 0 2 1.0 10.0%\n"
	records := ParseIndividualStats([]string{page}, "028", DedupKeepAll, plainName)
	require.Len(t, records, 1)
	assert.Equal(t, "X", records[0].Gender)
}

func TestParseIndividualStatsDedupPolicies(t *testing.T) {
	pageOne := "Taro Yamada 12345 4 M 02810 10 6 45 3.5 55.6%\n"
	pageTwo := "Taro Yamada 12345 4 M 02810 12 7 50 3.6 56.0%\n"

	keepAll := ParseIndividualStats([]string{pageOne, pageTwo}, "028", DedupKeepAll, plainName)
	assert.Len(t, keepAll, 2, "keep-all keeps every occurrence")

	firstWins := ParseIndividualStats([]string{pageOne, pageTwo}, "028", DedupFirstWins, plainName)
	require.Len(t, firstWins, 1)
	assert.Equal(t, "6/10", firstWins[0].Wins, "first occurrence wins")
}

func TestParseIndividualStatsWrongDivisionDropped(t *testing.T) {
	page := "Taro Yamada 12345 4 M 02710 10 6 45 3.5 55.6%\n"
	records := ParseIndividualStats([]string{page}, "028", DedupKeepAll, plainName)
	assert.Empty(t, records)
}
