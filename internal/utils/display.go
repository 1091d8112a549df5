// Package utils provides utility functions for the ranking updater
package utils

import (
	"fmt"
	"strings"

	"github.com/germanium324/jpa-ranking/pkg/models"
)

// DisplaySnapshot prints a run summary: the division ranking, roster
// sizes, and the number of skill-level changes in the division.
func DisplaySnapshot(snap *models.Snapshot) {
	fmt.Printf("\n=========== DIVISION RANKING ===========\n")
	fmt.Printf("%-4s | %-4s | %-24s | %-6s\n", "Rank", "ID", "Team", "Points")
	fmt.Printf("%-4s | %-4s | %-24s | %-6s\n",
		strings.Repeat("-", 4), strings.Repeat("-", 4),
		strings.Repeat("-", 24), strings.Repeat("-", 6))
	for i, team := range snap.Ranking {
		fmt.Printf("%4d | %-4s | %-24s | %6d\n", i+1, team.TeamID, team.TeamName, team.Points)
	}

	if len(snap.Roster) > 0 {
		fmt.Printf("\nRosters: %d teams\n", len(snap.Roster))
		for _, team := range snap.Roster {
			fmt.Printf("  %-24s %d players\n", team.TeamName, len(team.Players))
		}
	}

	fmt.Printf("\nIndividual records: %d\n", len(snap.Individuals))
	fmt.Printf("Skill-level changes: %d\n", len(snap.SLChanges))
	if snap.LastUpdated != "" {
		fmt.Printf("Last updated: %s\n", snap.LastUpdated)
	}
	fmt.Printf("Last checked: %s\n", snap.LastChecked)
	fmt.Println(strings.Repeat("=", 40))
}
