// Package models contains the data structures persisted by the ranking updater
package models

import "time"

// Timestamp layout used in the persisted snapshot. Times are always
// rendered in JST regardless of the host timezone.
const TimeLayout = "2006年01月02日 15:04 JST"

// JST is the fixed zone the league publishes in.
var JST = time.FixedZone("JST", 9*60*60)

// FormatTime renders t in the snapshot timestamp format.
func FormatTime(t time.Time) string {
	return t.In(JST).Format(TimeLayout)
}

// TeamRecord is one row of the division ranking.
type TeamRecord struct {
	TeamName string `json:"team_name"`
	TeamID   string `json:"team_id"`
	Points   int    `json:"points"`
}

// PlayerRecord holds one player's personal statistics.
// PlayerNumber is the league-wide member identifier and the join key
// for a person across documents.
type PlayerRecord struct {
	TeamName      string  `json:"team_name"`
	PlayerName    string  `json:"player_name"`
	PlayerNumber  string  `json:"player_number"`
	Gender        string  `json:"gender"`
	SkillLevel    int     `json:"skill_level"`
	Wins          string  `json:"wins"`
	AveragePoints float64 `json:"average_points"`
	PointsRate    string  `json:"points_rate"`
}

// RosterEntry is one player row from a roster document. Rosters carry
// no gender, so Gender is always the placeholder "-".
type RosterEntry struct {
	TeamID       string `json:"team_id"`
	TeamCode     string `json:"team_code"`
	TeamName     string `json:"team_name"`
	PlayerName   string `json:"player_name"`
	PlayerNumber string `json:"player_number"`
	Gender       string `json:"gender"`
	SkillLevel   int    `json:"skill_level"`
}

// RosterPlayer is the per-player summary kept inside a RosterTeam.
type RosterPlayer struct {
	PlayerName   string `json:"player_name"`
	PlayerNumber string `json:"player_number"`
	SkillLevel   int    `json:"skill_level"`
}

// RosterTeam groups roster entries under one team.
type RosterTeam struct {
	TeamID   string         `json:"team_id"`
	TeamName string         `json:"team_name"`
	Players  []RosterPlayer `json:"players"`
}

// RatingChange is one row of the league-wide skill-level change report.
type RatingChange struct {
	PlayerName    string `json:"player_name"`
	MemberNumber  string `json:"member_number"`
	OldSkillLevel string `json:"old_skill_level"`
	OldDate       string `json:"old_date"`
	NewSkillLevel string `json:"new_skill_level"`
	NewDate       string `json:"new_date"`
}

// Snapshot is the aggregate record produced by one pipeline run.
// LastChecked advances every run; LastUpdated only advances when a
// ranking was actually computed or synthesized. Empty URL/timestamp
// strings mean "not known".
type Snapshot struct {
	LastChecked       string         `json:"last_checked"`
	LastCheckedSource string         `json:"last_checked_source,omitempty"`
	LastUpdated       string         `json:"last_updated,omitempty"`
	SourcePDF         string         `json:"source_pdf,omitempty"`
	Ranking           []TeamRecord   `json:"ranking"`
	Individuals       []PlayerRecord `json:"individuals"`
	IndividualsPDF    string         `json:"individuals_pdf,omitempty"`
	SLChanges         []RatingChange `json:"sl_changes"`
	Roster            []RosterTeam   `json:"roster"`
	RosterPDF         string         `json:"roster_pdf,omitempty"`
}
