package parser

import (
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/germanium324/jpa-ranking/pkg/models"
)

// teamHeader is one code/name pair from a roster team-header line.
type teamHeader struct {
	code string
	name string
}

// blockStartRe marks the start of one player block within a roster
// data line: the "N" column marker, a skill level and the separator
// star, followed by the member number and name.
var blockStartRe = regexp.MustCompile(`N\s*\d+\s+\*`)

var blockRe = regexp.MustCompile(`^N\s*(\d+)\s+\*\s*(\d+)\s+(.+)$`)

var pageHeaderRe = regexp.MustCompile(`^Page\s+\d+`)

// teamHeaderPattern matches "<division+2digit code>  <name>" where the
// name runs up to the next team code or end of line. Word boundaries
// keep the code from matching inside longer digit runs such as member
// numbers.
func teamHeaderPattern(divisionCode string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + regexp.QuoteMeta(divisionCode) + `\d{2})\b\s+([A-Za-z][A-Za-z .'&-]*)`)
}

// ParseRoster walks the page texts of a roster document line by line,
// carrying the current column -> team association across lines. A line
// with two or more team headers replaces the whole column map; a
// single-header line (unless it carries the "Host" label) resets it to
// one column. Player blocks on data lines attach to teams by column
// position; blocks beyond the known column count are dropped.
func ParseRoster(pages []string, divisionCode string) []models.RosterEntry {
	headerRe := teamHeaderPattern(divisionCode)

	var entries []models.RosterEntry
	var currentTeams []teamHeader

	for _, text := range pages {
		for _, rawLine := range strings.Split(text, "\n") {
			line := strings.TrimSpace(rawLine)
			if line == "" || isRosterNoise(line) {
				continue
			}

			headers := findTeamHeaders(headerRe, line)
			if len(headers) >= 2 {
				currentTeams = headers
				continue
			}
			if len(headers) == 1 && !strings.Contains(line, "Host") {
				currentTeams = headers
				continue
			}

			if len(currentTeams) == 0 {
				continue
			}

			for i, block := range splitPlayerBlocks(line) {
				if i >= len(currentTeams) {
					break
				}
				m := blockRe.FindStringSubmatch(block)
				if m == nil {
					continue
				}
				skillLevel, _ := strconv.Atoi(m[1])
				team := currentTeams[i]
				entries = append(entries, models.RosterEntry{
					TeamID:       DeriveTeamID(team.code, divisionCode),
					TeamCode:     team.code,
					TeamName:     strings.TrimSpace(team.name),
					PlayerName:   strings.TrimSpace(m[3]),
					PlayerNumber: m[2],
					Gender:       GenderUnknown,
					SkillLevel:   skillLevel,
				})
			}
		}
	}

	log.Printf("Roster parse produced %d entries", len(entries))
	return entries
}

// GroupRosterByTeam folds flat roster entries into per-team groups,
// sorted by team name ascending.
func GroupRosterByTeam(entries []models.RosterEntry) []models.RosterTeam {
	byID := make(map[string]*models.RosterTeam)
	var order []string

	for _, e := range entries {
		team, ok := byID[e.TeamID]
		if !ok {
			team = &models.RosterTeam{TeamID: e.TeamID, TeamName: e.TeamName}
			byID[e.TeamID] = team
			order = append(order, e.TeamID)
		}
		team.Players = append(team.Players, models.RosterPlayer{
			PlayerName:   e.PlayerName,
			PlayerNumber: e.PlayerNumber,
			SkillLevel:   e.SkillLevel,
		})
	}

	teams := make([]models.RosterTeam, 0, len(order))
	for _, id := range order {
		teams = append(teams, *byID[id])
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].TeamName < teams[j].TeamName
	})
	return teams
}

// RosterNames builds the team_id -> display name lookup for the teams
// seen in this run's roster.
func RosterNames(entries []models.RosterEntry) map[string]string {
	names := make(map[string]string)
	for _, e := range entries {
		if _, ok := names[e.TeamID]; !ok {
			names[e.TeamID] = e.TeamName
		}
	}
	return names
}

func findTeamHeaders(headerRe *regexp.Regexp, line string) []teamHeader {
	var headers []teamHeader
	for _, m := range headerRe.FindAllStringSubmatch(line, -1) {
		name := strings.TrimSpace(m[2])
		if name == "" {
			continue
		}
		headers = append(headers, teamHeader{code: m[1], name: name})
	}
	return headers
}

// splitPlayerBlocks slices a data line into per-column player blocks.
// Each block runs from one block-start marker to the next.
func splitPlayerBlocks(line string) []string {
	starts := blockStartRe.FindAllStringIndex(line, -1)
	if len(starts) == 0 {
		return nil
	}
	blocks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(line)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, strings.TrimSpace(line[loc[0]:end]))
	}
	return blocks
}

// isRosterNoise reports whether a line is one of the known non-data
// headers in roster documents.
func isRosterNoise(line string) bool {
	if strings.HasPrefix(line, "Host:") || strings.Contains(line, "SL Number") {
		return true
	}
	if pageHeaderRe.MatchString(line) {
		return true
	}
	return false
}
