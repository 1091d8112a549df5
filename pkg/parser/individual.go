package parser

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/germanium324/jpa-ranking/pkg/models"
)

// DedupPolicy controls how repeated member numbers across pages of one
// individual-stats document are handled. The source PDFs have not been
// observed to repeat a player, so the default keeps every occurrence.
type DedupPolicy string

const (
	DedupKeepAll   DedupPolicy = "keep-all"
	DedupFirstWins DedupPolicy = "first-wins"
)

// Gender markers used in player records.
const (
	GenderMale    = "M"
	GenderFemale  = "F"
	GenderUnknown = "-"
)

// individualLinePattern matches one full personal-statistics line:
// name, member number, skill level, gender, team code, matches played,
// matches won, points, average, points rate (trailing % optional).
func individualLinePattern(divisionCode string) *regexp.Regexp {
	return regexp.MustCompile(
		`^(.+?)\s+(\d+)\s+(\d+)\s+([A-Za-z]+)\s+(` + regexp.QuoteMeta(divisionCode) + `\d{2})` +
			`\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)%?$`)
}

// ParseIndividualStats extracts one PlayerRecord per line matching the
// personal-statistics layout, in document order. Lines that do not
// match the full layout contribute nothing. Team display names are
// resolved by the supplied function from the derived team ID.
func ParseIndividualStats(pages []string, divisionCode string, policy DedupPolicy, nameFor func(teamID string) string) []models.PlayerRecord {
	lineRe := individualLinePattern(divisionCode)

	var records []models.PlayerRecord
	seen := make(map[string]bool)

	for _, text := range pages {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			m := lineRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			memberNum := m[2]
			if policy == DedupFirstWins && seen[memberNum] {
				continue
			}
			seen[memberNum] = true

			skillLevel, _ := strconv.Atoi(m[3])
			played, _ := strconv.Atoi(m[6])
			won, _ := strconv.Atoi(m[7])
			average, _ := strconv.ParseFloat(m[9], 64)

			teamID := DeriveTeamID(m[5], divisionCode)
			records = append(records, models.PlayerRecord{
				TeamName:      nameFor(teamID),
				PlayerName:    strings.TrimSpace(m[1]),
				PlayerNumber:  memberNum,
				Gender:        normalizeGender(m[4]),
				SkillLevel:    skillLevel,
				Wins:          fmt.Sprintf("%d/%d", won, played),
				AveragePoints: average,
				PointsRate:    m[10] + "%",
			})
		}
	}

	log.Printf("Individual stats parse produced %d player records", len(records))
	return records
}

// normalizeGender maps the document's gender letter to the canonical
// marker; unrecognized values pass through verbatim.
func normalizeGender(g string) string {
	switch strings.ToUpper(g) {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return g
	}
}
