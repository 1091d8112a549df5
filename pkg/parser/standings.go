package parser

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/germanium324/jpa-ranking/pkg/models"
)

// OrderedPoints is an insertion-ordered team-number -> points map with
// a first-write-wins duplicate policy. Standings documents repeat team
// columns across pages; only the first occurrence of a team counts.
type OrderedPoints struct {
	order  []string
	points map[string]int
}

// NewOrderedPoints returns an empty ordered points map.
func NewOrderedPoints() *OrderedPoints {
	return &OrderedPoints{points: make(map[string]int)}
}

// Put records points for a team number unless the team was already
// seen. Returns true when the value was stored.
func (o *OrderedPoints) Put(teamNum string, points int) bool {
	if _, seen := o.points[teamNum]; seen {
		return false
	}
	o.order = append(o.order, teamNum)
	o.points[teamNum] = points
	return true
}

// Len reports the number of teams recorded.
func (o *OrderedPoints) Len() int { return len(o.order) }

// Get returns the recorded points for a team number.
func (o *OrderedPoints) Get(teamNum string) (int, bool) {
	p, ok := o.points[teamNum]
	return p, ok
}

// Teams returns the team numbers in first-seen order.
func (o *OrderedPoints) Teams() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}

// ParseStandings extracts the team-number/cumulative-points pairs from
// the page texts of a standings document. Only pages containing the
// "Total:" marker are considered. The team-number line sits between a
// "Team #" label (trailing colon optional) and the "Total:" label; the
// points line runs from "Total:" to its newline. A page contributes
// only when both lines tokenize to the same non-zero count.
func ParseStandings(pages []string) *OrderedPoints {
	result := NewOrderedPoints()

	for _, text := range pages {
		if !strings.Contains(text, "Total:") {
			continue
		}

		teamStart := strings.Index(text, "Team #:")
		if teamStart == -1 {
			teamStart = strings.Index(text, "Team #")
		}
		totalStart := strings.Index(text, "Total:")
		if teamStart == -1 || totalStart == -1 || teamStart > totalStart {
			continue
		}

		teamLine := firstLine(text[teamStart:totalStart])
		pointsLine := firstLine(text[totalStart:])

		teamNums := numericTokens(stripLabel(teamLine, "Team #"))
		pointTokens := strings.Fields(stripLabel(pointsLine, "Total:"))

		if len(teamNums) == 0 || len(teamNums) != len(pointTokens) {
			continue
		}

		for i, teamNum := range teamNums {
			points, err := strconv.Atoi(pointTokens[i])
			if err != nil {
				// Non-numeric point token, skip just this pair.
				continue
			}
			result.Put(teamNum, points)
		}
	}

	log.Printf("Standings parse produced %d team totals", result.Len())
	return result
}

// RankTeams materializes an ordered points map into a ranking sorted
// by points descending. Ties keep first-seen order. Team names are
// resolved by the supplied function.
func RankTeams(points *OrderedPoints, nameFor func(teamID string) string) []models.TeamRecord {
	ranking := make([]models.TeamRecord, 0, points.Len())
	for _, teamNum := range points.Teams() {
		p, _ := points.Get(teamNum)
		ranking = append(ranking, models.TeamRecord{
			TeamName: nameFor(teamNum),
			TeamID:   teamNum,
			Points:   p,
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Points > ranking[j].Points
	})
	return ranking
}

// firstLine returns s up to (not including) its first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i != -1 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// stripLabel drops everything up to and including the last occurrence
// of label, plus a trailing colon if present.
func stripLabel(line, label string) string {
	if i := strings.LastIndex(line, label); i != -1 {
		line = line[i+len(label):]
	}
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, ":")
	return strings.TrimSpace(line)
}

// numericTokens splits a line on whitespace keeping digit-only tokens.
func numericTokens(line string) []string {
	var nums []string
	for _, tok := range strings.Fields(line) {
		if isDigits(tok) {
			nums = append(nums, tok)
		}
	}
	return nums
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
