package parser

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/germanium324/jpa-ranking/pkg/models"
)

// ParseRatingChanges extracts skill-level change rows from the
// league-wide rating report HTML. The first table row is the header;
// data rows carry player name, member number, old skill level, old
// date, new skill level and new date in that order. Rows without
// enough cells are dropped.
func ParseRatingChanges(htmlContent string) ([]models.RatingChange, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	var changes []models.RatingChange
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		var cells []string
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) < 6 {
			return
		}
		changes = append(changes, models.RatingChange{
			PlayerName:    cells[0],
			MemberNumber:  cells[1],
			OldSkillLevel: cells[2],
			OldDate:       cells[3],
			NewSkillLevel: cells[4],
			NewDate:       cells[5],
		})
	})

	log.Printf("Rating report parse produced %d changes", len(changes))
	return changes, nil
}

// FilterRatingChanges keeps only the changes whose member number is in
// the given set, preserving report order.
func FilterRatingChanges(changes []models.RatingChange, members map[string]bool) []models.RatingChange {
	filtered := make([]models.RatingChange, 0, len(changes))
	for _, c := range changes {
		if members[c.MemberNumber] {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
