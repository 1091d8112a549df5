package scraper

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Document type markers used in scoresheet PDF filenames.
const (
	DocStandings  = "S"
	DocIndividual = "P"
	DocRoster     = "R"
)

// Locator selects the most recent source document of each type from
// the division row's anchors.
type Locator struct {
	BaseURL      string
	DivisionCode string
	Anchors      []Anchor
}

// Locate returns the absolute URL of the numerically latest document
// of the given type, or "" when no candidate matches. For the
// standings type only, two fallbacks apply in order: any href
// containing the type+division substring, then the row's second anchor
// if it points at a PDF.
func (l *Locator) Locate(typeChar string) string {
	// <type><division><digits>.pdf as the filename component,
	// case-insensitive, numeric suffix captured for ordering.
	re := regexp.MustCompile(`(?i)(?:^|/)` + regexp.QuoteMeta(typeChar+l.DivisionCode) + `(\d+)\.pdf$`)

	best := ""
	bestSuffix := -1
	for _, a := range l.Anchors {
		m := re.FindStringSubmatch(a.Href)
		if m == nil {
			continue
		}
		suffix, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if suffix > bestSuffix {
			bestSuffix = suffix
			best = ResolveURL(l.BaseURL, a.Href)
		}
	}
	if best != "" {
		log.Printf("Located %s document (suffix %d): %s", typeChar, bestSuffix, best)
		return best
	}

	if typeChar != DocStandings {
		log.Printf("No %s document in division row", typeChar)
		return ""
	}

	// Fallback: any href mentioning the type+division pair at all.
	needle := strings.ToLower(typeChar + l.DivisionCode)
	for _, a := range l.Anchors {
		if strings.Contains(strings.ToLower(a.Href), needle) {
			url := ResolveURL(l.BaseURL, a.Href)
			log.Printf("Located %s document via substring fallback: %s", typeChar, url)
			return url
		}
	}

	// Last resort: historically the second link in the row has been
	// the scoresheet PDF.
	if len(l.Anchors) >= 2 {
		href := l.Anchors[1].Href
		if strings.HasSuffix(strings.ToLower(href), ".pdf") {
			url := ResolveURL(l.BaseURL, href)
			log.Printf("Located %s document via second-anchor fallback: %s", typeChar, url)
			return url
		}
	}

	log.Printf("No %s document in division row", typeChar)
	return ""
}
