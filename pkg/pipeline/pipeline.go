// Package pipeline runs one extraction-and-merge pass: locate the
// division's source documents, parse them, and merge the results with
// the previously persisted snapshot.
package pipeline

import (
	"log"
	"time"

	"github.com/germanium324/jpa-ranking/internal/config"
	"github.com/germanium324/jpa-ranking/pkg/models"
	"github.com/germanium324/jpa-ranking/pkg/parser"
	"github.com/germanium324/jpa-ranking/pkg/scraper"
	"github.com/germanium324/jpa-ranking/pkg/snapshot"
)

// Pipeline holds the configuration and collaborators for one run.
// The fetch functions are injectable so runs can be driven from
// canned documents in tests.
type Pipeline struct {
	Config *config.Config
	Store  *snapshot.Store

	FetchPage   func(url string) (string, error)
	FetchPDF    func(url string) ([]byte, error)
	FetchReport func(url string) (string, error)

	// ExtractPages turns fetched PDF bytes into per-page text.
	ExtractPages func(data []byte) ([]string, error)

	Now func() time.Time
}

// New wires a pipeline with live HTTP fetchers. The rating report gets
// its own client because its timeout is configured separately.
func New(cfg *config.Config) *Pipeline {
	pageClient := scraper.NewClient(cfg.HTTPTimeout)
	reportClient := scraper.NewClient(cfg.RatingTimeout)
	return &Pipeline{
		Config:       cfg,
		Store:        &snapshot.Store{Path: cfg.SnapshotPath},
		FetchPage:    pageClient.FetchURL,
		FetchPDF:     pageClient.FetchBytes,
		FetchReport:  reportClient.FetchURL,
		ExtractPages: parser.ExtractPageTexts,
		Now:          time.Now,
	}
}

// Run executes one full pipeline pass and persists the result. Every
// source failure is downgraded to "no data from this source"; the only
// error surfaced is a failure to write the snapshot.
func (p *Pipeline) Run() (models.Snapshot, error) {
	snap := p.Store.Load()
	now := p.Now()
	snap.LastChecked = models.FormatTime(now)
	snap.LastCheckedSource = p.Config.StandingsURL()

	anchors := p.divisionAnchors()
	locator := &scraper.Locator{
		BaseURL:      p.Config.BaseURL,
		DivisionCode: p.Config.DivisionCode,
		Anchors:      anchors,
	}

	var standingsURL, individualURL, rosterURL string
	if len(anchors) > 0 {
		standingsURL = locator.Locate(scraper.DocStandings)
		individualURL = locator.Locate(scraper.DocIndividual)
		rosterURL = locator.Locate(scraper.DocRoster)
	}

	// Roster first: it feeds team names into everything else.
	rosterEntries := p.parseRoster(rosterURL)
	resolver := &snapshot.NameResolver{
		RosterNames: parser.RosterNames(rosterEntries),
		StaticNames: p.Config.TeamNames,
	}
	if len(rosterEntries) > 0 {
		snap.Roster = parser.GroupRosterByTeam(rosterEntries)
		snap.RosterPDF = rosterURL
	}

	// Individual stats: fresh document preferred, roster-synthesized
	// zero records as fallback, prior snapshot otherwise.
	individuals, statsFromRoster := p.mergeIndividuals(individualURL, rosterEntries, resolver)
	if individuals != nil {
		snap.Individuals = individuals
		if statsFromRoster {
			// No stats document backs these records.
			snap.IndividualsPDF = ""
		} else {
			snap.IndividualsPDF = individualURL
		}
	}

	// Ranking: fresh standings unless individuals had to be
	// synthesized from the roster, which signals the season's stats
	// are not live yet and forces the zero-point roster ranking.
	points := p.parseStandings(standingsURL)
	switch {
	case points != nil && points.Len() > 0 && !statsFromRoster:
		snap.Ranking = parser.RankTeams(points, resolver.Resolve)
		snap.LastUpdated = models.FormatTime(now)
		snap.SourcePDF = standingsURL
		log.Printf("Ranking built from standings document (%d teams)", len(snap.Ranking))
	case len(rosterEntries) > 0:
		snap.Ranking = zeroRanking(snap.Roster)
		snap.LastUpdated = models.FormatTime(now)
		log.Printf("Ranking synthesized from roster at zero points (%d teams)", len(snap.Ranking))
	default:
		log.Printf("No standings or roster this run, keeping previous ranking")
	}

	// Rating changes are re-fetched every run and filtered against the
	// merged individuals; any failure yields an empty list, never an
	// aborted run.
	snap.SLChanges = p.ratingChanges(snap.Individuals)

	if err := p.Store.Save(snap); err != nil {
		return snap, err
	}
	return snap, nil
}

// divisionAnchors fetches the standings page and extracts the target
// division's row links. Any failure yields nil.
func (p *Pipeline) divisionAnchors() []scraper.Anchor {
	page, err := p.FetchPage(p.Config.StandingsURL())
	if err != nil {
		log.Printf("Error fetching standings page: %v", err)
		return nil
	}
	return scraper.DivisionRow(page, p.Config.DivisionLabel)
}

// fetchPages downloads a PDF and flattens it to per-page text. Any
// failure yields nil.
func (p *Pipeline) fetchPages(url string) []string {
	if url == "" {
		return nil
	}
	data, err := p.FetchPDF(url)
	if err != nil {
		log.Printf("Error downloading PDF %s: %v", url, err)
		return nil
	}
	pages, err := p.ExtractPages(data)
	if err != nil {
		log.Printf("Error extracting text from PDF %s: %v", url, err)
		return nil
	}
	return pages
}

func (p *Pipeline) parseRoster(url string) []models.RosterEntry {
	pages := p.fetchPages(url)
	if pages == nil {
		return nil
	}
	return parser.ParseRoster(pages, p.Config.DivisionCode)
}

func (p *Pipeline) parseStandings(url string) *parser.OrderedPoints {
	pages := p.fetchPages(url)
	if pages == nil {
		return nil
	}
	return parser.ParseStandings(pages)
}

// mergeIndividuals returns the individuals list for this run and
// whether it was synthesized from the roster. A nil list means neither
// source produced data and the prior records must be kept.
func (p *Pipeline) mergeIndividuals(url string, rosterEntries []models.RosterEntry, resolver *snapshot.NameResolver) ([]models.PlayerRecord, bool) {
	var individuals []models.PlayerRecord
	if pages := p.fetchPages(url); pages != nil {
		individuals = parser.ParseIndividualStats(
			pages, p.Config.DivisionCode,
			parser.DedupPolicy(p.Config.IndividualDedup),
			resolver.Resolve)
	}
	if len(individuals) > 0 {
		return individuals, false
	}
	if len(rosterEntries) > 0 {
		log.Printf("Individual stats empty, synthesizing %d records from roster", len(rosterEntries))
		return individualsFromRoster(rosterEntries), true
	}
	return nil, false
}

// individualsFromRoster builds one all-zero PlayerRecord per roster
// entry. The zeroed statistics are the sentinel for "known member,
// season stats not yet available".
func individualsFromRoster(entries []models.RosterEntry) []models.PlayerRecord {
	records := make([]models.PlayerRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, models.PlayerRecord{
			TeamName:      e.TeamName,
			PlayerName:    e.PlayerName,
			PlayerNumber:  e.PlayerNumber,
			Gender:        e.Gender,
			SkillLevel:    e.SkillLevel,
			Wins:          "0/0",
			AveragePoints: 0,
			PointsRate:    "0%",
		})
	}
	return records
}

// zeroRanking synthesizes a zero-point ranking entry per roster team.
func zeroRanking(teams []models.RosterTeam) []models.TeamRecord {
	ranking := make([]models.TeamRecord, 0, len(teams))
	for _, t := range teams {
		ranking = append(ranking, models.TeamRecord{
			TeamName: t.TeamName,
			TeamID:   t.TeamID,
			Points:   0,
		})
	}
	return ranking
}

// ratingChanges fetches the league-wide rating report and filters it
// to the division's current members.
func (p *Pipeline) ratingChanges(individuals []models.PlayerRecord) []models.RatingChange {
	if p.Config.RatingReportURL == "" {
		return []models.RatingChange{}
	}
	html, err := p.FetchReport(p.Config.RatingReportURL)
	if err != nil {
		log.Printf("Error fetching rating report: %v", err)
		return []models.RatingChange{}
	}
	changes, err := parser.ParseRatingChanges(html)
	if err != nil {
		log.Printf("Error parsing rating report: %v", err)
		return []models.RatingChange{}
	}
	members := make(map[string]bool, len(individuals))
	for _, rec := range individuals {
		members[rec.PlayerNumber] = true
	}
	filtered := parser.FilterRatingChanges(changes, members)
	log.Printf("Rating report: %d changes, %d in division", len(changes), len(filtered))
	return filtered
}
