// Package scraper provides functionality to fetch league pages and
// documents and to navigate the standings page markup
package scraper

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Anchor is one (text, href) link pair from a standings table row.
type Anchor struct {
	Text string
	Href string
}

// Client fetches pages and documents from the league site.
type Client struct {
	http *http.Client
}

// NewClient returns a client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// FetchURL downloads the content from a URL and returns it as a string
func (c *Client) FetchURL(url string) (string, error) {
	body, err := c.FetchBytes(url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchBytes downloads the raw content of a URL (used for PDFs)
func (c *Client) FetchBytes(url string) ([]byte, error) {
	log.Printf("Fetching URL: %s", url)

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("error fetching URL: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("HTTP Status: %d (%s)", resp.StatusCode, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 status code: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	return body, nil
}

// ResolveURL makes an href absolute by prefixing the base URL. Hrefs
// that already carry a scheme are returned unchanged.
func ResolveURL(baseURL, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base := strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return base + href
}

// DivisionRow finds the table row whose text contains an exact match
// of the division label and returns the anchors within it. A missing
// label or row yields nil, which callers treat as "division not
// published", never as an error.
func DivisionRow(htmlContent, divisionLabel string) []Anchor {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		log.Printf("Error parsing standings page HTML: %v", err)
		return nil
	}

	var row *goquery.Selection
	doc.Find("td, th, a, span").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) != divisionLabel {
			return true
		}
		if tr := s.Closest("tr"); tr.Length() > 0 {
			row = tr
			return false
		}
		return true
	})
	if row == nil {
		log.Printf("Division label %q not found in standings page", divisionLabel)
		return nil
	}

	var anchors []Anchor
	row.Find("a").Each(func(i int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		anchors = append(anchors, Anchor{
			Text: strings.TrimSpace(a.Text()),
			Href: href,
		})
	})

	log.Printf("Division row for %q has %d anchors", divisionLabel, len(anchors))
	return anchors
}
