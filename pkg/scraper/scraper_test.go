package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	base := "http://www.poolplayers.jp"

	assert.Equal(t, "http://www.poolplayers.jp/pdf/S02801.pdf",
		ResolveURL(base, "/pdf/S02801.pdf"))
	assert.Equal(t, "http://www.poolplayers.jp/pdf/S02801.pdf",
		ResolveURL(base+"/", "/pdf/S02801.pdf"))
	assert.Equal(t, "http://www.poolplayers.jp/pdf/S02801.pdf",
		ResolveURL(base, "pdf/S02801.pdf"))

	// Already-absolute hrefs pass through untouched.
	assert.Equal(t, "https://elsewhere.example/x.pdf",
		ResolveURL(base, "https://elsewhere.example/x.pdf"))
}

const standingsPageHTML = `<html><body><table>
<tr><td>027 OPEN (MON)</td><td><a href="/pdf/S02705.pdf">scores</a></td></tr>
<tr>
  <td>028 COLLEGE (TUE)</td>
  <td><a href="/standings/028.html">standings</a></td>
  <td><a href="/pdf/S02805.pdf">scores</a></td>
  <td><a href="/pdf/P02805.pdf">stats</a></td>
</tr>
</table></body></html>`

func TestDivisionRow(t *testing.T) {
	anchors := DivisionRow(standingsPageHTML, "028 COLLEGE (TUE)")
	require.Len(t, anchors, 3)
	assert.Equal(t, "/standings/028.html", anchors[0].Href)
	assert.Equal(t, "standings", anchors[0].Text)
	assert.Equal(t, "/pdf/S02805.pdf", anchors[1].Href)
	assert.Equal(t, "/pdf/P02805.pdf", anchors[2].Href)
}

func TestDivisionRowLabelMissing(t *testing.T) {
	assert.Nil(t, DivisionRow(standingsPageHTML, "029 SOMETHING ELSE"))
}

func TestDivisionRowExactMatchOnly(t *testing.T) {
	// A superstring of the label must not match.
	assert.Nil(t, DivisionRow(standingsPageHTML, "028 COLLEGE"))
}

func TestDivisionRowNoAnchors(t *testing.T) {
	html := `<table><tr><td>028 COLLEGE (TUE)</td><td>no links yet</td></tr></table>`
	assert.Empty(t, DivisionRow(html, "028 COLLEGE (TUE)"))
}
