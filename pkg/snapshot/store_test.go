package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanium324/jpa-ranking/pkg/models"
)

func TestLoadMissingFile(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "ranking_data.json")}
	snap := store.Load()
	assert.Empty(t, snap.Ranking)
	assert.Empty(t, snap.LastChecked)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := &Store{Path: path}
	snap := store.Load()
	assert.Empty(t, snap.Ranking, "corrupt file is treated as no prior snapshot")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking_data.json")
	store := &Store{Path: path}

	snap := models.Snapshot{
		LastChecked: "2026年08月30日 09:00 JST",
		SourcePDF:   "http://www.poolplayers.jp/pdf/S02812.pdf",
		Ranking: []models.TeamRecord{
			{TeamName: "琉Q勢", TeamID: "1", Points: 50},
		},
		Individuals: []models.PlayerRecord{},
		SLChanges:   []models.RatingChange{},
	}
	require.NoError(t, store.Save(snap))

	loaded := store.Load()
	assert.Equal(t, snap.LastChecked, loaded.LastChecked)
	require.Len(t, loaded.Ranking, 1)
	assert.Equal(t, "琉Q勢", loaded.Ranking[0].TeamName)
	assert.Equal(t, 50, loaded.Ranking[0].Points)
}

func TestSaveIsPrettyPrintedAndUnescaped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking_data.json")
	store := &Store{Path: path}

	snap := models.Snapshot{
		Ranking: []models.TeamRecord{{TeamName: "チームNo.3", TeamID: "3"}},
	}
	require.NoError(t, store.Save(snap))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "\n    \"ranking\"", "output is indented")
	assert.Contains(t, text, "チームNo.3", "non-ASCII content persists verbatim")
	assert.False(t, strings.Contains(text, "\\u"), "no unicode escaping")
}
