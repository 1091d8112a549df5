// Package snapshot persists the ranking snapshot and resolves team
// display names
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/germanium324/jpa-ranking/pkg/models"
)

// Store reads and writes the snapshot JSON file.
type Store struct {
	Path string
}

// Load reads the previously persisted snapshot. A missing or corrupt
// file is treated as "no prior snapshot" and returns an empty record.
func (s *Store) Load() models.Snapshot {
	var snap models.Snapshot

	data, err := os.ReadFile(s.Path)
	if err != nil {
		log.Printf("No prior snapshot at %s: %v", s.Path, err)
		return snap
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Prior snapshot at %s is unreadable, starting fresh: %v", s.Path, err)
		return models.Snapshot{}
	}
	return snap
}

// Save writes the snapshot as pretty-printed JSON. HTML escaping is
// disabled so team and player names persist verbatim.
func (s *Store) Save(snap models.Snapshot) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing snapshot to %s: %w", s.Path, err)
	}
	log.Printf("Saved snapshot to %s", s.Path)
	return nil
}
