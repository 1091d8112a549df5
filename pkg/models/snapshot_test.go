package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	// Midnight UTC is 09:00 in JST.
	utc := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026年08月30日 09:00 JST", FormatTime(utc))

	// Times already in JST keep their wall clock.
	jst := time.Date(2026, 1, 5, 21, 30, 0, 0, JST)
	assert.Equal(t, "2026年01月05日 21:30 JST", FormatTime(jst))
}
