package parser

import "strings"

// DeriveTeamID reduces a raw composite division+team code (e.g.
// "02810") to the short team ID used as the join key everywhere
// ("10"). The division-code prefix is stripped, then leading zeros.
// If nothing remains, the last two characters of the raw code are
// used so distinct teams still map to distinct IDs.
func DeriveTeamID(teamCode, divisionCode string) string {
	id := strings.TrimPrefix(teamCode, divisionCode)
	id = strings.TrimLeft(id, "0")
	if id == "" && len(teamCode) >= 2 {
		id = teamCode[len(teamCode)-2:]
	}
	return id
}
