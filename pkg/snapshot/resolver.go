package snapshot

import "fmt"

// NameResolver resolves a team ID to a display name through three
// tiers: the name seen in this run's roster, then the statically
// configured table, then a synthesized placeholder. Both tables are
// supplied per run; the static table legitimately changes between
// seasons and must never be process-global state.
type NameResolver struct {
	RosterNames map[string]string
	StaticNames map[string]string
}

// Resolve returns the best available display name for a team ID.
func (r *NameResolver) Resolve(teamID string) string {
	if name, ok := r.RosterNames[teamID]; ok && name != "" {
		return name
	}
	if name, ok := r.StaticNames[teamID]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Team No.%s", teamID)
}
