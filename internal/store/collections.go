package store

// Logical entity names used as keys in a Collections mapping.
const (
	TournamentsCollection   = "tournaments"
	TeamsCollection         = "teams"
	MatchesCollection       = "matches"
	LiveScoresCollection    = "live_scores"
	ScoreboardsCollection   = "scoreboards"
	RegistrationsCollection = "registrations"
	AchievementsCollection  = "achievements"
)

// Collections maps logical entity names to physical collection IDs in the
// remote database. Deployments that created their collections with opaque
// IDs override individual keys; unset keys keep the built-in defaults.
type Collections map[string]string

// DefaultCollections returns the built-in logical-to-physical mapping, where
// every physical ID equals the logical name.
func DefaultCollections() Collections {
	return Collections{
		TournamentsCollection:   TournamentsCollection,
		TeamsCollection:         TeamsCollection,
		MatchesCollection:       MatchesCollection,
		LiveScoresCollection:    LiveScoresCollection,
		ScoreboardsCollection:   ScoreboardsCollection,
		RegistrationsCollection: RegistrationsCollection,
		AchievementsCollection:  AchievementsCollection,
	}
}

// Merge overlays non-empty entries from other onto a copy of c.
func (c Collections) Merge(other Collections) Collections {
	out := make(Collections, len(c))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range other {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
