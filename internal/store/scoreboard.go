package store

import "time"

// Scoreboard is a denormalized per-match summary for display surfaces that
// do not need the full live-score document. Like LiveScore it is keyed 1:1
// by match ID and written with the check-then-write upsert pattern.
type Scoreboard struct {
	Sport Sport `firestore:"sport" json:"sport"`

	// DisplaySummary is a free-text one-liner, e.g. "KHL 142/3 (15.2 ov)".
	DisplaySummary string `firestore:"display_summary" json:"display_summary"`

	Team1Score int `firestore:"team1_score" json:"team1_score"`
	Team2Score int `firestore:"team2_score" json:"team2_score"`

	// PeriodBreakdown maps a period label ("innings 1", "set 2") to the
	// score recorded in it.
	PeriodBreakdown map[string]int `firestore:"period_breakdown,omitempty" json:"period_breakdown,omitempty"`

	// TopPerformers lists standout player names in display order.
	TopPerformers []string `firestore:"top_performers,omitempty" json:"top_performers,omitempty"`

	LastUpdated time.Time `firestore:"last_updated" json:"last_updated"`
}
