package store

import "time"

// Achievement category tags. Categories are sport- and stat-specific; the
// leaderboard ranks records within a category by Points.
const (
	CategoryHighestScore     = "highest_score"
	CategoryMostWickets      = "most_wickets"
	CategoryHighestTeamScore = "highest_team_score"
	CategoryMostRaids        = "most_raids"
	CategoryMostTackles      = "most_tackles"
	CategoryMostAces         = "most_aces"
	CategoryMostBlocks       = "most_blocks"
)

// Achievement is an awarded record, e.g. "highest individual score".
type Achievement struct {
	ID string `firestore:"-" json:"id"`

	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description,omitempty" json:"description,omitempty"`

	// Category groups achievements for ranking, e.g. "most_raids".
	Category string `firestore:"category" json:"category"`

	// Sport the achievement belongs to.
	Sport Sport `firestore:"sport" json:"sport"`

	// Optional references to the player, team, and match the achievement
	// was earned in.
	PlayerID string `firestore:"player_id,omitempty" json:"player_id,omitempty"`
	TeamID   string `firestore:"team_id,omitempty" json:"team_id,omitempty"`
	MatchID  string `firestore:"match_id,omitempty" json:"match_id,omitempty"`

	// Points is the stat value the record represents (runs, raids, blocks).
	// It is used only for ranking within a category.
	Points int `firestore:"points" json:"points"`

	// BadgeURL optionally links a badge image.
	BadgeURL string `firestore:"badge_url,omitempty" json:"badge_url,omitempty"`

	// AwardedAt is when the achievement was recorded.
	AwardedAt time.Time `firestore:"date_awarded" json:"awarded_at"`
}
