package store

import "time"

// LiveScore is the single mutable document holding a match's current
// in-progress state. It is keyed 1:1 by match ID: the document ID equals the
// match ID, so at most one live score exists per match.
//
// The struct is a sport-tagged variant record. Only the fields for the
// document's Sport are meaningful; the rest stay at their zero values. Every
// writer must refresh UpdatedAt, which is monotonically non-decreasing per
// document.
type LiveScore struct {
	// Sport selects which variant fields apply.
	Sport Sport `firestore:"sport" json:"sport"`

	// Status mirrors the match's live state, e.g. "live".
	Status string `firestore:"status" json:"status"`

	// UpdatedAt is stamped by the writer on every write.
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`

	// Cricket fields.

	// TotalRuns is the batting side's cumulative run count.
	TotalRuns int `firestore:"total_runs" json:"total_runs"`

	// Target is the chase target; zero means no target is set.
	Target int `firestore:"target,omitempty" json:"target,omitempty"`

	// BattingTeamID and BowlingTeamID reference the sides currently batting
	// and bowling.
	BattingTeamID string `firestore:"batting_team_id,omitempty" json:"batting_team_id,omitempty"`
	BowlingTeamID string `firestore:"bowling_team_id,omitempty" json:"bowling_team_id,omitempty"`

	// CurrentBatsmen are the not-out batsmen at the crease.
	CurrentBatsmen []Batsman `firestore:"current_batsmen,omitempty" json:"current_batsmen,omitempty"`

	// CurrentBowler is the bowler of the current over. The scoring UI never
	// collects this, so submits always send it absent.
	CurrentBowler *string `firestore:"current_bowler" json:"current_bowler"`

	// RecentDeliveries lists the most recent balls bowled, newest last.
	RecentDeliveries []Delivery `firestore:"recent_overs,omitempty" json:"recent_deliveries,omitempty"`

	// Innings summarizes each completed or in-progress innings.
	Innings []InningsSummary `firestore:"innings,omitempty" json:"innings,omitempty"`

	// Partnership is the current batting partnership's run count.
	Partnership int `firestore:"partnership,omitempty" json:"partnership,omitempty"`

	// Kabaddi fields.

	// TeamScores holds the two sides' point totals.
	TeamScores *TeamScores `firestore:"team_scores,omitempty" json:"team_scores,omitempty"`

	// PlayerPoints breaks scoring down per player.
	PlayerPoints []PlayerPoints `firestore:"player_points,omitempty" json:"player_points,omitempty"`

	// SuperTackles counts super tackles in the match.
	SuperTackles int `firestore:"super_tackles,omitempty" json:"super_tackles,omitempty"`

	// Volleyball fields.

	// Sets lists the per-set scores in playing order.
	Sets []SetScore `firestore:"sets,omitempty" json:"sets,omitempty"`

	// CurrentSet is the 1-based index of the set in play.
	CurrentSet int `firestore:"current_set,omitempty" json:"current_set,omitempty"`

	// Timeouts counts timeouts taken by each side.
	Timeouts *Timeouts `firestore:"timeouts,omitempty" json:"timeouts,omitempty"`
}

// Batsman is one batsman currently at the crease.
type Batsman struct {
	Name string `firestore:"name" json:"name"`
	Runs int    `firestore:"runs" json:"runs"`
}

// Delivery is a single ball bowled.
type Delivery struct {
	// Runs scored off the ball, excluding extras.
	Runs int `firestore:"runs" json:"runs"`

	// Wicket is true if a batsman was dismissed on the ball.
	Wicket bool `firestore:"wicket" json:"wicket"`

	// Extra names the extra type ("WD", "NB") or is empty for a fair ball.
	Extra string `firestore:"extra,omitempty" json:"extra,omitempty"`
}

// Legal reports whether the delivery counts toward the over. Wides and
// no-balls are re-bowled.
func (d Delivery) Legal() bool {
	return d.Extra == ""
}

// InningsSummary summarizes a cricket innings.
type InningsSummary struct {
	Runs    int     `firestore:"runs" json:"runs"`
	Wickets int     `firestore:"wickets" json:"wickets"`
	Overs   float64 `firestore:"overs" json:"overs"`
}

// TeamScores is a kabaddi score pair.
type TeamScores struct {
	Team1 int `firestore:"team1" json:"team1"`
	Team2 int `firestore:"team2" json:"team2"`
}

// PlayerPoints is one kabaddi player's scoring breakdown.
type PlayerPoints struct {
	PlayerName   string `firestore:"player_name" json:"player_name"`
	RaidPoints   int    `firestore:"raid_points" json:"raid_points"`
	TacklePoints int    `firestore:"tackle_points" json:"tackle_points"`
}

// SetScore is one volleyball set.
type SetScore struct {
	ScoreTeam1 int `firestore:"score_team1" json:"score_team1"`
	ScoreTeam2 int `firestore:"score_team2" json:"score_team2"`

	// Winner is "team1" or "team2" once the set is decided, empty while in
	// play.
	Winner string `firestore:"winner,omitempty" json:"winner,omitempty"`
}

// Timeouts counts volleyball timeouts per side.
type Timeouts struct {
	Team1 int `firestore:"team1" json:"team1"`
	Team2 int `firestore:"team2" json:"team2"`
}
