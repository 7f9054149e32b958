// Package scoring holds the scorer-side input state for each sport and the
// shared display rendering of live score documents.
//
// A tally accumulates local edits only; nothing reaches the remote store
// until the scorer explicitly submits, at which point Build produces one
// full-replacement live score document. A submit overwrites the remote
// document wholesale: concurrent edits from another scorer are dropped,
// last write wins.
package scoring

import (
	"time"

	"github.com/khelpoint/khelpoint/internal/store"
)

// MaxWickets caps a cricket innings; increments past it are ignored.
const MaxWickets = 10

// MaxSetPoints caps a volleyball set score in the input layer. The backend
// does not enforce it.
const MaxSetPoints = 25

// CricketTally is the scorer's working state for a cricket match.
type CricketTally struct {
	Runs    int
	Wickets int
	Overs   float64

	BattingTeamID string
	BowlingTeamID string
	Target        int

	deliveries []store.Delivery
}

// AddRuns credits runs to the batting side.
func (t *CricketTally) AddRuns(n int) {
	if n < 0 {
		return
	}
	t.Runs += n
}

// AddWicket records a dismissal, clamped at MaxWickets.
func (t *CricketTally) AddWicket() {
	if t.Wickets < MaxWickets {
		t.Wickets++
	}
}

// Ball records a single delivery: its runs, an optional dismissal, and an
// optional extra type ("WD", "NB"). Extras do not advance the over count.
func (t *CricketTally) Ball(d store.Delivery) {
	t.AddRuns(d.Runs)
	if d.Wicket {
		t.AddWicket()
	}
	t.deliveries = append(t.deliveries, d)
	legal := 0
	for _, dd := range t.deliveries {
		if dd.Legal() {
			legal++
		}
	}
	t.Overs = OversFromBalls(legal)
}

// Build assembles the full-replacement live score payload. Fields the
// scoring UI never collects are sent at their defaults; CurrentBowler in
// particular is always absent.
func (t *CricketTally) Build(now time.Time) store.LiveScore {
	deliveries := t.deliveries
	if deliveries == nil {
		deliveries = []store.Delivery{}
	}
	return store.LiveScore{
		Sport:            store.Cricket,
		Status:           "live",
		UpdatedAt:        now,
		TotalRuns:        t.Runs,
		Target:           t.Target,
		BattingTeamID:    t.BattingTeamID,
		BowlingTeamID:    t.BowlingTeamID,
		CurrentBatsmen:   []store.Batsman{},
		CurrentBowler:    nil,
		RecentDeliveries: deliveries,
		Innings: []store.InningsSummary{
			{Runs: t.Runs, Wickets: t.Wickets, Overs: t.Overs},
		},
	}
}

// ResumeCricket seeds a tally from an existing live score document so
// per-delivery scoring can continue where the document left off.
func ResumeCricket(ls store.LiveScore) *CricketTally {
	t := &CricketTally{
		Runs:          ls.TotalRuns,
		BattingTeamID: ls.BattingTeamID,
		BowlingTeamID: ls.BowlingTeamID,
		Target:        ls.Target,
	}
	t.deliveries = append(t.deliveries, ls.RecentDeliveries...)
	if n := len(ls.Innings); n > 0 {
		t.Wickets = ls.Innings[n-1].Wickets
		t.Overs = ls.Innings[n-1].Overs
	} else {
		legal := 0
		for _, d := range t.deliveries {
			if d.Wicket && t.Wickets < MaxWickets {
				t.Wickets++
			}
			if d.Legal() {
				legal++
			}
		}
		t.Overs = OversFromBalls(legal)
	}
	return t
}

// KabaddiTally is the scorer's working state for a kabaddi match.
type KabaddiTally struct {
	Team1        int
	Team2        int
	SuperTackles int

	playerPoints []store.PlayerPoints
}

// AddPoints credits points to "team1" or "team2". Unknown team labels and
// negative points are ignored.
func (t *KabaddiTally) AddPoints(team string, n int) {
	if n < 0 {
		return
	}
	switch team {
	case "team1":
		t.Team1 += n
	case "team2":
		t.Team2 += n
	}
}

// AddSuperTackle counts a super tackle.
func (t *KabaddiTally) AddSuperTackle() {
	t.SuperTackles++
}

// CreditPlayer accumulates a player's raid and tackle points.
func (t *KabaddiTally) CreditPlayer(name string, raid, tackle int) {
	for i := range t.playerPoints {
		if t.playerPoints[i].PlayerName == name {
			t.playerPoints[i].RaidPoints += raid
			t.playerPoints[i].TacklePoints += tackle
			return
		}
	}
	t.playerPoints = append(t.playerPoints, store.PlayerPoints{
		PlayerName:   name,
		RaidPoints:   raid,
		TacklePoints: tackle,
	})
}

// Build assembles the full-replacement live score payload.
func (t *KabaddiTally) Build(now time.Time) store.LiveScore {
	pp := t.playerPoints
	if pp == nil {
		pp = []store.PlayerPoints{}
	}
	return store.LiveScore{
		Sport:        store.Kabaddi,
		Status:       "live",
		UpdatedAt:    now,
		TeamScores:   &store.TeamScores{Team1: t.Team1, Team2: t.Team2},
		PlayerPoints: pp,
		SuperTackles: t.SuperTackles,
	}
}

// VolleyballTally is the scorer's working state for a volleyball match. It
// tracks completed sets plus the set in play.
type VolleyballTally struct {
	CompletedSets []store.SetScore
	CurrentSet    int

	Team1    int
	Team2    int
	Timeouts store.Timeouts
}

// NewVolleyballTally starts a tally at set 1.
func NewVolleyballTally() *VolleyballTally {
	return &VolleyballTally{CurrentSet: 1}
}

// AddPoint credits one point in the current set, clamped at MaxSetPoints.
func (t *VolleyballTally) AddPoint(team string) {
	switch team {
	case "team1":
		if t.Team1 < MaxSetPoints {
			t.Team1++
		}
	case "team2":
		if t.Team2 < MaxSetPoints {
			t.Team2++
		}
	}
}

// Timeout counts a timeout for a side.
func (t *VolleyballTally) Timeout(team string) {
	switch team {
	case "team1":
		t.Timeouts.Team1++
	case "team2":
		t.Timeouts.Team2++
	}
}

// CloseSet finalizes the current set with a winner tag and opens the next.
func (t *VolleyballTally) CloseSet() {
	winner := "team1"
	if t.Team2 > t.Team1 {
		winner = "team2"
	}
	t.CompletedSets = append(t.CompletedSets, store.SetScore{
		ScoreTeam1: t.Team1,
		ScoreTeam2: t.Team2,
		Winner:     winner,
	})
	t.Team1, t.Team2 = 0, 0
	t.CurrentSet++
}

// Build assembles the full-replacement live score payload. The set in play
// is included last, with no winner tag.
func (t *VolleyballTally) Build(now time.Time) store.LiveScore {
	sets := make([]store.SetScore, 0, len(t.CompletedSets)+1)
	sets = append(sets, t.CompletedSets...)
	sets = append(sets, store.SetScore{ScoreTeam1: t.Team1, ScoreTeam2: t.Team2})
	current := t.CurrentSet
	if current < 1 {
		current = 1
	}
	timeouts := t.Timeouts
	return store.LiveScore{
		Sport:      store.Volleyball,
		Status:     "live",
		UpdatedAt:  now,
		Sets:       sets,
		CurrentSet: current,
		Timeouts:   &timeouts,
	}
}
