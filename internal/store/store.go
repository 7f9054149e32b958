// Package store defines the document entities tracked by khelpoint and the
// facade through which every page and tool talks to the backing document
// database. Implementations live in the fsdb (Cloud Firestore) and memdb
// (in-memory, for tests and local development) subpackages.
package store

import (
	"context"
	"time"
)

// Sport tags a match, live score, or achievement with the game being played.
type Sport string

const (
	Cricket    Sport = "cricket"
	Kabaddi    Sport = "kabaddi"
	Volleyball Sport = "volleyball"
)

// Valid reports whether s is one of the supported sports.
func (s Sport) Valid() bool {
	switch s {
	case Cricket, Kabaddi, Volleyball:
		return true
	}
	return false
}

// Match lifecycle statuses. Transitions are monotonic: scheduled to ongoing
// to completed, never backwards.
const (
	StatusScheduled = "scheduled"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Registration approval statuses.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// MatchFilter selects matches by equality on any combination of fields.
// Zero values are ignored.
type MatchFilter struct {
	Status       string
	Sport        Sport
	TournamentID string
}

// AchievementFilter selects achievements by equality on any combination of
// fields. Zero values are ignored.
type AchievementFilter struct {
	Category string
	PlayerID string
	TeamID   string
}

// Store is the data access facade over the remote document database. It is
// the one place that knows the backend's call conventions; everything else
// works in terms of the entity types defined in this package.
//
// Get methods fail with a typed *NotFound error when the document is absent.
// List methods return an empty slice when nothing matches. Timestamps are
// stamped by the implementation's injected clock at call time, never by the
// remote service.
type Store interface {
	CreateTournament(ctx context.Context, t *Tournament) error
	ListTournaments(ctx context.Context, sport Sport) ([]Tournament, error)

	CreateTeam(ctx context.Context, t *Team) error
	ListTeams(ctx context.Context) ([]Team, error)

	CreateMatch(ctx context.Context, m *Match) error
	GetMatch(ctx context.Context, id string) (Match, error)
	ListMatches(ctx context.Context, f MatchFilter) ([]Match, error)
	SetMatchStatus(ctx context.Context, id string, status string) error

	// Live scores are keyed 1:1 by match ID: the document ID is the match ID.
	GetLiveScore(ctx context.Context, matchID string) (LiveScore, error)
	CreateLiveScore(ctx context.Context, matchID string, ls LiveScore) error
	UpdateLiveScore(ctx context.Context, matchID string, ls LiveScore) error

	// WatchLiveScore subscribes to document-update events for one match's
	// live score. The returned channel is closed when the subscription ends;
	// stop releases it. An error from WatchLiveScore means the realtime
	// channel could not be established at all and callers should fall back
	// to polling GetLiveScore.
	WatchLiveScore(ctx context.Context, matchID string) (updates <-chan LiveScore, stop func(), err error)

	GetScoreboard(ctx context.Context, matchID string) (Scoreboard, error)
	CreateScoreboard(ctx context.Context, matchID string, sb Scoreboard) error
	UpdateScoreboard(ctx context.Context, matchID string, sb Scoreboard) error

	CreateRegistration(ctx context.Context, r *Registration) error
	GetRegistration(ctx context.Context, id string) (Registration, error)
	ListRegistrations(ctx context.Context, status string) ([]Registration, error)
	SetRegistrationStatus(ctx context.Context, id string, status string) error

	CreateAchievement(ctx context.Context, a *Achievement) error
	ListAchievements(ctx context.Context, f AchievementFilter) ([]Achievement, error)
}

// UpsertLiveScore writes a live score for a match using the
// check-then-create-or-update pattern: a Get that fails with not-found
// triggers a Create, anything already present is updated in place. The
// check and the write are not atomic; concurrent initializers for the same
// match can race, and the second create is left to fail at the backend.
func UpsertLiveScore(ctx context.Context, s Store, matchID string, ls LiveScore) error {
	_, err := s.GetLiveScore(ctx, matchID)
	if IsNotFound(err) {
		return s.CreateLiveScore(ctx, matchID, ls)
	}
	if err != nil {
		return err
	}
	return s.UpdateLiveScore(ctx, matchID, ls)
}

// UpsertScoreboard writes a scoreboard for a match with the same
// check-then-write pattern as UpsertLiveScore.
func UpsertScoreboard(ctx context.Context, s Store, matchID string, sb Scoreboard) error {
	_, err := s.GetScoreboard(ctx, matchID)
	if IsNotFound(err) {
		return s.CreateScoreboard(ctx, matchID, sb)
	}
	if err != nil {
		return err
	}
	return s.UpdateScoreboard(ctx, matchID, sb)
}

// NewLiveScore returns the zero-valued live score document for a sport, the
// state a match starts in before any scoring input arrives.
func NewLiveScore(sport Sport, battingTeamID, bowlingTeamID string, now time.Time) LiveScore {
	ls := LiveScore{
		Sport:     sport,
		Status:    "live",
		UpdatedAt: now,
	}
	switch sport {
	case Cricket:
		ls.BattingTeamID = battingTeamID
		ls.BowlingTeamID = bowlingTeamID
		ls.CurrentBatsmen = []Batsman{}
		ls.RecentDeliveries = []Delivery{}
		ls.Innings = []InningsSummary{}
	case Kabaddi:
		ls.TeamScores = &TeamScores{}
		ls.PlayerPoints = []PlayerPoints{}
	case Volleyball:
		ls.Sets = []SetScore{}
		ls.CurrentSet = 1
		ls.Timeouts = &Timeouts{}
	}
	return ls
}
