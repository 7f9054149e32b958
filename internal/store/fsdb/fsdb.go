// Package fsdb implements the store facade on Google Cloud Firestore.
//
// Firestore supplies both halves of the remote service contract: per-
// collection CRUD and query, and the realtime change channel through
// document snapshot listeners.
package fsdb

import (
	"context"
	"fmt"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/khelpoint/khelpoint/internal/store"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Client is the Firestore-backed Store. Construction must succeed before any
// other operation; a failed New is a connectivity error that is fatal to the
// caller and never retried here.
type Client struct {
	fs          *fs.Client
	collections store.Collections
	now         func() time.Time
}

var _ store.Store = (*Client)(nil)

// New connects to Firestore in the given project. Collection IDs default to
// the logical entity names; pass overrides for deployments with opaque IDs.
func New(ctx context.Context, projectID string, overrides store.Collections) (*Client, error) {
	fsClient, err := fs.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("fsdb: error connecting to project %s: %w", projectID, err)
	}
	return &Client{
		fs:          fsClient,
		collections: store.DefaultCollections().Merge(overrides),
		now:         time.Now,
	}, nil
}

// Close releases the underlying Firestore client.
func (c *Client) Close() error {
	return c.fs.Close()
}

func (c *Client) col(logical string) *fs.CollectionRef {
	return c.fs.Collection(c.collections[logical])
}

// notFound translates a Firestore NotFound status into the store's typed
// error and leaves everything else alone.
func notFound(err error, kind, id string) error {
	if status.Code(err) == codes.NotFound {
		return &store.NotFound{Kind: kind, ID: id}
	}
	return err
}

func (c *Client) CreateTournament(ctx context.Context, t *store.Tournament) error {
	ref, _, err := c.col(store.TournamentsCollection).Add(ctx, t)
	if err != nil {
		return fmt.Errorf("CreateTournament: error creating document: %w", err)
	}
	t.ID = ref.ID
	return nil
}

func (c *Client) ListTournaments(ctx context.Context, sport store.Sport) ([]store.Tournament, error) {
	q := c.col(store.TournamentsCollection).Query
	if sport != "" {
		q = q.Where("sport", "==", string(sport))
	}
	out := []store.Tournament{}
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListTournaments: error getting tournament snapshot: %w", err)
		}
		var t store.Tournament
		if err := ss.DataTo(&t); err != nil {
			return nil, fmt.Errorf("ListTournaments: error getting tournament snapshot data: %w", err)
		}
		t.ID = ss.Ref.ID
		out = append(out, t)
	}
	return out, nil
}

func (c *Client) CreateTeam(ctx context.Context, t *store.Team) error {
	t.CreatedAt = c.now()
	ref, _, err := c.col(store.TeamsCollection).Add(ctx, t)
	if err != nil {
		return fmt.Errorf("CreateTeam: error creating document: %w", err)
	}
	t.ID = ref.ID
	return nil
}

func (c *Client) ListTeams(ctx context.Context) ([]store.Team, error) {
	out := []store.Team{}
	iter := c.col(store.TeamsCollection).Documents(ctx)
	defer iter.Stop()
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListTeams: error getting team snapshot: %w", err)
		}
		var t store.Team
		if err := ss.DataTo(&t); err != nil {
			return nil, fmt.Errorf("ListTeams: error getting team snapshot data: %w", err)
		}
		t.ID = ss.Ref.ID
		out = append(out, t)
	}
	return out, nil
}

func (c *Client) CreateMatch(ctx context.Context, m *store.Match) error {
	if m.Status == "" {
		m.Status = store.StatusScheduled
	}
	ref, _, err := c.col(store.MatchesCollection).Add(ctx, m)
	if err != nil {
		return fmt.Errorf("CreateMatch: error creating document: %w", err)
	}
	m.ID = ref.ID
	return nil
}

func (c *Client) GetMatch(ctx context.Context, id string) (store.Match, error) {
	var m store.Match
	ss, err := c.col(store.MatchesCollection).Doc(id).Get(ctx)
	if err != nil {
		return m, notFound(err, "match", id)
	}
	if err := ss.DataTo(&m); err != nil {
		return m, fmt.Errorf("GetMatch: error getting match snapshot data: %w", err)
	}
	m.ID = ss.Ref.ID
	return m, nil
}

func (c *Client) ListMatches(ctx context.Context, f store.MatchFilter) ([]store.Match, error) {
	q := c.col(store.MatchesCollection).Query
	if f.Status != "" {
		q = q.Where("status", "==", f.Status)
	}
	if f.Sport != "" {
		q = q.Where("sport", "==", string(f.Sport))
	}
	if f.TournamentID != "" {
		q = q.Where("tournament_id", "==", f.TournamentID)
	}
	out := []store.Match{}
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListMatches: error getting match snapshot: %w", err)
		}
		var m store.Match
		if err := ss.DataTo(&m); err != nil {
			return nil, fmt.Errorf("ListMatches: error getting match snapshot data: %w", err)
		}
		m.ID = ss.Ref.ID
		out = append(out, m)
	}
	return out, nil
}

func (c *Client) SetMatchStatus(ctx context.Context, id string, matchStatus string) error {
	_, err := c.col(store.MatchesCollection).Doc(id).Update(ctx, []fs.Update{
		{Path: "status", Value: matchStatus},
	})
	if err != nil {
		return fmt.Errorf("SetMatchStatus: error updating match %s: %w", id, notFound(err, "match", id))
	}
	return nil
}

func (c *Client) GetLiveScore(ctx context.Context, matchID string) (store.LiveScore, error) {
	var ls store.LiveScore
	ss, err := c.col(store.LiveScoresCollection).Doc(matchID).Get(ctx)
	if err != nil {
		return ls, notFound(err, "live score", matchID)
	}
	if err := ss.DataTo(&ls); err != nil {
		return ls, fmt.Errorf("GetLiveScore: error getting live score snapshot data: %w", err)
	}
	return ls, nil
}

func (c *Client) CreateLiveScore(ctx context.Context, matchID string, ls store.LiveScore) error {
	ls.UpdatedAt = c.now()
	_, err := c.col(store.LiveScoresCollection).Doc(matchID).Create(ctx, &ls)
	if err != nil {
		return fmt.Errorf("CreateLiveScore: error creating live score for match %s: %w", matchID, err)
	}
	return nil
}

func (c *Client) UpdateLiveScore(ctx context.Context, matchID string, ls store.LiveScore) error {
	ls.UpdatedAt = c.now()
	// Full-replacement write: Set overwrites the document wholesale.
	_, err := c.col(store.LiveScoresCollection).Doc(matchID).Set(ctx, &ls)
	if err != nil {
		return fmt.Errorf("UpdateLiveScore: error updating live score for match %s: %w", matchID, err)
	}
	return nil
}

// WatchLiveScore subscribes to snapshot updates for one match's live score
// document. The first snapshot for a missing document is skipped; updates
// flow until ctx is cancelled or stop is called.
func (c *Client) WatchLiveScore(ctx context.Context, matchID string) (<-chan store.LiveScore, func(), error) {
	wctx, cancel := context.WithCancel(ctx)
	snaps := c.col(store.LiveScoresCollection).Doc(matchID).Snapshots(wctx)

	out := make(chan store.LiveScore, 8)
	go func() {
		defer close(out)
		defer snaps.Stop()
		for {
			ss, err := snaps.Next()
			if err != nil {
				// Cancelled or stream failure; the consumer degrades to
				// polling.
				return
			}
			if !ss.Exists() {
				continue
			}
			var ls store.LiveScore
			if err := ss.DataTo(&ls); err != nil {
				continue
			}
			select {
			case out <- ls:
			case <-wctx.Done():
				return
			}
		}
	}()
	return out, cancel, nil
}

func (c *Client) GetScoreboard(ctx context.Context, matchID string) (store.Scoreboard, error) {
	var sb store.Scoreboard
	ss, err := c.col(store.ScoreboardsCollection).Doc(matchID).Get(ctx)
	if err != nil {
		return sb, notFound(err, "scoreboard", matchID)
	}
	if err := ss.DataTo(&sb); err != nil {
		return sb, fmt.Errorf("GetScoreboard: error getting scoreboard snapshot data: %w", err)
	}
	return sb, nil
}

func (c *Client) CreateScoreboard(ctx context.Context, matchID string, sb store.Scoreboard) error {
	sb.LastUpdated = c.now()
	_, err := c.col(store.ScoreboardsCollection).Doc(matchID).Create(ctx, &sb)
	if err != nil {
		return fmt.Errorf("CreateScoreboard: error creating scoreboard for match %s: %w", matchID, err)
	}
	return nil
}

func (c *Client) UpdateScoreboard(ctx context.Context, matchID string, sb store.Scoreboard) error {
	sb.LastUpdated = c.now()
	_, err := c.col(store.ScoreboardsCollection).Doc(matchID).Set(ctx, &sb)
	if err != nil {
		return fmt.Errorf("UpdateScoreboard: error updating scoreboard for match %s: %w", matchID, err)
	}
	return nil
}

func (c *Client) CreateRegistration(ctx context.Context, r *store.Registration) error {
	if r.Status == "" {
		r.Status = store.RegistrationPending
	}
	r.RegisteredAt = c.now()
	ref, _, err := c.col(store.RegistrationsCollection).Add(ctx, r)
	if err != nil {
		return fmt.Errorf("CreateRegistration: error creating document: %w", err)
	}
	r.ID = ref.ID
	return nil
}

func (c *Client) GetRegistration(ctx context.Context, id string) (store.Registration, error) {
	var r store.Registration
	ss, err := c.col(store.RegistrationsCollection).Doc(id).Get(ctx)
	if err != nil {
		return r, notFound(err, "registration", id)
	}
	if err := ss.DataTo(&r); err != nil {
		return r, fmt.Errorf("GetRegistration: error getting registration snapshot data: %w", err)
	}
	r.ID = ss.Ref.ID
	return r, nil
}

func (c *Client) ListRegistrations(ctx context.Context, regStatus string) ([]store.Registration, error) {
	q := c.col(store.RegistrationsCollection).Query
	if regStatus != "" {
		q = q.Where("status", "==", regStatus)
	}
	out := []store.Registration{}
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListRegistrations: error getting registration snapshot: %w", err)
		}
		var r store.Registration
		if err := ss.DataTo(&r); err != nil {
			return nil, fmt.Errorf("ListRegistrations: error getting registration snapshot data: %w", err)
		}
		r.ID = ss.Ref.ID
		out = append(out, r)
	}
	return out, nil
}

func (c *Client) SetRegistrationStatus(ctx context.Context, id string, regStatus string) error {
	_, err := c.col(store.RegistrationsCollection).Doc(id).Update(ctx, []fs.Update{
		{Path: "status", Value: regStatus},
	})
	if err != nil {
		return fmt.Errorf("SetRegistrationStatus: error updating registration %s: %w", id, notFound(err, "registration", id))
	}
	return nil
}

func (c *Client) CreateAchievement(ctx context.Context, a *store.Achievement) error {
	if a.AwardedAt.IsZero() {
		a.AwardedAt = c.now()
	}
	ref, _, err := c.col(store.AchievementsCollection).Add(ctx, a)
	if err != nil {
		return fmt.Errorf("CreateAchievement: error creating document: %w", err)
	}
	a.ID = ref.ID
	return nil
}

func (c *Client) ListAchievements(ctx context.Context, f store.AchievementFilter) ([]store.Achievement, error) {
	q := c.col(store.AchievementsCollection).Query
	if f.Category != "" {
		q = q.Where("category", "==", f.Category)
	}
	if f.PlayerID != "" {
		q = q.Where("player_id", "==", f.PlayerID)
	}
	if f.TeamID != "" {
		q = q.Where("team_id", "==", f.TeamID)
	}
	out := []store.Achievement{}
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListAchievements: error getting achievement snapshot: %w", err)
		}
		var a store.Achievement
		if err := ss.DataTo(&a); err != nil {
			return nil, fmt.Errorf("ListAchievements: error getting achievement snapshot data: %w", err)
		}
		a.ID = ss.Ref.ID
		out = append(out, a)
	}
	return out, nil
}
