// Package memdb is an in-memory Store implementation. It backs the test
// suite and the server's -dev mode, where no Firestore project is available.
package memdb

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khelpoint/khelpoint/internal/store"
)

// Store keeps every collection in process memory. It is safe for concurrent
// use. Documents are stored by value; readers get copies.
type Store struct {
	mu sync.RWMutex

	now func() time.Time

	tournaments   map[string]store.Tournament
	teams         map[string]store.Team
	matches       map[string]store.Match
	liveScores    map[string]store.LiveScore
	scoreboards   map[string]store.Scoreboard
	registrations map[string]store.Registration
	achievements  map[string]store.Achievement

	watchers map[string][]chan store.LiveScore
}

var _ store.Store = (*Store)(nil)

// New returns an empty Store stamping writes with the wall clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty Store stamping writes with now.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		now:           now,
		tournaments:   make(map[string]store.Tournament),
		teams:         make(map[string]store.Team),
		matches:       make(map[string]store.Match),
		liveScores:    make(map[string]store.LiveScore),
		scoreboards:   make(map[string]store.Scoreboard),
		registrations: make(map[string]store.Registration),
		achievements:  make(map[string]store.Achievement),
		watchers:      make(map[string][]chan store.LiveScore),
	}
}

func (s *Store) CreateTournament(ctx context.Context, t *store.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	s.tournaments[t.ID] = *t
	return nil
}

func (s *Store) ListTournaments(ctx context.Context, sport store.Sport) ([]store.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []store.Tournament{}
	for _, t := range s.tournaments {
		if sport != "" && t.Sport != sport {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Store) CreateTeam(ctx context.Context, t *store.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = s.now()
	s.teams[t.ID] = *t
	return nil
}

func (s *Store) ListTeams(ctx context.Context) ([]store.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []store.Team{}
	for _, t := range s.teams {
		out = append(out, t)
	}
	return out, nil
}

func (s *Store) CreateMatch(ctx context.Context, m *store.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	if m.Status == "" {
		m.Status = store.StatusScheduled
	}
	s.matches[m.ID] = *m
	return nil
}

func (s *Store) GetMatch(ctx context.Context, id string) (store.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return store.Match{}, &store.NotFound{Kind: "match", ID: id}
	}
	return m, nil
}

func (s *Store) ListMatches(ctx context.Context, f store.MatchFilter) ([]store.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []store.Match{}
	for _, m := range s.matches {
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		if f.Sport != "" && m.Sport != f.Sport {
			continue
		}
		if f.TournamentID != "" && m.TournamentID != f.TournamentID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *Store) SetMatchStatus(ctx context.Context, id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return &store.NotFound{Kind: "match", ID: id}
	}
	m.Status = status
	s.matches[id] = m
	return nil
}

func (s *Store) GetLiveScore(ctx context.Context, matchID string) (store.LiveScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ls, ok := s.liveScores[matchID]
	if !ok {
		return store.LiveScore{}, &store.NotFound{Kind: "live score", ID: matchID}
	}
	return ls, nil
}

func (s *Store) CreateLiveScore(ctx context.Context, matchID string, ls store.LiveScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls.UpdatedAt = s.now()
	s.liveScores[matchID] = ls
	s.notifyLocked(matchID, ls)
	return nil
}

func (s *Store) UpdateLiveScore(ctx context.Context, matchID string, ls store.LiveScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.liveScores[matchID]
	if !ok {
		return &store.NotFound{Kind: "live score", ID: matchID}
	}
	ls.UpdatedAt = s.now()
	// updated_at never moves backwards, even with a skewed clock.
	if prev.UpdatedAt.After(ls.UpdatedAt) {
		ls.UpdatedAt = prev.UpdatedAt
	}
	s.liveScores[matchID] = ls
	s.notifyLocked(matchID, ls)
	return nil
}

func (s *Store) WatchLiveScore(ctx context.Context, matchID string) (<-chan store.LiveScore, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan store.LiveScore, 8)
	s.watchers[matchID] = append(s.watchers[matchID], ch)
	stop := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		ws := s.watchers[matchID]
		for i, w := range ws {
			if w == ch {
				s.watchers[matchID] = append(ws[:i], ws[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, stop, nil
}

func (s *Store) notifyLocked(matchID string, ls store.LiveScore) {
	for _, ch := range s.watchers[matchID] {
		select {
		case ch <- ls:
		default:
			// Slow watcher; it will catch up on the next write.
		}
	}
}

func (s *Store) GetScoreboard(ctx context.Context, matchID string) (store.Scoreboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sb, ok := s.scoreboards[matchID]
	if !ok {
		return store.Scoreboard{}, &store.NotFound{Kind: "scoreboard", ID: matchID}
	}
	return sb, nil
}

func (s *Store) CreateScoreboard(ctx context.Context, matchID string, sb store.Scoreboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sb.LastUpdated = s.now()
	s.scoreboards[matchID] = sb
	return nil
}

func (s *Store) UpdateScoreboard(ctx context.Context, matchID string, sb store.Scoreboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scoreboards[matchID]; !ok {
		return &store.NotFound{Kind: "scoreboard", ID: matchID}
	}
	sb.LastUpdated = s.now()
	s.scoreboards[matchID] = sb
	return nil
}

func (s *Store) CreateRegistration(ctx context.Context, r *store.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	if r.Status == "" {
		r.Status = store.RegistrationPending
	}
	r.RegisteredAt = s.now()
	s.registrations[r.ID] = *r
	return nil
}

func (s *Store) GetRegistration(ctx context.Context, id string) (store.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.registrations[id]
	if !ok {
		return store.Registration{}, &store.NotFound{Kind: "registration", ID: id}
	}
	return r, nil
}

func (s *Store) ListRegistrations(ctx context.Context, status string) ([]store.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []store.Registration{}
	for _, r := range s.registrations {
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) SetRegistrationStatus(ctx context.Context, id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.registrations[id]
	if !ok {
		return &store.NotFound{Kind: "registration", ID: id}
	}
	r.Status = status
	s.registrations[id] = r
	return nil
}

func (s *Store) CreateAchievement(ctx context.Context, a *store.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = uuid.NewString()
	if a.AwardedAt.IsZero() {
		a.AwardedAt = s.now()
	}
	s.achievements[a.ID] = *a
	return nil
}

func (s *Store) ListAchievements(ctx context.Context, f store.AchievementFilter) ([]store.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []store.Achievement{}
	for _, a := range s.achievements {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.PlayerID != "" && a.PlayerID != f.PlayerID {
			continue
		}
		if f.TeamID != "" && a.TeamID != f.TeamID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
