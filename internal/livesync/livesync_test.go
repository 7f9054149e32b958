package livesync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/store/memdb"
)

type recordingView struct {
	mu      sync.Mutex
	applied []store.LiveScore
}

func (v *recordingView) Update(match store.Match, ls store.LiveScore) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applied = append(v.applied, ls)
}

func (v *recordingView) count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.applied)
}

func (v *recordingView) last() store.LiveScore {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.applied[len(v.applied)-1]
}

func (v *recordingView) waitFor(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if v.count() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected at least %d applied updates, got %d", n, v.count())
}

// brokenWatchStore refuses realtime subscriptions.
type brokenWatchStore struct {
	*memdb.Store
}

func (s brokenWatchStore) WatchLiveScore(ctx context.Context, matchID string) (<-chan store.LiveScore, func(), error) {
	return nil, nil, errors.New("subscription refused")
}

func newOngoingMatch(t *testing.T, s store.Store) store.Match {
	t.Helper()
	m := store.Match{Sport: store.Cricket, Status: store.StatusOngoing}
	if err := s.CreateMatch(context.Background(), &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRunInitializesMissingLiveScore(t *testing.T) {
	s := memdb.New()
	m := newOngoingMatch(t, s)

	view := &recordingView{}
	y := New(s, view, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- y.Run(ctx, m.ID) }()

	view.waitFor(t, 1)
	if got := view.last(); got.Sport != store.Cricket {
		t.Errorf("expected an initialized cricket document, got %v", got.Sport)
	}
	if _, err := s.GetLiveScore(context.Background(), m.ID); err != nil {
		t.Errorf("expected the zero document to be persisted, got %v", err)
	}
	if y.State() != Synced {
		t.Errorf("expected synced, got %v", y.State())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean teardown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunAppliesPushUpdates(t *testing.T) {
	s := memdb.New()
	m := newOngoingMatch(t, s)

	view := &recordingView{}
	y := New(s, view, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go y.Run(ctx, m.ID)
	view.waitFor(t, 1)

	if err := s.UpdateLiveScore(ctx, m.ID, store.LiveScore{Sport: store.Cricket, TotalRuns: 24}); err != nil {
		t.Fatal(err)
	}
	view.waitFor(t, 2)
	if got := view.last(); got.TotalRuns != 24 {
		t.Errorf("expected 24, got %d", got.TotalRuns)
	}
}

func TestRunFallsBackToPolling(t *testing.T) {
	s := brokenWatchStore{memdb.New()}
	m := newOngoingMatch(t, s)

	view := &recordingView{}
	y := New(s, view, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go y.Run(ctx, m.ID)

	view.waitFor(t, 1)
	if err := s.UpdateLiveScore(ctx, m.ID, store.LiveScore{Sport: store.Cricket, TotalRuns: 99}); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if view.count() > 1 && view.last().TotalRuns == 99 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if view.last().TotalRuns != 99 {
		t.Fatalf("expected the poll to pick up 99, got %d", view.last().TotalRuns)
	}
	if y.State() != Polling {
		t.Errorf("expected polling, got %v", y.State())
	}
}

func TestPollingStopsOnCancel(t *testing.T) {
	s := brokenWatchStore{memdb.New()}
	m := newOngoingMatch(t, s)

	view := &recordingView{}
	y := New(s, view, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- y.Run(ctx, m.ID) }()
	view.waitFor(t, 1)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean teardown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poll loop did not stop after cancel")
	}

	// No further applies once torn down.
	n := view.count()
	time.Sleep(50 * time.Millisecond)
	if view.count() > n {
		t.Errorf("expected no applies after teardown, got %d more", view.count()-n)
	}
}

func TestApplyDiscardsStaleResponses(t *testing.T) {
	view := &recordingView{}
	y := New(memdb.New(), view, time.Minute)

	newer := y.nextSeq()
	older := newer
	newer = y.nextSeq()

	y.apply(newer, store.Match{}, store.LiveScore{TotalRuns: 50})
	y.apply(older, store.Match{}, store.LiveScore{TotalRuns: 10})

	if view.count() != 1 {
		t.Fatalf("expected 1 applied update, got %d", view.count())
	}
	if view.last().TotalRuns != 50 {
		t.Errorf("expected the fresh response to stand, got %d", view.last().TotalRuns)
	}
}

func TestRunFailsOnMissingMatch(t *testing.T) {
	y := New(memdb.New(), &recordingView{}, time.Minute)
	err := y.Run(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error")
	}
}
