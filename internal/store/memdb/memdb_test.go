package memdb

import (
	"context"
	"testing"
	"time"

	"github.com/khelpoint/khelpoint/internal/store"
)

func TestGetMatchNotFound(t *testing.T) {
	s := New()
	_, err := s.GetMatch(context.Background(), "nope")
	if !store.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestUpsertLiveScoreConverges(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := store.LiveScore{Sport: store.Cricket, TotalRuns: 10}
	if err := store.UpsertLiveScore(ctx, s, "m1", first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := store.LiveScore{Sport: store.Cricket, TotalRuns: 24}
	if err := store.UpsertLiveScore(ctx, s, "m1", second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.GetLiveScore(ctx, "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalRuns != 24 {
		t.Errorf("expected 24, got %d", got.TotalRuns)
	}
}

func TestUpdatedAtNeverMovesBackwards(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return clock })

	if err := s.CreateLiveScore(ctx, "m1", store.LiveScore{Sport: store.Cricket}); err != nil {
		t.Fatal(err)
	}

	// Clock skew: the second write observes an earlier time.
	clock = clock.Add(-time.Minute)
	if err := s.UpdateLiveScore(ctx, "m1", store.LiveScore{Sport: store.Cricket, TotalRuns: 5}); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetLiveScore(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if got.UpdatedAt.Before(want) {
		t.Errorf("expected updated_at >= %v, got %v", want, got.UpdatedAt)
	}
	if got.TotalRuns != 5 {
		t.Errorf("expected the write itself to land, got %d runs", got.TotalRuns)
	}
}

func TestWatchLiveScore(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.CreateLiveScore(ctx, "m1", store.LiveScore{Sport: store.Cricket}); err != nil {
		t.Fatal(err)
	}

	updates, stop, err := s.WatchLiveScore(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateLiveScore(ctx, "m1", store.LiveScore{Sport: store.Cricket, TotalRuns: 6}); err != nil {
		t.Fatal(err)
	}

	select {
	case ls := <-updates:
		if ls.TotalRuns != 6 {
			t.Errorf("expected 6, got %d", ls.TotalRuns)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an update, got none")
	}

	stop()
	if _, ok := <-updates; ok {
		// Drain anything buffered before the close lands.
		for range updates {
		}
	}

	// Writes after stop must not panic on a closed channel.
	if err := s.UpdateLiveScore(ctx, "m1", store.LiveScore{Sport: store.Cricket, TotalRuns: 7}); err != nil {
		t.Fatal(err)
	}
}

func TestListMatchesFilter(t *testing.T) {
	ctx := context.Background()
	s := New()

	m1 := store.Match{Sport: store.Cricket, Status: store.StatusOngoing}
	m2 := store.Match{Sport: store.Kabaddi, Status: store.StatusOngoing}
	m3 := store.Match{Sport: store.Cricket, Status: store.StatusCompleted}
	for _, m := range []*store.Match{&m1, &m2, &m3} {
		if err := s.CreateMatch(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListMatches(ctx, store.MatchFilter{Sport: store.Cricket, Status: store.StatusOngoing})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].ID != m1.ID {
		t.Errorf("expected %s, got %s", m1.ID, got[0].ID)
	}
}

func TestRegistrationLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	reg := store.Registration{Name: "Thunder XI"}
	if err := s.CreateRegistration(ctx, &reg); err != nil {
		t.Fatal(err)
	}
	if reg.Status != store.RegistrationPending {
		t.Errorf("expected pending, got %q", reg.Status)
	}

	if err := s.SetRegistrationStatus(ctx, reg.ID, store.RegistrationApproved); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetRegistration(ctx, reg.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != store.RegistrationApproved {
		t.Errorf("expected approved, got %q", got.Status)
	}

	pending, err := s.ListRegistrations(ctx, store.RegistrationPending)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending registrations, got %d", len(pending))
	}
}
