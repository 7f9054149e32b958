package honors

import (
	"context"
	"testing"

	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/store/memdb"
)

func TestSelectLeaderPicksHighestPoints(t *testing.T) {
	achievements := []store.Achievement{
		{Category: store.CategoryMostRaids, PlayerID: "a", Points: 4},
		{Category: store.CategoryMostRaids, PlayerID: "b", Points: 9},
		{Category: store.CategoryMostRaids, PlayerID: "c", Points: 7},
		{Category: store.CategoryMostTackles, PlayerID: "d", Points: 99},
	}
	leader := SelectLeader(achievements, store.CategoryMostRaids)
	if !leader.Found {
		t.Fatal("expected a leader")
	}
	if leader.Achievement.PlayerID != "b" || leader.Achievement.Points != 9 {
		t.Errorf("expected b with 9 points, got %s with %d",
			leader.Achievement.PlayerID, leader.Achievement.Points)
	}
}

func TestSelectLeaderNoData(t *testing.T) {
	leader := SelectLeader(nil, store.CategoryMostAces)
	if leader.Found {
		t.Error("expected no leader")
	}
	if leader.Category != store.CategoryMostAces {
		t.Errorf("expected category to carry through, got %q", leader.Category)
	}
}

func TestLeadersReturnsEverySlot(t *testing.T) {
	ctx := context.Background()
	s := memdb.New()

	a := store.Achievement{Category: store.CategoryHighestScore, PlayerID: "dhruv", Points: 87}
	if err := s.CreateAchievement(ctx, &a); err != nil {
		t.Fatal(err)
	}

	leaders := Leaders(ctx, s, store.Cricket)
	if len(leaders) != len(Categories[store.Cricket]) {
		t.Fatalf("expected %d slots, got %d", len(Categories[store.Cricket]), len(leaders))
	}

	found := 0
	for _, l := range leaders {
		if l.Found {
			found++
			if l.Category != store.CategoryHighestScore {
				t.Errorf("unexpected leader in category %q", l.Category)
			}
		}
	}
	if found != 1 {
		t.Errorf("expected 1 populated slot, got %d", found)
	}
}
