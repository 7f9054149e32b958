package scoring

import (
	"testing"

	"github.com/khelpoint/khelpoint/internal/store"
)

func TestRenderEmptyCricketDocument(t *testing.T) {
	v := Render(store.Match{Sport: store.Cricket}, store.LiveScore{})

	if v.Runs != "0" {
		t.Errorf("expected %q, got %q", "0", v.Runs)
	}
	if v.Wickets != "0" {
		t.Errorf("expected %q, got %q", "0", v.Wickets)
	}
	if v.Overs != "0.0" {
		t.Errorf("expected %q, got %q", "0.0", v.Overs)
	}
	if v.BattingTeam != "Team 1" || v.BowlingTeam != "Team 2" {
		t.Errorf("expected placeholder team names, got %q and %q", v.BattingTeam, v.BowlingTeam)
	}
}

func TestRenderDispatchFallsBackToMatchSport(t *testing.T) {
	v := Render(store.Match{Sport: store.Kabaddi}, store.LiveScore{})
	if v.Sport != store.Kabaddi {
		t.Errorf("expected %v, got %v", store.Kabaddi, v.Sport)
	}
	if v.Team1Points != "0" || v.Team2Points != "0" {
		t.Errorf("expected 0-0, got %s-%s", v.Team1Points, v.Team2Points)
	}
}

func TestRenderDocumentSportWins(t *testing.T) {
	v := Render(store.Match{Sport: store.Cricket}, store.LiveScore{Sport: store.Volleyball})
	if v.Sport != store.Volleyball {
		t.Errorf("expected %v, got %v", store.Volleyball, v.Sport)
	}
}

func TestRenderCricket(t *testing.T) {
	ls := store.LiveScore{
		Sport:         store.Cricket,
		Status:        "live",
		TotalRuns:     142,
		Target:        180,
		BattingTeamID: "Thunder XI",
		BowlingTeamID: "Lightning CC",
		CurrentBatsmen: []store.Batsman{
			{Name: "Dhruv", Runs: 61},
		},
		Innings: []store.InningsSummary{
			{Runs: 142, Wickets: 3, Overs: 15.2},
		},
	}
	v := Render(store.Match{}, ls)

	if !v.Live {
		t.Error("expected live")
	}
	if v.Runs != "142" || v.Wickets != "3" || v.Overs != "15.2" {
		t.Errorf("expected 142/3 (15.2), got %s/%s (%s)", v.Runs, v.Wickets, v.Overs)
	}
	if v.Target != "180" || v.Required != "38" {
		t.Errorf("expected target 180 required 38, got %s and %s", v.Target, v.Required)
	}
	if len(v.Batsmen) != 1 || v.Batsmen[0] != "Dhruv (61)" {
		t.Errorf("unexpected batsmen: %v", v.Batsmen)
	}
	if v.Summary() != "142/3 (15.2 ov)" {
		t.Errorf("unexpected summary: %q", v.Summary())
	}
}

func TestRenderCricketChaseComplete(t *testing.T) {
	ls := store.LiveScore{Sport: store.Cricket, TotalRuns: 185, Target: 180}
	v := Render(store.Match{}, ls)
	if v.Required != "0" {
		t.Errorf("expected required 0, got %s", v.Required)
	}
}

func TestRenderVolleyball(t *testing.T) {
	ls := store.LiveScore{
		Sport: store.Volleyball,
		Sets: []store.SetScore{
			{ScoreTeam1: 25, ScoreTeam2: 20, Winner: "team1"},
			{ScoreTeam1: 12, ScoreTeam2: 14},
		},
		CurrentSet: 2,
		Timeouts:   &store.Timeouts{Team1: 1},
	}
	v := Render(store.Match{}, ls)

	if len(v.Sets) != 2 {
		t.Fatalf("expected 2 set lines, got %d", len(v.Sets))
	}
	if v.Sets[0] != "Set 1: 25 - 20 (team1 won)" {
		t.Errorf("unexpected set line: %q", v.Sets[0])
	}
	if v.CurrentSet != "2" {
		t.Errorf("expected current set 2, got %s", v.CurrentSet)
	}
	if v.Timeouts != "Team 1: 1 | Team 2: 0" {
		t.Errorf("unexpected timeouts: %q", v.Timeouts)
	}
}

func TestRenderVolleyballEmptyDocument(t *testing.T) {
	v := Render(store.Match{Sport: store.Volleyball}, store.LiveScore{})
	if v.CurrentSet != "1" {
		t.Errorf("expected current set 1, got %s", v.CurrentSet)
	}
	if v.Timeouts != "Team 1: 0 | Team 2: 0" {
		t.Errorf("unexpected timeouts: %q", v.Timeouts)
	}
}
