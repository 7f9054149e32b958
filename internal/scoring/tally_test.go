package scoring

import (
	"testing"
	"time"

	"github.com/khelpoint/khelpoint/internal/store"
)

func TestCricketTallyWicketClamp(t *testing.T) {
	tally := CricketTally{}
	for i := 0; i < 15; i++ {
		tally.AddWicket()
	}
	if tally.Wickets != MaxWickets {
		t.Errorf("expected %d, got %d", MaxWickets, tally.Wickets)
	}
}

func TestCricketTallyIgnoresNegativeRuns(t *testing.T) {
	tally := CricketTally{}
	tally.AddRuns(4)
	tally.AddRuns(-2)
	if tally.Runs != 4 {
		t.Errorf("expected 4, got %d", tally.Runs)
	}
}

func TestCricketTallyBall(t *testing.T) {
	tally := CricketTally{}
	deliveries := []store.Delivery{
		{Runs: 4},
		{Runs: 1, Extra: "WD"},
		{Runs: 0, Wicket: true},
		{Runs: 2},
		{Runs: 1, Extra: "NB"},
		{Runs: 6},
	}
	for _, d := range deliveries {
		tally.Ball(d)
	}
	if tally.Runs != 14 {
		t.Errorf("expected 14 runs, got %d", tally.Runs)
	}
	if tally.Wickets != 1 {
		t.Errorf("expected 1 wicket, got %d", tally.Wickets)
	}
	// 4 legal balls out of 6: extras do not advance the over.
	if got := FormatOvers(tally.Overs); got != "0.4" {
		t.Errorf("expected 0.4 overs, got %s", got)
	}
}

func TestCricketTallyBuildDefaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	tally := CricketTally{Runs: 142, BattingTeamID: "t1", BowlingTeamID: "t2", Target: 180}
	for i := 0; i < 3; i++ {
		tally.AddWicket()
	}
	ls := tally.Build(now)

	if ls.Sport != store.Cricket {
		t.Errorf("expected %v, got %v", store.Cricket, ls.Sport)
	}
	if ls.CurrentBowler != nil {
		t.Errorf("expected no current bowler, got %v", *ls.CurrentBowler)
	}
	if ls.CurrentBatsmen == nil || len(ls.CurrentBatsmen) != 0 {
		t.Errorf("expected empty batsmen list, got %v", ls.CurrentBatsmen)
	}
	if ls.RecentDeliveries == nil {
		t.Error("expected empty delivery list, got nil")
	}
	if !ls.UpdatedAt.Equal(now) {
		t.Errorf("expected %v, got %v", now, ls.UpdatedAt)
	}
	if len(ls.Innings) != 1 {
		t.Fatalf("expected 1 innings summary, got %d", len(ls.Innings))
	}
	if ls.Innings[0].Runs != 142 || ls.Innings[0].Wickets != 3 {
		t.Errorf("expected 142/3, got %d/%d", ls.Innings[0].Runs, ls.Innings[0].Wickets)
	}
}

func TestResumeCricket(t *testing.T) {
	tally := CricketTally{BattingTeamID: "t1", BowlingTeamID: "t2"}
	tally.Ball(store.Delivery{Runs: 4})
	tally.Ball(store.Delivery{Runs: 0, Wicket: true})
	ls := tally.Build(time.Now())

	resumed := ResumeCricket(ls)
	if resumed.Runs != 4 || resumed.Wickets != 1 {
		t.Errorf("expected 4/1, got %d/%d", resumed.Runs, resumed.Wickets)
	}
	resumed.Ball(store.Delivery{Runs: 6})
	if resumed.Runs != 10 {
		t.Errorf("expected 10, got %d", resumed.Runs)
	}
	if got := FormatOvers(resumed.Overs); got != "0.3" {
		t.Errorf("expected 0.3 overs, got %s", got)
	}
}

func TestResumeCricketNoInningsSummary(t *testing.T) {
	ls := store.LiveScore{
		Sport:     store.Cricket,
		TotalRuns: 7,
		RecentDeliveries: []store.Delivery{
			{Runs: 4},
			{Runs: 1, Extra: "WD"},
			{Runs: 2, Wicket: true},
		},
	}
	resumed := ResumeCricket(ls)
	if resumed.Wickets != 1 {
		t.Errorf("expected 1 wicket, got %d", resumed.Wickets)
	}
	if got := FormatOvers(resumed.Overs); got != "0.2" {
		t.Errorf("expected 0.2 overs, got %s", got)
	}
}

func TestKabaddiTally(t *testing.T) {
	tally := KabaddiTally{}
	tally.AddPoints("team1", 12)
	tally.AddPoints("team2", 9)
	tally.AddPoints("team3", 99)
	tally.AddPoints("team1", -5)
	tally.AddSuperTackle()
	tally.CreditPlayer("asha", 3, 1)
	tally.CreditPlayer("asha", 2, 0)

	ls := tally.Build(time.Now())
	if ls.TeamScores == nil {
		t.Fatal("expected team scores, got nil")
	}
	if ls.TeamScores.Team1 != 12 || ls.TeamScores.Team2 != 9 {
		t.Errorf("expected 12-9, got %d-%d", ls.TeamScores.Team1, ls.TeamScores.Team2)
	}
	if ls.SuperTackles != 1 {
		t.Errorf("expected 1 super tackle, got %d", ls.SuperTackles)
	}
	if len(ls.PlayerPoints) != 1 {
		t.Fatalf("expected 1 player entry, got %d", len(ls.PlayerPoints))
	}
	if ls.PlayerPoints[0].RaidPoints != 5 || ls.PlayerPoints[0].TacklePoints != 1 {
		t.Errorf("expected raid 5 tackle 1, got raid %d tackle %d",
			ls.PlayerPoints[0].RaidPoints, ls.PlayerPoints[0].TacklePoints)
	}
}

func TestVolleyballSetPointClamp(t *testing.T) {
	tally := NewVolleyballTally()
	for i := 0; i < 40; i++ {
		tally.AddPoint("team1")
	}
	if tally.Team1 != MaxSetPoints {
		t.Errorf("expected %d, got %d", MaxSetPoints, tally.Team1)
	}
}

func TestVolleyballBuild(t *testing.T) {
	tally := NewVolleyballTally()
	for i := 0; i < 25; i++ {
		tally.AddPoint("team1")
	}
	for i := 0; i < 20; i++ {
		tally.AddPoint("team2")
	}
	tally.CloseSet()
	tally.AddPoint("team2")
	tally.Timeout("team1")

	ls := tally.Build(time.Now())
	if len(ls.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(ls.Sets))
	}
	if ls.Sets[0].Winner != "team1" {
		t.Errorf("expected team1 won set 1, got %q", ls.Sets[0].Winner)
	}
	if ls.Sets[1].Winner != "" {
		t.Errorf("expected no winner for the set in play, got %q", ls.Sets[1].Winner)
	}
	if ls.Sets[1].ScoreTeam2 != 1 {
		t.Errorf("expected 1, got %d", ls.Sets[1].ScoreTeam2)
	}
	if ls.CurrentSet != 2 {
		t.Errorf("expected current set 2, got %d", ls.CurrentSet)
	}
	if ls.Timeouts == nil || ls.Timeouts.Team1 != 1 {
		t.Errorf("expected 1 timeout for team 1, got %v", ls.Timeouts)
	}
}
