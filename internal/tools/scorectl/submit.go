// Package scorectl submits full-replacement score updates from the command
// line, one command per sport.
package scorectl

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/khelpoint/khelpoint/internal/scoring"
	"github.com/khelpoint/khelpoint/internal/store"
)

// SubmitCricket replaces a match's live score with the given cricket
// figures, then refreshes the match's denormalized scoreboard.
func SubmitCricket(ctx *Context) error {
	tally := scoring.CricketTally{Runs: ctx.Runs, Overs: ctx.Overs, Target: ctx.Target}
	for i := 0; i < ctx.Wickets; i++ {
		tally.AddWicket()
	}
	ls := tally.Build(time.Now())

	summary := fmt.Sprintf("%d/%d (%s ov)", ctx.Runs, tally.Wickets, scoring.FormatOvers(ctx.Overs))
	sb := store.Scoreboard{
		Sport:          store.Cricket,
		DisplaySummary: summary,
		Team1Score:     ctx.Runs,
		PeriodBreakdown: map[string]int{
			"innings 1": ctx.Runs,
		},
	}
	return submit(ctx, ls, sb)
}

// SubmitKabaddi replaces a match's live score with the given kabaddi
// points.
func SubmitKabaddi(ctx *Context) error {
	tally := scoring.KabaddiTally{
		Team1:        ctx.Team1Points,
		Team2:        ctx.Team2Points,
		SuperTackles: ctx.SuperTackles,
	}
	ls := tally.Build(time.Now())

	sb := store.Scoreboard{
		Sport:          store.Kabaddi,
		DisplaySummary: fmt.Sprintf("%d - %d", ctx.Team1Points, ctx.Team2Points),
		Team1Score:     ctx.Team1Points,
		Team2Score:     ctx.Team2Points,
	}
	return submit(ctx, ls, sb)
}

// SubmitVolleyball replaces a match's live score with the given set scores.
func SubmitVolleyball(ctx *Context) error {
	if len(ctx.Sets) == 0 {
		return fmt.Errorf("SubmitVolleyball: at least one set score is required")
	}
	tally := scoring.NewVolleyballTally()
	for i, spec := range ctx.Sets {
		t1, t2, err := parseSetScore(spec)
		if err != nil {
			return fmt.Errorf("SubmitVolleyball: %w", err)
		}
		tally.Team1, tally.Team2 = t1, t2
		if i < len(ctx.Sets)-1 {
			tally.CloseSet()
		}
	}
	ls := tally.Build(time.Now())

	setsWon1, setsWon2 := 0, 0
	breakdown := make(map[string]int, len(ls.Sets))
	for i, set := range ls.Sets {
		breakdown[fmt.Sprintf("set %d", i+1)] = set.ScoreTeam1 + set.ScoreTeam2
		switch set.Winner {
		case "team1":
			setsWon1++
		case "team2":
			setsWon2++
		}
	}
	sb := store.Scoreboard{
		Sport:           store.Volleyball,
		DisplaySummary:  fmt.Sprintf("sets %d - %d", setsWon1, setsWon2),
		Team1Score:      setsWon1,
		Team2Score:      setsWon2,
		PeriodBreakdown: breakdown,
	}
	return submit(ctx, ls, sb)
}

func submit(ctx *Context, ls store.LiveScore, sb store.Scoreboard) error {
	if ctx.MatchID == "" {
		return fmt.Errorf("submit: match ID is required")
	}
	if ctx.DryRun {
		log.Printf("DRY RUN: would replace live score for match %s:", ctx.MatchID)
		log.Printf("%+v", ls)
		return nil
	}
	if err := store.UpsertLiveScore(ctx, ctx.Store, ctx.MatchID, ls); err != nil {
		return fmt.Errorf("submit: error writing live score for match %s: %w", ctx.MatchID, err)
	}
	if err := store.UpsertScoreboard(ctx, ctx.Store, ctx.MatchID, sb); err != nil {
		return fmt.Errorf("submit: error writing scoreboard for match %s: %w", ctx.MatchID, err)
	}
	log.Printf("Updated live score for match %s", ctx.MatchID)
	return nil
}

func parseSetScore(spec string) (int, int, error) {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("set score %q is not of the form T1-T2", spec)
	}
	t1, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("set score %q: %w", spec, err)
	}
	t2, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("set score %q: %w", spec, err)
	}
	return t1, t2, nil
}
