// Package seed loads a demo tournament into the store: teams, matches, live
// scores, and a handful of achievements. It is meant for development and
// staging, not production.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	progressbar "github.com/schollz/progressbar/v3"

	"github.com/khelpoint/khelpoint/internal/scoring"
	"github.com/khelpoint/khelpoint/internal/store"
)

type Context struct {
	context.Context

	DryRun     bool
	NoProgress bool

	Store store.Store
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}

type seedMatch struct {
	sport  store.Sport
	team1  string
	team2  string
	status string
}

var seedTeams = []store.Team{
	{Name: "Thunder XI", ShortName: "Thunder", Abbr: "THU"},
	{Name: "Lightning CC", ShortName: "Lightning", Abbr: "LTN"},
	{Name: "Raiders", Abbr: "RDR"},
	{Name: "Defenders", Abbr: "DEF"},
	{Name: "Spikers", Abbr: "SPK"},
	{Name: "Blockers", Abbr: "BLK"},
}

var seedMatches = []seedMatch{
	{store.Cricket, "Thunder XI", "Lightning CC", store.StatusOngoing},
	{store.Kabaddi, "Raiders", "Defenders", store.StatusOngoing},
	{store.Volleyball, "Spikers", "Blockers", store.StatusScheduled},
}

// Seed creates the demo data set. It is not idempotent: running it twice
// creates a second copy of everything.
func Seed(ctx *Context) error {
	if ctx.DryRun {
		log.Printf("DRY RUN: would create %d teams, %d matches with live scores, and a demo achievement set",
			len(seedTeams), len(seedMatches))
		return nil
	}

	steps := int64(1 + len(seedTeams) + len(seedMatches) + 3)
	var bar *progressbar.ProgressBar
	if ctx.NoProgress {
		bar = progressbar.NewOptions64(steps, progressbar.OptionSetVisibility(false))
	} else {
		bar = progressbar.Default(steps)
	}

	now := time.Now()

	tournament := store.Tournament{
		Title:     "Khel Point Demo Cup",
		Slug:      "khel-point-demo-cup",
		Sport:     store.Cricket,
		StartDate: now,
		Status:    store.StatusOngoing,
	}
	if err := ctx.Store.CreateTournament(ctx, &tournament); err != nil {
		return fmt.Errorf("Seed: error creating tournament: %w", err)
	}
	bar.Add(1)

	teamIDs := make(map[string]string, len(seedTeams))
	for _, team := range seedTeams {
		t := team
		if err := ctx.Store.CreateTeam(ctx, &t); err != nil {
			return fmt.Errorf("Seed: error creating team '%s': %w", t.Name, err)
		}
		teamIDs[t.Name] = t.ID
		bar.Add(1)
	}

	for _, sm := range seedMatches {
		m := store.Match{
			TournamentID: tournament.ID,
			Sport:        sm.sport,
			Stage:        "group",
			Team1ID:      teamIDs[sm.team1],
			Team2ID:      teamIDs[sm.team2],
			StartTime:    now.Add(time.Hour),
			Status:       sm.status,
		}
		if err := ctx.Store.CreateMatch(ctx, &m); err != nil {
			return fmt.Errorf("Seed: error creating match %s vs %s: %w", sm.team1, sm.team2, err)
		}
		if err := seedLiveScore(ctx, m, now); err != nil {
			return fmt.Errorf("Seed: error seeding live score for match %s: %w", m.ID, err)
		}
		bar.Add(1)
	}

	achievements := []store.Achievement{
		{Title: "Fifty off 30", Category: store.CategoryHighestScore, Sport: store.Cricket, PlayerID: "demo-batsman", Points: 56, AwardedAt: now},
		{Title: "Triple strike", Category: store.CategoryMostWickets, Sport: store.Cricket, PlayerID: "demo-bowler", Points: 3, AwardedAt: now},
		{Title: "Raid machine", Category: store.CategoryMostRaids, Sport: store.Kabaddi, PlayerID: "demo-raider", Points: 9, AwardedAt: now},
	}
	for _, a := range achievements {
		aa := a
		if err := ctx.Store.CreateAchievement(ctx, &aa); err != nil {
			return fmt.Errorf("Seed: error creating achievement '%s': %w", aa.Title, err)
		}
		bar.Add(1)
	}

	log.Printf("Seeded tournament %s with %d teams and %d matches", tournament.ID, len(seedTeams), len(seedMatches))
	return nil
}

func seedLiveScore(ctx *Context, m store.Match, now time.Time) error {
	var ls store.LiveScore
	switch m.Sport {
	case store.Cricket:
		tally := scoring.CricketTally{BattingTeamID: m.Team1ID, BowlingTeamID: m.Team2ID}
		for _, d := range []store.Delivery{
			{Runs: 4}, {Runs: 1}, {Runs: 0, Wicket: true}, {Runs: 2}, {Runs: 1, Extra: "WD"}, {Runs: 6},
		} {
			tally.Ball(d)
		}
		ls = tally.Build(now)
	case store.Kabaddi:
		tally := scoring.KabaddiTally{}
		tally.AddPoints("team1", 12)
		tally.AddPoints("team2", 9)
		tally.AddSuperTackle()
		tally.CreditPlayer("demo-raider", 7, 0)
		ls = tally.Build(now)
	case store.Volleyball:
		ls = store.NewLiveScore(store.Volleyball, "", "", now)
	}
	return store.UpsertLiveScore(ctx, ctx.Store, m.ID, ls)
}
