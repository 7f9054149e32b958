package hostmatch

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/khelpoint/khelpoint/internal/store"
)

// HostMatch creates a match between two registered teams and initializes
// its zero-valued live score document, mirroring the admin "host match"
// action.
func HostMatch(ctx *Context) error {
	if ctx.Team1 == "" || ctx.Team2 == "" {
		return fmt.Errorf("HostMatch: both teams must be specified")
	}
	if !ctx.Sport.Valid() {
		return fmt.Errorf("HostMatch: unknown sport %q", ctx.Sport)
	}

	match := store.Match{
		Sport:        ctx.Sport,
		Stage:        "group",
		Team1ID:      ctx.Team1,
		Team2ID:      ctx.Team2,
		VenueID:      ctx.Venue,
		TournamentID: ctx.TournamentID,
		StartTime:    time.Now(),
		Status:       store.StatusScheduled,
		Officials: map[string]string{
			"admin":  ctx.Admin,
			"umpire": ctx.Umpire,
		},
		MaxInnings: 2,
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would create the following match:")
		log.Printf("%s vs %s (%s) at %s", match.Team1ID, match.Team2ID, match.Sport, match.VenueID)
		return nil
	}

	if err := ctx.Store.CreateMatch(ctx, &match); err != nil {
		return fmt.Errorf("HostMatch: error creating match: %w", err)
	}
	log.Printf("Created match %s", match.ID)

	ls := store.NewLiveScore(match.Sport, match.Team1ID, match.Team2ID, time.Now())
	if err := store.UpsertLiveScore(ctx, ctx.Store, match.ID, ls); err != nil {
		return fmt.Errorf("HostMatch: error initializing live score for match %s: %w", match.ID, err)
	}
	log.Printf("Initialized live score for match %s", match.ID)

	ctx.MatchID = match.ID
	return nil
}

// SetStatus advances a match's lifecycle status. Transitions are monotonic
// unless Force is set.
func SetStatus(ctx *Context) error {
	match, err := ctx.Store.GetMatch(ctx, ctx.MatchID)
	if err != nil {
		return fmt.Errorf("SetStatus: error getting match %s: %w", ctx.MatchID, err)
	}
	if !store.CanTransition(match.Status, ctx.Status) && !ctx.Force {
		return fmt.Errorf("SetStatus: illegal transition %s -> %s for match %s (use force to override)",
			match.Status, ctx.Status, ctx.MatchID)
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would set match %s status %s -> %s", ctx.MatchID, match.Status, ctx.Status)
		return nil
	}

	if err := ctx.Store.SetMatchStatus(ctx, ctx.MatchID, ctx.Status); err != nil {
		return fmt.Errorf("SetStatus: error updating match %s: %w", ctx.MatchID, err)
	}
	log.Printf("Match %s is now %s", ctx.MatchID, ctx.Status)
	return nil
}

// ListMatches prints matches, optionally filtered by status and sport.
func ListMatches(ctx *Context) error {
	matches, err := ctx.Store.ListMatches(ctx, store.MatchFilter{
		Status: ctx.Status,
		Sport:  ctx.Sport,
	})
	if err != nil {
		return fmt.Errorf("ListMatches: error listing matches: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Sport", "Team 1", "Team 2", "Venue", "Start", "Status"})
	for _, m := range matches {
		t.AppendRow(table.Row{m.ID, m.Sport, m.Team1ID, m.Team2ID, m.VenueID,
			m.StartTime.Format(time.RFC822), m.Status})
	}
	t.Render()
	return nil
}
