package main

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/tools/hostmatch"
)

type hostMatchCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	Sport      string `arg:"" help:"Sport of the match (cricket, kabaddi, volleyball)." required:""`
	Team1      string `arg:"" help:"First team's ID." required:""`
	Team2      string `arg:"" help:"Second team's ID." required:""`
	Venue      string `help:"Venue ID."`
	Tournament string `help:"Tournament ID the match belongs to."`
	Admin      string `help:"Administering official's name."`
	Umpire     string `help:"Umpire or referee's name."`
}

func (a *hostMatchCmd) Run(g *globalCmd) error {
	ctx := hostmatch.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.Sport = store.Sport(a.Sport)
	ctx.Team1 = a.Team1
	ctx.Team2 = a.Team2
	ctx.Venue = a.Venue
	ctx.TournamentID = a.Tournament
	ctx.Admin = a.Admin
	ctx.Umpire = a.Umpire
	return hostmatch.HostMatch(ctx)
}

type matchStatusCmd struct {
	Force  bool `help:"Skip the lifecycle transition check." xor:"Force,DryRun"`
	DryRun bool `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`

	Match  string `arg:"" help:"Match ID." required:""`
	Status string `arg:"" help:"New status (scheduled, ongoing, completed)." required:""`
}

func (a *matchStatusCmd) Run(g *globalCmd) error {
	ctx := hostmatch.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.MatchID = a.Match
	ctx.Status = a.Status
	return hostmatch.SetStatus(ctx)
}

type lsMatchesCmd struct {
	Sport  string `help:"Restrict to one sport."`
	Status string `help:"Restrict to one status."`
}

func (a *lsMatchesCmd) Run(g *globalCmd) error {
	ctx := hostmatch.NewContext(context.Background())
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.Sport = store.Sport(a.Sport)
	ctx.Status = a.Status
	return hostmatch.ListMatches(ctx)
}
