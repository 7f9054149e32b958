package main

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/tools/scorectl"
)

type cricketScoreCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	Match   string  `arg:"" help:"Match ID." required:""`
	Runs    int     `arg:"" help:"Total runs." required:""`
	Wickets int     `arg:"" help:"Wickets fallen." required:""`
	Overs   float64 `arg:"" help:"Overs bowled, in O.B notation (e.g. 15.2)." required:""`
	Target  int     `help:"Chase target, if in the second innings."`
}

func (a *cricketScoreCmd) Run(g *globalCmd) error {
	ctx := scorectl.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.MatchID = a.Match
	ctx.Runs = a.Runs
	ctx.Wickets = a.Wickets
	ctx.Overs = a.Overs
	ctx.Target = a.Target
	return scorectl.SubmitCricket(ctx)
}

type kabaddiScoreCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	Match        string `arg:"" help:"Match ID." required:""`
	Team1        int    `arg:"" help:"Team 1 points." required:""`
	Team2        int    `arg:"" help:"Team 2 points." required:""`
	SuperTackles int    `help:"Super tackle count."`
}

func (a *kabaddiScoreCmd) Run(g *globalCmd) error {
	ctx := scorectl.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.MatchID = a.Match
	ctx.Team1Points = a.Team1
	ctx.Team2Points = a.Team2
	ctx.SuperTackles = a.SuperTackles
	return scorectl.SubmitKabaddi(ctx)
}

type volleyballScoreCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	Match string   `arg:"" help:"Match ID." required:""`
	Sets  []string `arg:"" help:"Set scores as T1-T2 pairs in playing order; the last is the set in play." required:""`
}

func (a *volleyballScoreCmd) Run(g *globalCmd) error {
	ctx := scorectl.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.MatchID = a.Match
	ctx.Sets = a.Sets
	return scorectl.SubmitVolleyball(ctx)
}
