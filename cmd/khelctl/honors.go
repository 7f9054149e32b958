package main

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/tools/awards"
)

type awardCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	Title       string `arg:"" help:"Achievement title." required:""`
	Category    string `arg:"" help:"Achievement category (e.g. highest_score)." required:""`
	Points      int    `arg:"" help:"Point value used for leaderboard ranking." required:""`
	Description string `help:"Longer description."`
	Sport       string `help:"Sport the achievement belongs to."`
	Player      string `help:"Player the achievement belongs to."`
	Team        string `help:"Team the achievement belongs to."`
	Match       string `help:"Match the achievement was earned in."`
	Badge       string `help:"Local badge image to upload." type:"existingfile"`
	BadgeDest   string `help:"Badge destination: a gs:// URL or a directory."`
}

func (a *awardCmd) Run(g *globalCmd) error {
	ctx := awards.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.Title = a.Title
	ctx.Description = a.Description
	ctx.Category = a.Category
	ctx.Sport = store.Sport(a.Sport)
	ctx.PlayerID = a.Player
	ctx.TeamID = a.Team
	ctx.MatchID = a.Match
	ctx.Points = a.Points
	ctx.BadgeFile = a.Badge
	ctx.BadgeDest = a.BadgeDest
	return awards.Award(ctx)
}

type lsAchievementsCmd struct {
	Category string `help:"Restrict to one category."`
	Player   string `help:"Restrict to one player."`
	Team     string `help:"Restrict to one team."`
}

func (a *lsAchievementsCmd) Run(g *globalCmd) error {
	ctx := awards.NewContext(context.Background())
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.Category = a.Category
	ctx.PlayerID = a.Player
	ctx.TeamID = a.Team
	return awards.Ls(ctx)
}

type leadersCmd struct {
	Sport string `arg:"" help:"Sport to show the leaderboard for." required:""`
}

func (a *leadersCmd) Run(g *globalCmd) error {
	ctx := awards.NewContext(context.Background())
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.Sport = store.Sport(a.Sport)
	return awards.Leaders(ctx)
}
