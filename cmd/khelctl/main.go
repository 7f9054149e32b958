package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/store/fsdb"
)

type globalCmd struct {
	ProjectID   string            `help:"GCP project ID." env:"GCP_PROJECT" required:""`
	Collections map[string]string `help:"Collection name overrides, as logical=actual pairs."`
}

func (g *globalCmd) openStore(ctx context.Context) (store.Store, error) {
	return fsdb.New(ctx, g.ProjectID, store.Collections(g.Collections))
}

var CLI struct {
	globalCmd

	Match struct {
		Host   hostMatchCmd   `cmd:"" help:"Create a match with an empty live score."`
		Status matchStatusCmd `cmd:"" help:"Change a match's lifecycle status."`
		Ls     lsMatchesCmd   `cmd:"" help:"List matches."`
	} `cmd:""`

	Score struct {
		Cricket    cricketScoreCmd    `cmd:"" help:"Replace a cricket match's live score."`
		Kabaddi    kabaddiScoreCmd    `cmd:"" help:"Replace a kabaddi match's live score."`
		Volleyball volleyballScoreCmd `cmd:"" help:"Replace a volleyball match's live score."`
	} `cmd:""`

	Registration struct {
		Add     addRegistrationCmd     `cmd:"" help:"Register a team on its behalf."`
		Ls      lsRegistrationsCmd     `cmd:"" help:"List registrations."`
		Approve approveRegistrationCmd `cmd:"" help:"Approve a pending registration."`
		Reject  rejectRegistrationCmd  `cmd:"" help:"Reject a pending registration."`
	} `cmd:""`

	Honors struct {
		Award   awardCmd   `cmd:"" help:"Award an achievement."`
		Ls      lsAchievementsCmd `cmd:"" help:"List achievements."`
		Leaders leadersCmd `cmd:"" help:"Show the leaderboard for a sport."`
	} `cmd:""`

	Export struct {
		Registrations exportRegistrationsCmd `cmd:"" help:"Export registrations to an Excel workbook."`
		Scoreboards   exportScoreboardsCmd   `cmd:"" help:"Export match scoreboards to an Excel workbook."`
	} `cmd:""`

	Seed seedCmd `cmd:"" help:"Load demo data into the store."`
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
