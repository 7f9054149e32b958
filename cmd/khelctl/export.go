package main

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/tools/export"
)

type exportRegistrationsCmd struct {
	Output string `arg:"" help:"Output file name or gs:// URL." required:""`
	Status string `help:"Restrict to one status."`
}

func (a *exportRegistrationsCmd) Run(g *globalCmd) error {
	ctx := export.NewContext(context.Background())
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.Output = a.Output
	ctx.Status = a.Status
	return export.ExportRegistrations(ctx)
}

type exportScoreboardsCmd struct {
	Output string `arg:"" help:"Output file name or gs:// URL." required:""`
	Sport  string `help:"Restrict to one sport."`
	Status string `help:"Restrict to one status."`
}

func (a *exportScoreboardsCmd) Run(g *globalCmd) error {
	ctx := export.NewContext(context.Background())
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.Output = a.Output
	ctx.Sport = store.Sport(a.Sport)
	ctx.Status = a.Status
	return export.ExportScoreboards(ctx)
}
