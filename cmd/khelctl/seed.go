package main

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/tools/seed"
)

type seedCmd struct {
	DryRun     bool `help:"Print what would be created and exit without writing."`
	NoProgress bool `help:"Do not show a progress bar."`
}

func (a *seedCmd) Run(g *globalCmd) error {
	ctx := seed.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.NoProgress = a.NoProgress
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	return seed.Seed(ctx)
}
