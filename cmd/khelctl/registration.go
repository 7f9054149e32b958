package main

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/tools/registrations"
)

type addRegistrationCmd struct {
	DryRun bool `help:"Validate and print, but do not write."`

	Team    string                     `arg:"" help:"Team name." required:""`
	Sport   string                     `arg:"" help:"Sport to register for." required:""`
	Players []registrations.PlayerSpec `arg:"" help:"Players in name[:role[:captain]] format." required:""`
	Manager string                     `help:"Manager's name."`
	Email   string                     `help:"Manager's email." required:""`
	Phone   string                     `help:"Manager's phone number."`
}

func (a *addRegistrationCmd) Run(g *globalCmd) error {
	ctx := registrations.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.TeamName = a.Team
	ctx.ManagerName = a.Manager
	ctx.ManagerEmail = a.Email
	ctx.ManagerPhone = a.Phone
	ctx.Sport = store.Sport(a.Sport)
	ctx.Players = a.Players
	return registrations.Add(ctx)
}

type lsRegistrationsCmd struct {
	Status string `help:"Restrict to one status (pending, approved, rejected)."`
}

func (a *lsRegistrationsCmd) Run(g *globalCmd) error {
	ctx := registrations.NewContext(context.Background())
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.Status = a.Status
	return registrations.Ls(ctx)
}

type approveRegistrationCmd struct {
	Force  bool `help:"Do not ask for confirmation." xor:"Force,DryRun"`
	DryRun bool `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`

	ID string `arg:"" help:"Registration ID." required:""`
}

func (a *approveRegistrationCmd) Run(g *globalCmd) error {
	ctx := registrations.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.RegistrationID = a.ID
	return registrations.Approve(ctx)
}

type rejectRegistrationCmd struct {
	Force  bool `help:"Do not ask for confirmation." xor:"Force,DryRun"`
	DryRun bool `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`

	ID string `arg:"" help:"Registration ID." required:""`
}

func (a *rejectRegistrationCmd) Run(g *globalCmd) error {
	ctx := registrations.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	var err error
	ctx.Store, err = g.openStore(ctx.Context)
	if err != nil {
		return err
	}
	ctx.RegistrationID = a.ID
	return registrations.Reject(ctx)
}
