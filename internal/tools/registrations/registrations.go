// Package registrations manages team registrations from the command line:
// adding them on a team's behalf, listing them, and moving them through the
// approval workflow.
package registrations

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/khelpoint/khelpoint/internal/register"
	"github.com/khelpoint/khelpoint/internal/store"
)

// PlayerSpec is a player given on the command line as "name", "name:role",
// or "name:role:captain".
type PlayerSpec store.Player

// UnmarshalText implements the TextUnmarshaler interface
func (p *PlayerSpec) UnmarshalText(text []byte) error {
	splits := strings.Split(string(text), ":")
	if len(splits) > 3 {
		return fmt.Errorf("too many fields for player: expected <= 3, got %d", len(splits))
	}
	name := strings.TrimSpace(splits[0])
	if name == "" {
		return fmt.Errorf("player name is required")
	}
	role := "player"
	if len(splits) > 1 && splits[1] != "" {
		role = splits[1]
	}
	captain := false
	if len(splits) > 2 && splits[2] != "" {
		switch strings.ToLower(splits[2]) {
		case "captain", "c", "true":
			captain = true
		default:
			return fmt.Errorf("unrecognized captain flag '%s': use \"captain\"", splits[2])
		}
	}

	p.Name = name
	p.Role = role
	p.IsCaptain = captain
	return nil
}

// Add submits a registration on a team's behalf, running the same
// validation the public form does.
func Add(ctx *Context) error {
	players := make([]store.Player, len(ctx.Players))
	for i, p := range ctx.Players {
		players[i] = store.Player(p)
	}
	form := register.Form{
		TeamName:     ctx.TeamName,
		ManagerName:  ctx.ManagerName,
		ManagerEmail: ctx.ManagerEmail,
		ManagerPhone: ctx.ManagerPhone,
		Sport:        ctx.Sport,
		Players:      players,
	}

	if ctx.DryRun {
		if err := form.Validate(); err != nil {
			return fmt.Errorf("Add: %w", err)
		}
		log.Printf("DRY RUN: would register team '%s' (%s) with the following players:", ctx.TeamName, ctx.Sport)
		for _, p := range players {
			log.Printf("%s (%s)", p.Name, p.Role)
		}
		return nil
	}

	reg, err := register.Submit(ctx, ctx.Store, form, time.Now())
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	ctx.RegistrationID = reg.ID
	log.Printf("Created registration %s for team '%s'", reg.ID, reg.Name)
	return nil
}

// Ls prints all registrations, newest first.
func Ls(ctx *Context) error {
	regs, err := ctx.Store.ListRegistrations(ctx, ctx.Status)
	if err != nil {
		return fmt.Errorf("Ls: error listing registrations: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Team", "Sport", "Captain", "Players", "Status", "Registered"})
	for _, reg := range regs {
		t.AppendRow(table.Row{reg.ID, reg.Name, reg.Sport, reg.Captain, len(reg.Players), reg.Status, reg.RegisteredAt.Format("2006/01/02")})
	}
	t.Render()
	return nil
}

// Approve marks a pending registration approved. Rejections and approvals
// are final, so the user is asked to confirm unless Force is set.
func Approve(ctx *Context) error {
	return setStatus(ctx, store.RegistrationApproved)
}

// Reject marks a pending registration rejected.
func Reject(ctx *Context) error {
	return setStatus(ctx, store.RegistrationRejected)
}

func setStatus(ctx *Context, to string) error {
	reg, err := ctx.Store.GetRegistration(ctx, ctx.RegistrationID)
	if err != nil {
		return fmt.Errorf("setStatus: error getting registration %s: %w", ctx.RegistrationID, err)
	}
	if reg.Status != store.RegistrationPending {
		return fmt.Errorf("setStatus: registration %s is already %s", ctx.RegistrationID, reg.Status)
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would mark registration %s (team '%s') %s", reg.ID, reg.Name, to)
		return nil
	}

	if !ctx.Force {
		ok := false
		q := &survey.Confirm{
			Message: fmt.Sprintf("Mark registration for team '%s' %s?", reg.Name, to),
		}
		if err := survey.AskOne(q, &ok); err != nil {
			return fmt.Errorf("setStatus: error asking for confirmation: %w", err)
		}
		if !ok {
			log.Print("Canceled")
			return nil
		}
	}

	if err := ctx.Store.SetRegistrationStatus(ctx, reg.ID, to); err != nil {
		return fmt.Errorf("setStatus: error updating registration %s: %w", reg.ID, err)
	}
	log.Printf("Registration %s is now %s", reg.ID, to)
	return nil
}
