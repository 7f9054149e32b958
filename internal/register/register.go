// Package register validates and submits team registrations.
package register

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/khelpoint/khelpoint/internal/store"
)

// ValidationError is a client-side rejection of a registration form. It
// blocks the submission before anything reaches the store.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// Form is the raw registration input before validation.
type Form struct {
	TeamName     string
	ManagerName  string
	ManagerEmail string
	ManagerPhone string
	Sport        store.Sport
	Players      []store.Player
}

// Validate checks required fields: a team name, a manager email, at least
// one named player, and at most one captain flag.
func (f Form) Validate() error {
	if strings.TrimSpace(f.TeamName) == "" {
		return ValidationError("team name is required")
	}
	if strings.TrimSpace(f.ManagerEmail) == "" {
		return ValidationError("manager email is required")
	}
	named := 0
	captains := 0
	for _, p := range f.Players {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		named++
		if p.IsCaptain {
			captains++
		}
	}
	if named == 0 {
		return ValidationError("at least one player is required")
	}
	if captains > 1 {
		return ValidationError("at most one player may be captain")
	}
	if f.Sport != "" && !f.Sport.Valid() {
		return ValidationError(fmt.Sprintf("unknown sport %q", f.Sport))
	}
	return nil
}

// Submit validates the form and creates a pending registration. A
// ValidationError never reaches the store; any store failure is returned
// unretried for the user to resubmit.
func Submit(ctx context.Context, s store.Store, f Form, now time.Time) (store.Registration, error) {
	if err := f.Validate(); err != nil {
		return store.Registration{}, err
	}

	players := make([]store.Player, 0, len(f.Players))
	captain := ""
	for _, p := range f.Players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		role := p.Role
		if role == "" {
			role = "player"
		}
		players = append(players, store.Player{Name: name, Role: role, IsCaptain: p.IsCaptain})
		if p.IsCaptain {
			captain = name
		}
	}
	if captain == "" {
		captain = players[0].Name
	}

	sport := f.Sport
	if sport == "" {
		sport = store.Cricket
	}

	reg := store.Registration{
		Name:         strings.TrimSpace(f.TeamName),
		Email:        strings.TrimSpace(f.ManagerEmail),
		Phone:        strings.TrimSpace(f.ManagerPhone),
		Role:         "manager",
		Sport:        sport,
		TeamID:       Slug(f.TeamName),
		Players:      players,
		Captain:      captain,
		Status:       store.RegistrationPending,
		RegisteredAt: now,
	}
	if err := s.CreateRegistration(ctx, &reg); err != nil {
		return store.Registration{}, fmt.Errorf("Submit: error creating registration: %w", err)
	}
	return reg, nil
}

// Slug lowercases a name and joins its words with hyphens.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}
