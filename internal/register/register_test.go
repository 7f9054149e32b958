package register

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/store/memdb"
)

func TestValidate(t *testing.T) {
	valid := Form{
		TeamName:     "Thunder XI",
		ManagerEmail: "coach@example.com",
		Players:      []store.Player{{Name: "Asha"}},
	}

	cases := []struct {
		name   string
		mutate func(*Form)
		ok     bool
	}{
		{"valid", func(f *Form) {}, true},
		{"missing team name", func(f *Form) { f.TeamName = "  " }, false},
		{"missing email", func(f *Form) { f.ManagerEmail = "" }, false},
		{"no players", func(f *Form) { f.Players = nil }, false},
		{"blank player names only", func(f *Form) { f.Players = []store.Player{{Name: "  "}} }, false},
		{"two captains", func(f *Form) {
			f.Players = []store.Player{
				{Name: "Asha", IsCaptain: true},
				{Name: "Binod", IsCaptain: true},
			}
		}, false},
		{"one captain", func(f *Form) {
			f.Players = []store.Player{
				{Name: "Asha", IsCaptain: true},
				{Name: "Binod"},
			}
		}, true},
		{"unknown sport", func(f *Form) { f.Sport = "chess" }, false},
		{"known sport", func(f *Form) { f.Sport = store.Volleyball }, true},
	}

	for _, c := range cases {
		f := valid
		c.mutate(&f)
		err := f.Validate()
		if c.ok && err != nil {
			t.Errorf("%s: expected no error, got %v", c.name, err)
		}
		if !c.ok {
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("%s: expected a ValidationError, got %v", c.name, err)
			}
		}
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	s := memdb.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	f := Form{
		TeamName:     "  Thunder XI ",
		ManagerEmail: " coach@example.com ",
		Sport:        store.Cricket,
		Players: []store.Player{
			{Name: " Asha "},
			{Name: "Binod", Role: "keeper", IsCaptain: true},
			{Name: "   "},
		},
	}

	reg, err := Submit(ctx, s, f, now)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if reg.ID == "" {
		t.Error("expected an ID")
	}
	if reg.Name != "Thunder XI" {
		t.Errorf("expected trimmed name, got %q", reg.Name)
	}
	if reg.TeamID != "thunder-xi" {
		t.Errorf("expected slug thunder-xi, got %q", reg.TeamID)
	}
	if len(reg.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(reg.Players))
	}
	if reg.Players[0].Role != "player" {
		t.Errorf("expected default role, got %q", reg.Players[0].Role)
	}
	if reg.Captain != "Binod" {
		t.Errorf("expected captain Binod, got %q", reg.Captain)
	}
	if reg.Status != store.RegistrationPending {
		t.Errorf("expected pending, got %q", reg.Status)
	}
}

func TestSubmitDefaultsCaptainToFirstPlayer(t *testing.T) {
	ctx := context.Background()
	s := memdb.New()

	f := Form{
		TeamName:     "Spikers",
		ManagerEmail: "m@example.com",
		Players:      []store.Player{{Name: "Asha"}, {Name: "Binod"}},
	}
	reg, err := Submit(ctx, s, f, time.Now())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if reg.Captain != "Asha" {
		t.Errorf("expected Asha, got %q", reg.Captain)
	}
}

func TestSubmitRejectsInvalidWithoutWriting(t *testing.T) {
	ctx := context.Background()
	s := memdb.New()

	_, err := Submit(ctx, s, Form{}, time.Now())
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}

	regs, err := s.ListRegistrations(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(regs) != 0 {
		t.Errorf("expected no registrations, got %d", len(regs))
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"Thunder XI", "thunder-xi"},
		{"  Mixed   Case Name ", "mixed-case-name"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.expected {
			t.Errorf("Slug(%q): expected %q, got %q", c.in, c.expected, got)
		}
	}
}
