package hostmatch

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
)

type Context struct {
	context.Context

	DryRun bool
	Force  bool
	Store  store.Store

	Sport        store.Sport
	Team1        string
	Team2        string
	Venue        string
	TournamentID string
	Admin        string
	Umpire       string

	MatchID string
	Status  string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
