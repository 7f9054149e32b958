package scorectl

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
)

type Context struct {
	context.Context

	DryRun bool
	Store  store.Store

	MatchID string

	// Cricket.
	Runs    int
	Wickets int
	Overs   float64
	Target  int

	// Kabaddi.
	Team1Points  int
	Team2Points  int
	SuperTackles int

	// Volleyball. Sets are "t1-t2" pairs in playing order; the last entry
	// is the set in play.
	Sets []string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
