package awards

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
)

type Context struct {
	context.Context

	DryRun bool

	Store store.Store

	Title       string
	Description string
	Category    string
	Sport       store.Sport
	PlayerID    string
	TeamID      string
	MatchID     string
	Points      int

	// BadgeFile is a local image to upload; BadgeDest is where it goes,
	// either a gs:// URL or a directory path.
	BadgeFile string
	BadgeDest string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
