package registrations

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
)

type Context struct {
	context.Context

	DryRun bool
	Force  bool

	Store store.Store

	TeamName     string
	ManagerName  string
	ManagerEmail string
	ManagerPhone string
	Sport        store.Sport
	Players      []PlayerSpec

	RegistrationID string
	Status         string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
