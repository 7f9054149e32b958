package export

import (
	"context"

	"github.com/khelpoint/khelpoint/internal/store"
)

type Context struct {
	context.Context

	Store store.Store

	// Output is a local file path or a gs:// URL.
	Output string

	Sport  store.Sport
	Status string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
