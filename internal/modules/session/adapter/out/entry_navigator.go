package out

import (
	"context"

	sessionout "worksphere/internal/modules/session/port/out"
)

// FuncNavigator adapts a plain function to the EntryNavigator port. The
// function may be swapped after construction, which lets the TUI attach its
// program once it exists.
type FuncNavigator struct {
	fn func(ctx context.Context) error
}

func NewFuncNavigator(fn func(ctx context.Context) error) *FuncNavigator {
	return &FuncNavigator{fn: fn}
}

var _ sessionout.EntryNavigator = (*FuncNavigator)(nil)

func (n *FuncNavigator) Set(fn func(ctx context.Context) error) {
	n.fn = fn
}

func (n *FuncNavigator) ToEntry(ctx context.Context) error {
	if n.fn == nil {
		return nil
	}
	return n.fn(ctx)
}
