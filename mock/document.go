package mock

import (
	"context"

	"github.com/fwojciec/fehwiki"
)

var _ fehwiki.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of fehwiki.Assembler.
type Assembler struct {
	AssembleFn func(ctx context.Context, title string) (*fehwiki.Assembly, error)
}

func (a *Assembler) Assemble(ctx context.Context, title string) (*fehwiki.Assembly, error) {
	return a.AssembleFn(ctx, title)
}

var _ fehwiki.RosterSource = (*RosterSource)(nil)

// RosterSource is a mock implementation of fehwiki.RosterSource.
type RosterSource struct {
	FetchRosterFn func(ctx context.Context) (fehwiki.Roster, error)
}

func (s *RosterSource) FetchRoster(ctx context.Context) (fehwiki.Roster, error) {
	return s.FetchRosterFn(ctx)
}
