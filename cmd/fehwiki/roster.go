package main

import (
	"fmt"

	"github.com/fwojciec/fehwiki"
)

// Run executes the roster command.
func (c *RosterCmd) Run(deps *Dependencies) error {
	criteria, err := fehwiki.NormalizeFilter(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}
	keys, err := fehwiki.NormalizeSort(c.Sort)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}

	roster, err := deps.Roster.FetchRoster(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}

	roster = roster.Filter(criteria).Sort(keys)
	if len(roster) == 0 {
		fmt.Fprintln(deps.Stdout, "No heroes match.")
		return nil
	}
	if c.Limit > 0 && len(roster) > c.Limit {
		roster = roster[:c.Limit]
	}

	fmt.Fprintln(deps.Stdout, fehwiki.FormatRoster(roster))
	return nil
}
