package main

import (
	"fmt"

	"github.com/fwojciec/fehwiki"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	results := deps.Lookup.LookupAll(deps.Ctx, c.user(), c.Names, nil)

	var firstErr error
	var printed int
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Query, fehwiki.ErrorMessage(r.Err))
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if printed > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, fehwiki.FormatRecords(r.Assembly.Records))
		printed++
	}

	return firstErr
}
