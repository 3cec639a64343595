package main

import (
	"fmt"

	"github.com/fwojciec/fehwiki"
)

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	n, err := deps.Cache.ClearDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cached pages\n", n)
	return nil
}
