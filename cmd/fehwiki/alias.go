package main

import (
	"fmt"

	"github.com/fwojciec/fehwiki"
)

// Run executes the alias add command.
func (c *AliasAddCmd) Run(deps *Dependencies) error {
	alias := &fehwiki.Alias{Alias: c.Alias, Title: c.Title}
	if err := deps.Aliases.SetAlias(deps.Ctx, alias); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added alias %q for %q\n", alias.Alias, alias.Title)
	return nil
}

// Run executes the alias remove command.
func (c *AliasRemoveCmd) Run(deps *Dependencies) error {
	if err := deps.Aliases.DeleteAlias(deps.Ctx, c.Alias); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed alias %q\n", c.Alias)
	return nil
}

// Run executes the alias list command.
func (c *AliasListCmd) Run(deps *Dependencies) error {
	filter := fehwiki.AliasFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Title != "" {
		filter.Title = &c.Title
	}

	aliases, err := deps.Aliases.FindAliases(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}

	if len(aliases) == 0 {
		fmt.Fprintln(deps.Stdout, "No aliases found. Use 'fehwiki alias add' to create one.")
		return nil
	}

	for _, a := range aliases {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", a.Alias, a.Title)
	}
	return nil
}
