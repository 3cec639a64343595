package main

import (
	"fmt"

	"github.com/fwojciec/fehwiki"
)

// Run executes the family command. The hero name is resolved to a page
// title before it is stored.
func (c *FamilyCmd) Run(deps *Dependencies) error {
	user := c.user()
	if user == nil {
		fmt.Fprintln(deps.Stderr, "error: --user or FEHWIKI_USER is required")
		return fehwiki.Errorf(fehwiki.EINVALID, "user required")
	}

	relation, ok := fehwiki.ParseRelation(c.Relation)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown relation %q\n", c.Relation)
		return fehwiki.Errorf(fehwiki.EINVALID, "unknown relation %q", c.Relation)
	}

	title, err := deps.Resolver.ResolveName(deps.Ctx, nil, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}

	if err := deps.Families.SetFamily(deps.Ctx, user, relation, title); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fehwiki.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Your %s is now %s\n", relation, title)
	return nil
}
