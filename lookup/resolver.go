// Package lookup turns free-form queries into assembled wiki records.
// It resolves names through per-user bindings, stored aliases and the
// wiki's own search, then hands the title to an assembler.
package lookup

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/fehwiki"
)

// Ensure Resolver implements fehwiki.NameResolver.
var _ fehwiki.NameResolver = (*Resolver)(nil)

// statPlus expands stat shorthand so that "atk+" finds "Attack Plus".
var statPlus = strings.NewReplacer(
	"hp+", "hp plus",
	"atk+", "attack plus",
	"spd+", "speed plus",
	"def+", "defense plus",
	"res+", "resistance plus",
	"attack+", "attack plus",
	"speed+", "speed plus",
	"defense+", "defense plus",
	"resistance+", "resistance plus",
	" +", " plus",
)

// Resolver resolves names in order: family bindings, aliases, then a live
// search of the wiki.
type Resolver struct {
	Families fehwiki.FamilyService
	Aliases  fehwiki.AliasService
	Searcher fehwiki.Searcher
}

// ResolveName returns the page title for raw.
func (r *Resolver) ResolveName(ctx context.Context, user *fehwiki.User, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fehwiki.Errorf(fehwiki.EINVALID, "empty name")
	}

	if relation, ok := fehwiki.ParseRelation(raw); ok {
		return r.resolveFamily(ctx, user, relation)
	}

	if r.Aliases != nil {
		title, err := r.Aliases.ResolveAlias(ctx, raw)
		if err == nil {
			return title, nil
		}
		if fehwiki.ErrorCode(err) != fehwiki.ENOTFOUND {
			return "", err
		}
	}

	query := statPlus.Replace(strings.ToLower(raw))
	titles, err := r.Searcher.Search(ctx, query)
	if err != nil {
		return "", err
	}
	title, ok := shortestTitle(titles)
	if !ok {
		return "", fehwiki.Errorf(fehwiki.ENOTFOUND, "no page matches %q", raw)
	}
	return title, nil
}

func (r *Resolver) resolveFamily(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation) (string, error) {
	if user == nil || user.ID == "" || r.Families == nil {
		return "", fehwiki.Errorf(fehwiki.ENOTFOUND, "no %s set", relation)
	}
	return r.Families.FindFamily(ctx, user, relation)
}

// shortestTitle picks the shortest non-empty title; ties go to the
// alphabetically first.
func shortestTitle(titles []string) (string, bool) {
	candidates := slices.DeleteFunc(slices.Clone(titles), func(s string) bool {
		return strings.TrimSpace(s) == ""
	})
	if len(candidates) == 0 {
		return "", false
	}
	return slices.MinFunc(candidates, func(a, b string) int {
		if c := cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}), true
}
