package fehwiki

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// ShortenName abbreviates the epithet of a "Name: Epithet" hero title to
// its initials, e.g. "Marth: Altean Prince" becomes "Marth:AP". Words
// without letters are dropped. Titles without an epithet are returned
// unchanged.
func ShortenName(name string) string {
	main, epithet, ok := strings.Cut(name, ":")
	if !ok {
		return name
	}

	var b strings.Builder
	b.WriteString(main)
	b.WriteByte(':')
	for _, word := range strings.Split(strings.TrimSpace(epithet), " ") {
		for _, r := range word {
			if unicode.IsLetter(r) {
				b.WriteRune(r)
				break
			}
		}
	}
	return b.String()
}

// User identifies the person a lookup is made on behalf of.
type User struct {
	ID   string
	Name string
}

// Relation is a per-user hero binding such as "son" or "waifu".
type Relation string

// Supported relations.
const (
	RelationSon   Relation = "son"
	RelationWaifu Relation = "waifu"
)

// ParseRelation maps a lookup query such as "my son" to its relation.
func ParseRelation(query string) (Relation, bool) {
	switch strings.ToLower(strings.TrimSpace(query)) {
	case "son", "my son":
		return RelationSon, true
	case "waifu", "my waifu":
		return RelationWaifu, true
	}
	return "", false
}

// Alias maps an alternative spelling to a canonical page title.
type Alias struct {
	ID        string    `json:"id"`
	Alias     string    `json:"alias"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the alias contains invalid fields.
func (a *Alias) Validate() error {
	if strings.TrimSpace(a.Alias) == "" {
		return Errorf(EINVALID, "alias required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return Errorf(EINVALID, "alias title required")
	}
	return nil
}

// AliasFilter represents a filter for FindAliases.
type AliasFilter struct {
	Title *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// AliasService represents a service for managing name aliases.
type AliasService interface {
	// ResolveAlias returns the canonical title for an alias. Matching
	// ignores case. Returns ENOTFOUND if the alias is unknown.
	ResolveAlias(ctx context.Context, alias string) (string, error)

	// SetAlias creates or replaces an alias.
	SetAlias(ctx context.Context, alias *Alias) error

	// DeleteAlias removes an alias.
	// Returns ENOTFOUND if the alias does not exist.
	DeleteAlias(ctx context.Context, alias string) error

	// FindAliases retrieves aliases matching the filter.
	FindAliases(ctx context.Context, filter AliasFilter) ([]*Alias, error)
}

// FamilyService stores per-user hero bindings.
type FamilyService interface {
	// FindFamily returns the title bound to the user for the relation.
	// Bindings stored under the user's name are moved to the user's ID.
	// Returns ENOTFOUND if there is no binding.
	FindFamily(ctx context.Context, user *User, relation Relation) (string, error)

	// SetFamily binds a title to the user for the relation.
	SetFamily(ctx context.Context, user *User, relation Relation, title string) error
}

// Searcher performs a live title search against the wiki.
type Searcher interface {
	// Search returns page titles matching the query, redirects resolved.
	Search(ctx context.Context, query string) ([]string, error)
}

// NameResolver turns a free-form query into a canonical page title.
type NameResolver interface {
	// ResolveName returns the page title for raw. The user may be nil.
	// Returns ENOTFOUND if no page matches.
	ResolveName(ctx context.Context, user *User, raw string) (string, error)
}
