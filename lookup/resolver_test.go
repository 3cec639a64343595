package lookup_test

import (
	"context"
	"testing"

	"github.com/fwojciec/fehwiki"
	"github.com/fwojciec/fehwiki/lookup"
	"github.com/fwojciec/fehwiki/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noAliases() *mock.AliasService {
	return &mock.AliasService{
		ResolveAliasFn: func(ctx context.Context, alias string) (string, error) {
			return "", fehwiki.Errorf(fehwiki.ENOTFOUND, "alias not found")
		},
	}
}

func searchReturning(titles ...string) (*mock.Searcher, *[]string) {
	var queries []string
	return &mock.Searcher{
		SearchFn: func(ctx context.Context, query string) ([]string, error) {
			queries = append(queries, query)
			return titles, nil
		},
	}, &queries
}

func TestResolver_ResolveName(t *testing.T) {
	t.Parallel()

	user := &fehwiki.User{ID: "42", Name: "kiran"}

	t.Run("resolves relations through family bindings", func(t *testing.T) {
		t.Parallel()

		searcher, queries := searchReturning("Son")
		r := &lookup.Resolver{
			Families: &mock.FamilyService{
				FindFamilyFn: func(ctx context.Context, u *fehwiki.User, relation fehwiki.Relation) (string, error) {
					assert.Equal(t, user, u)
					assert.Equal(t, fehwiki.RelationSon, relation)
					return "Ike: Brave Mercenary", nil
				},
			},
			Aliases:  noAliases(),
			Searcher: searcher,
		}

		title, err := r.ResolveName(context.Background(), user, "My Son")

		require.NoError(t, err)
		assert.Equal(t, "Ike: Brave Mercenary", title)
		assert.Empty(t, *queries)
	})

	t.Run("missing binding does not fall through to search", func(t *testing.T) {
		t.Parallel()

		searcher, queries := searchReturning("Waifu")
		r := &lookup.Resolver{
			Families: &mock.FamilyService{
				FindFamilyFn: func(ctx context.Context, u *fehwiki.User, relation fehwiki.Relation) (string, error) {
					return "", fehwiki.Errorf(fehwiki.ENOTFOUND, "no waifu set")
				},
			},
			Aliases:  noAliases(),
			Searcher: searcher,
		}

		_, err := r.ResolveName(context.Background(), user, "waifu")

		assert.Equal(t, fehwiki.ENOTFOUND, fehwiki.ErrorCode(err))
		assert.Empty(t, *queries)
	})

	t.Run("relation without a user is not found", func(t *testing.T) {
		t.Parallel()

		searcher, _ := searchReturning()
		r := &lookup.Resolver{Families: &mock.FamilyService{}, Searcher: searcher}

		_, err := r.ResolveName(context.Background(), nil, "son")

		assert.Equal(t, fehwiki.ENOTFOUND, fehwiki.ErrorCode(err))
	})

	t.Run("relation for a user without an ID is not found", func(t *testing.T) {
		t.Parallel()

		searcher, _ := searchReturning()
		families := &mock.FamilyService{
			FindFamilyFn: func(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation) (string, error) {
				return "", fehwiki.Errorf(fehwiki.EINVALID, "user ID required")
			},
		}
		r := &lookup.Resolver{Families: families, Searcher: searcher}

		_, err := r.ResolveName(context.Background(), &fehwiki.User{Name: "kiran"}, "my son")

		assert.Equal(t, fehwiki.ENOTFOUND, fehwiki.ErrorCode(err))
	})

	t.Run("prefers stored aliases over search", func(t *testing.T) {
		t.Parallel()

		searcher, queries := searchReturning("Ike")
		r := &lookup.Resolver{
			Aliases: &mock.AliasService{
				ResolveAliasFn: func(ctx context.Context, alias string) (string, error) {
					return "Ike: Brave Mercenary", nil
				},
			},
			Searcher: searcher,
		}

		title, err := r.ResolveName(context.Background(), user, "bike")

		require.NoError(t, err)
		assert.Equal(t, "Ike: Brave Mercenary", title)
		assert.Empty(t, *queries)
	})

	t.Run("surfaces alias store failures", func(t *testing.T) {
		t.Parallel()

		searcher, _ := searchReturning("Ike")
		r := &lookup.Resolver{
			Aliases: &mock.AliasService{
				ResolveAliasFn: func(ctx context.Context, alias string) (string, error) {
					return "", fehwiki.Errorf(fehwiki.EINTERNAL, "disk error")
				},
			},
			Searcher: searcher,
		}

		_, err := r.ResolveName(context.Background(), user, "bike")

		assert.Equal(t, fehwiki.EINTERNAL, fehwiki.ErrorCode(err))
	})

	t.Run("expands stat shorthand before searching", func(t *testing.T) {
		t.Parallel()

		tests := map[string]string{
			"Atk+ 3":         "attack plus 3",
			"hp+":            "hp plus",
			"Spd+ 2":         "speed plus 2",
			"DEF+":           "defense plus",
			"res+":           "resistance plus",
			"Resistance+ 3":  "resistance plus 3",
			"Silver Sword +": "silver sword plus",
		}
		for in, want := range tests {
			searcher, queries := searchReturning("X")
			r := &lookup.Resolver{Aliases: noAliases(), Searcher: searcher}

			_, err := r.ResolveName(context.Background(), nil, in)

			require.NoError(t, err, in)
			assert.Equal(t, []string{want}, *queries, in)
		}
	})

	t.Run("picks the shortest title, ties alphabetically", func(t *testing.T) {
		t.Parallel()

		searcher, _ := searchReturning("Marth: Altean Prince", "Marth", "Lucina", "Marth: Enigmatic Blade")
		r := &lookup.Resolver{Aliases: noAliases(), Searcher: searcher}

		title, err := r.ResolveName(context.Background(), nil, "marth")

		require.NoError(t, err)
		assert.Equal(t, "Marth", title)
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		searcher, _ := searchReturning("Lifx", "Líf")
		r := &lookup.Resolver{Aliases: noAliases(), Searcher: searcher}

		title, err := r.ResolveName(context.Background(), nil, "lif")

		require.NoError(t, err)
		assert.Equal(t, "Líf", title)
	})

	t.Run("no search results is not found", func(t *testing.T) {
		t.Parallel()

		searcher, _ := searchReturning("")
		r := &lookup.Resolver{Aliases: noAliases(), Searcher: searcher}

		_, err := r.ResolveName(context.Background(), nil, "zzz")

		assert.Equal(t, fehwiki.ENOTFOUND, fehwiki.ErrorCode(err))
	})

	t.Run("works without an alias store", func(t *testing.T) {
		t.Parallel()

		searcher, _ := searchReturning("Fury")
		r := &lookup.Resolver{Searcher: searcher}

		title, err := r.ResolveName(context.Background(), nil, "fury")

		require.NoError(t, err)
		assert.Equal(t, "Fury", title)
	})

	t.Run("rejects empty queries", func(t *testing.T) {
		t.Parallel()

		r := &lookup.Resolver{}

		_, err := r.ResolveName(context.Background(), nil, "  ")

		assert.Equal(t, fehwiki.EINVALID, fehwiki.ErrorCode(err))
	})
}
