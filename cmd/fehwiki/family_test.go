package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/fehwiki"
	main "github.com/fwojciec/fehwiki/cmd/fehwiki"
	"github.com/fwojciec/fehwiki/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyCmd_Run(t *testing.T) {
	t.Parallel()

	resolver := &mock.NameResolver{
		ResolveNameFn: func(ctx context.Context, user *fehwiki.User, raw string) (string, error) {
			return "Ike: Brave Mercenary", nil
		},
	}

	t.Run("stores the resolved title", func(t *testing.T) {
		t.Parallel()

		var gotUser *fehwiki.User
		var gotRelation fehwiki.Relation
		var gotTitle string
		families := &mock.FamilyService{
			SetFamilyFn: func(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation, title string) error {
				gotUser, gotRelation, gotTitle = user, relation, title
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Resolver: resolver, Families: families}

		cmd := &main.FamilyCmd{Relation: "son", Name: "bike"}
		cmd.User = "42"
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "42", gotUser.ID)
		assert.Equal(t, fehwiki.RelationSon, gotRelation)
		assert.Equal(t, "Ike: Brave Mercenary", gotTitle)
		assert.Equal(t, "Your son is now Ike: Brave Mercenary\n", stdout.String())
	})

	t.Run("requires a user", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Resolver: resolver, Families: &mock.FamilyService{}}

		err := (&main.FamilyCmd{Relation: "waifu", Name: "lyn"}).Run(deps)

		assert.Equal(t, fehwiki.EINVALID, fehwiki.ErrorCode(err))
		assert.Contains(t, stderr.String(), "FEHWIKI_USER")
	})
}
