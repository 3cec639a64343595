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

func testRoster() *mock.RosterSource {
	return &mock.RosterSource{
		FetchRosterFn: func(ctx context.Context) (fehwiki.Roster, error) {
			return fehwiki.Roster{
				{Name: "Abel: The Panther", Color: "Blue", Weapon: "Lance", Movement: "Cavalry", HP: 39, ATK: 33, SPD: 32, DEF: 25, RES: 25, Total: 154},
				{Name: "Alfonse: Prince of Askr", Color: "Red", Weapon: "Sword", Movement: "Infantry", HP: 43, ATK: 35, SPD: 25, DEF: 32, RES: 22, Total: 157},
				{Name: "Anna: Commander", Color: "Green", Weapon: "Axe", Movement: "Infantry", HP: 41, ATK: 29, SPD: 38, DEF: 22, RES: 28, Total: 158},
			}, nil
		},
	}
}

func TestRosterCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("filters and sorts", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Roster: testRoster()}

		cmd := &main.RosterCmd{Filter: []string{"infantry"}, Sort: []string{"spd"}, Limit: 10}
		require.NoError(t, cmd.Run(deps))

		lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)
		assert.True(t, bytes.HasPrefix(lines[0], []byte("Anna: Commander")))
		assert.True(t, bytes.HasPrefix(lines[1], []byte("Alfonse: Prince of Askr")))
	})

	t.Run("applies the limit", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Roster: testRoster()}

		cmd := &main.RosterCmd{Sort: []string{"bst"}, Limit: 1}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Anna: Commander (Green Axe, Infantry) HP 41 / ATK 29 / SPD 38 / DEF 22 / RES 28 / BST 158\n", stdout.String())
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Roster: testRoster()}

		cmd := &main.RosterCmd{Filter: []string{"flier"}}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "No heroes match.\n", stdout.String())
	})

	t.Run("rejects bad tokens before fetching", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Roster: &mock.RosterSource{}}

		cmd := &main.RosterCmd{Filter: []string{"banana"}}
		err := cmd.Run(deps)

		assert.Equal(t, fehwiki.EINVALID, fehwiki.ErrorCode(err))
		assert.Contains(t, stderr.String(), "banana")
	})
}
