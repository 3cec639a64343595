package fehwiki_test

import (
	"testing"

	"github.com/fwojciec/fehwiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() fehwiki.Roster {
	return fehwiki.NewRoster([]*fehwiki.RosterEntry{
		{Name: "Marth: Altean Prince", Color: "Red", Weapon: "Sword", Movement: "Infantry", HP: 41, ATK: 29, SPD: 32, DEF: 26, RES: 22, Total: 150},
		{Name: "Abel: The Panther", Color: "Blue", Weapon: "Lance", Movement: "Cavalry", HP: 39, ATK: 33, SPD: 32, DEF: 25, RES: 25, Total: 154},
		{Name: "Unreleased: Hero", Color: "Green", Weapon: "Axe", Movement: "Flying"},
		{Name: "Hector: General of Ostia", Color: "Green", Weapon: "Axe", Movement: "Armored", HP: 52, ATK: 36, SPD: 24, DEF: 37, RES: 19, Total: 168},
		{Name: "Lucina: Future Witness", Color: "Blue", Weapon: "Lance", Movement: "Infantry", HP: 43, ATK: 33, SPD: 36, DEF: 25, RES: 19, Total: 156},
	})
}

func TestNewRoster(t *testing.T) {
	t.Parallel()

	roster := testRoster()

	require.Len(t, roster, 4)
	for _, e := range roster {
		assert.NotZero(t, e.Total, e.Name)
	}
}

func TestRoster_Filter(t *testing.T) {
	t.Parallel()

	t.Run("matches any value within a bucket and all buckets together", func(t *testing.T) {
		t.Parallel()

		c, err := fehwiki.NormalizeFilter([]string{"blue", "green", "infantry", "armored"})
		require.NoError(t, err)

		got := testRoster().Filter(c)

		require.Len(t, got, 2)
		assert.Equal(t, "Hector: General of Ostia", got[0].Name)
		assert.Equal(t, "Lucina: Future Witness", got[1].Name)
	})

	t.Run("applies compound thresholds to stat sums", func(t *testing.T) {
		t.Parallel()

		c, err := fehwiki.NormalizeFilter([]string{"atk+spd>=66"})
		require.NoError(t, err)

		got := testRoster().Filter(c)

		require.Len(t, got, 1)
		assert.Equal(t, "Lucina: Future Witness", got[0].Name)
	})

	t.Run("nil criteria returns the roster", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, testRoster().Filter(nil), 4)
	})
}

func TestRoster_Sort(t *testing.T) {
	t.Parallel()

	t.Run("sorts stats highest first", func(t *testing.T) {
		t.Parallel()

		got := testRoster().Sort([]fehwiki.SortKey{fehwiki.Key("SPD")})

		assert.Equal(t, "Lucina: Future Witness", got[0].Name)
		assert.Equal(t, "Hector: General of Ostia", got[3].Name)
	})

	t.Run("breaks ties with later keys", func(t *testing.T) {
		t.Parallel()

		got := testRoster().Sort([]fehwiki.SortKey{fehwiki.Key("ATK"), fehwiki.Key("Name")})

		assert.Equal(t, "Hector: General of Ostia", got[0].Name)
		assert.Equal(t, "Abel: The Panther", got[1].Name)
		assert.Equal(t, "Lucina: Future Witness", got[2].Name)
	})

	t.Run("sorts compound keys by sum", func(t *testing.T) {
		t.Parallel()

		got := testRoster().Sort([]fehwiki.SortKey{fehwiki.Key("DEF", "RES")})

		assert.Equal(t, "Hector: General of Ostia", got[0].Name)
		assert.Equal(t, "Lucina: Future Witness", got[3].Name)
	})

	t.Run("sorts colours in canonical order", func(t *testing.T) {
		t.Parallel()

		got := testRoster().Sort([]fehwiki.SortKey{fehwiki.Key("Colour")})

		assert.Equal(t, "Red", got[0].Color)
		assert.Equal(t, "Green", got[3].Color)
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		t.Parallel()

		roster := testRoster()
		_ = roster.Sort([]fehwiki.SortKey{fehwiki.Key("Name")})

		assert.Equal(t, "Marth: Altean Prince", roster[0].Name)
	})
}
