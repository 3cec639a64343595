package fehwiki_test

import (
	"testing"

	"github.com/fwojciec/fehwiki"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecords(t *testing.T) {
	t.Parallel()

	t.Run("formats inline and block fields in order", func(t *testing.T) {
		t.Parallel()

		r := fehwiki.NewRecord("Iron Sword")
		r.Header.SourceURL = "https://feheroes.fandom.com/wiki/Iron_Sword"
		r.Set("Might", "6", true)
		r.Set("Description", "A basic sword.", false)

		result := fehwiki.FormatRecords([]*fehwiki.Record{r})

		expected := "## Iron Sword\nhttps://feheroes.fandom.com/wiki/Iron_Sword\nMight: 6\nDescription:\nA basic sword."
		assert.Equal(t, expected, result)
	})

	t.Run("separates records with a blank line", func(t *testing.T) {
		t.Parallel()

		a := fehwiki.NewRecord("Fury 1")
		a.Set("Slot", "A", true)
		b := fehwiki.NewRecord("Fury 2")
		b.Set("Slot", "A", true)

		result := fehwiki.FormatRecords([]*fehwiki.Record{a, b})

		assert.Equal(t, "## Fury 1\nSlot: A\n\n## Fury 2\nSlot: A", result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, fehwiki.FormatRecords(nil))
	})
}

func TestFormatRoster(t *testing.T) {
	t.Parallel()

	roster := fehwiki.Roster{
		{Name: "Abel: The Panther", Color: "Blue", Weapon: "Lance", Movement: "Cavalry", HP: 39, ATK: 33, SPD: 32, DEF: 25, RES: 25, Total: 154},
	}

	assert.Equal(t, "Abel: The Panther (Blue Lance, Cavalry) HP 39 / ATK 33 / SPD 32 / DEF 25 / RES 25 / BST 154", fehwiki.FormatRoster(roster))
	assert.Empty(t, fehwiki.FormatRoster(nil))
}
