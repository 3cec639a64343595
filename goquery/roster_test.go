package goquery_test

import (
	"context"
	"testing"

	"github.com/fwojciec/fehwiki"
	"github.com/fwojciec/fehwiki/goquery"
	"github.com/fwojciec/fehwiki/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterHTML = `<table><tr><td>legend</td></tr></table>
<table>
<tr><th></th><th>Name</th><th></th><th></th><th>HP</th><th>ATK</th><th>SPD</th><th>DEF</th><th>RES</th><th>BST</th></tr>
<tr data-weapon-type="Red Sword" data-move-type="Infantry"><td></td><td>Marth: Altean Prince</td><td></td><td></td><td>41</td><td>31</td><td>34</td><td>29</td><td>23</td><td>158</td></tr>
<tr data-weapon-type="Blue Lance" data-move-type="Cavalry"><td></td><td>Abel: The Panther</td><td></td><td></td><td>39</td><td>33</td><td>32</td><td>25</td><td>-</td><td>129</td></tr>
<tr data-weapon-type="Green Axe" data-move-type="Flying"><td></td><td>Unreleased</td><td></td><td></td><td>?</td><td>?</td><td>?</td><td>?</td><td>?</td><td>?</td></tr>
<tr data-weapon-type="Colorless" data-move-type="Infantry"><td></td><td>Broken</td><td></td><td></td><td>1</td><td>1</td><td>1</td><td>1</td><td>1</td><td>5</td></tr>
<tr data-weapon-type="Red Tome"><td></td><td>No movement</td><td></td><td></td><td>1</td><td>1</td><td>1</td><td>1</td><td>1</td><td>5</td></tr>
</table>`

func TestParseRoster(t *testing.T) {
	t.Parallel()

	roster, err := goquery.ParseRoster(rosterHTML)

	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, &fehwiki.RosterEntry{
		Name: "Marth: Altean Prince", Color: "Red", Weapon: "Sword", Movement: "Infantry",
		HP: 41, ATK: 31, SPD: 34, DEF: 29, RES: 23, Total: 158,
	}, roster[0])
	assert.Equal(t, "Abel: The Panther", roster[1].Name)
	assert.Equal(t, 0, roster[1].RES)
	assert.Equal(t, 129, roster[1].Total)
}

func TestRosterService_FetchRoster(t *testing.T) {
	t.Parallel()

	t.Run("fetches the stats page", func(t *testing.T) {
		t.Parallel()

		var requested string
		svc := goquery.NewRosterService(&mock.DocumentFetcher{
			FetchDocumentFn: func(_ context.Context, title string) (*fehwiki.Document, error) {
				requested = title
				return &fehwiki.Document{Title: title, HTML: rosterHTML}, nil
			},
		})

		roster, err := svc.FetchRoster(context.Background())

		require.NoError(t, err)
		assert.Equal(t, goquery.RosterPage, requested)
		assert.Len(t, roster, 2)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		svc := goquery.NewRosterService(&mock.DocumentFetcher{
			FetchDocumentFn: func(_ context.Context, _ string) (*fehwiki.Document, error) {
				return nil, fehwiki.Errorf(fehwiki.EUNAVAILABLE, "down")
			},
		})

		_, err := svc.FetchRoster(context.Background())

		assert.Equal(t, fehwiki.EUNAVAILABLE, fehwiki.ErrorCode(err))
	})
}
