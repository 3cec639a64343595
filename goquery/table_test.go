package goquery_test

import (
	"testing"

	"github.com/fwojciec/fehwiki/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTable(t *testing.T) {
	t.Parallel()

	t.Run("maps headings to cells and skips rows without data cells", func(t *testing.T) {
		t.Parallel()

		table := parseHTML(t, `<table>
<tr><th>Rarity</th><th>HP</th></tr>
<tr><td>1</td><td> 16 </td></tr>
<tr><th>Subheading</th></tr>
<tr><td>5</td><td>20</td></tr>
</table>`, "table")

		rows := goquery.ExtractTable(table, goquery.TableOptions{})

		require.Len(t, rows, 2)
		assert.Equal(t, "1", rows[0]["Rarity"])
		assert.Equal(t, "16", rows[0]["HP"])
		assert.Equal(t, "5", rows[1]["Rarity"])
	})

	t.Run("upper-cases keys", func(t *testing.T) {
		t.Parallel()

		table := parseHTML(t, `<table><tr><th>Rarity</th><th>Total</th></tr><tr><td>5</td><td>150</td></tr></table>`, "table")

		rows := goquery.ExtractTable(table, goquery.TableOptions{UpperKeys: true})

		require.Len(t, rows, 1)
		assert.Equal(t, goquery.Row{"RARITY": "5", "TOTAL": "150"}, rows[0])
	})

	t.Run("appends link targets", func(t *testing.T) {
		t.Parallel()

		table := parseHTML(t, `<table><tr><th>Cost</th><th>Name</th></tr>
<tr><td>20<a href="/File:Divine_Dew.png"><img alt="dew"></a><a href="//Arena_Medal">m</a></td><td>Plain</td></tr>
</table>`, "table")

		rows := goquery.ExtractTable(table, goquery.TableOptions{Links: true})

		require.Len(t, rows, 1)
		assert.Equal(t, "20m|Divine Dew|Arena Medal|", rows[0]["Cost"])
		assert.Equal(t, "Plain||", rows[0]["Name"])
	})

	t.Run("ignores cells beyond the headings", func(t *testing.T) {
		t.Parallel()

		table := parseHTML(t, `<table><tr><th>A</th></tr><tr><td>1</td><td>2</td></tr></table>`, "table")

		rows := goquery.ExtractTable(table, goquery.TableOptions{})

		assert.Equal(t, []goquery.Row{{"A": "1"}}, rows)
	})

	t.Run("returns nothing for a table without data", func(t *testing.T) {
		t.Parallel()

		table := parseHTML(t, `<table><tr><th>A</th></tr></table>`, "table")

		assert.Empty(t, goquery.ExtractTable(table, goquery.TableOptions{}))
	})
}
