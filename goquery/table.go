package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Row maps column headings to the trimmed text of one table row.
type Row map[string]string

// TableOptions controls ExtractTable.
type TableOptions struct {
	// Links appends the cell's link targets to each value as
	// "|target|target|". The list is terminated even when empty.
	Links bool
	// UpperKeys upper-cases column headings.
	UpperKeys bool
}

// ExtractTable converts a table into one Row per row that has at least one
// data cell, in row order. Header cells are read in document order and
// paired with data cells by position.
func ExtractTable(table *goquery.Selection, opts TableOptions) []Row {
	var headings []string
	table.Find("th").Each(func(_ int, th *goquery.Selection) {
		h := strings.TrimSpace(th.Text())
		if opts.UpperKeys {
			h = strings.ToUpper(h)
		}
		headings = append(headings, h)
	})

	var rows []Row
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}
		row := make(Row, len(headings))
		tds.EachWithBreak(func(i int, td *goquery.Selection) bool {
			if i >= len(headings) {
				return false
			}
			row[headings[i]] = cellValue(td, opts.Links)
			return true
		})
		rows = append(rows, row)
	})
	return rows
}

func cellValue(td *goquery.Selection, links bool) string {
	value := strings.TrimSpace(td.Text())
	if !links {
		return value
	}
	var targets []string
	td.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			targets = append(targets, linkTarget(href))
		}
	})
	return value + "|" + strings.Join(targets, "|") + "|"
}

// linkTarget turns an href such as "/File:Divine_Dew.png" into "Divine Dew".
func linkTarget(href string) string {
	t := strings.TrimLeft(strings.TrimSpace(href), "/")
	t = strings.ReplaceAll(t, "File:", "")
	t = strings.ReplaceAll(t, ".png", "")
	return strings.ReplaceAll(t, "_", " ")
}

// bodyRows returns the rows of table after the header row. It is empty when
// the table is missing or has no body rows.
func bodyRows(table *goquery.Selection) *goquery.Selection {
	return table.Find("tr").FilterFunction(func(i int, _ *goquery.Selection) bool {
		return i > 0
	})
}
