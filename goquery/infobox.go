package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// heroInfobox maps lower-cased labels of a hero infobox to their values.
func heroInfobox(doc *goquery.Selection) map[string]string {
	out := make(map[string]string)
	doc.Find(".hero-infobox").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		th, td := tr.Find("th").First(), tr.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}
		label := strings.ToLower(strings.TrimSpace(th.Text()))
		out[label] = strings.TrimSpace(strings.ReplaceAll(td.Text(), "  ", " "))
	})
	return out
}

// infobox maps labels of an item infobox to their values. Rows holding
// audio clips are skipped.
func infobox(doc *goquery.Selection) map[string]string {
	out := make(map[string]string)
	table := doc.Find("div.hero-infobox").First().Find("table").First()
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.Find("audio").Length() > 0 {
			return
		}
		th, td := tr.Find("th").First(), tr.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}
		label := strings.TrimSpace(strings.ReplaceAll(th.Text(), "  ", " "))
		out[label] = strings.TrimSpace(td.Text())
	})
	return out
}
