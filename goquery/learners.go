package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// FindLearners scans a hero table for rows that learn skill and groups the
// heroes by the rarity they learn it at, e.g. "4★: Marth:AP, Lucina:BP".
// A cell matches when it contains the skill name and ends with the rarity
// digit. Returns "" if no hero learns the skill.
func FindLearners(table *goquery.Selection, skill string) string {
	var buckets [6][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		tds.EachWithBreak(func(_ int, td *goquery.Selection) bool {
			text := strings.TrimSpace(td.Text())
			if text == "" || !strings.Contains(text, skill) {
				return true
			}
			rarity := text[len(text)-1]
			if rarity < '1' || rarity > '5' {
				return true
			}
			if name := learnerName(tr); name != "" {
				buckets[rarity-'0'] = append(buckets[rarity-'0'], name)
			}
			return false
		})
	})

	var lines []string
	for rarity, names := range buckets {
		if len(names) > 0 {
			lines = append(lines, fmt.Sprintf("%d★: %s", rarity, strings.Join(names, ", ")))
		}
	}
	return strings.Join(lines, "\n")
}

// learnerName reads the hero name from the row's second link; the first
// links the hero's portrait.
func learnerName(tr *goquery.Selection) string {
	a := tr.Find("a").Eq(1)
	if a.Length() == 0 {
		return ""
	}
	name := strings.TrimSpace(strings.ReplaceAll(a.Text(), "\n", " "))
	return fehwiki.ShortenName(name)
}
