package goquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// offensiveRefines are refine path prefixes that share generic stat icons.
var offensiveRefines = []string{"Attack", "Speed", "Defense", "Resistance", "Wrathful", "Dazzling"}

// assembleWeapon builds the record of a weapon page.
func (a *Assembler) assembleWeapon(ctx context.Context, p *page) (*fehwiki.Assembly, error) {
	r := p.record(weaponColor(p.categories))
	r.Header.IconURL = a.icon(ctx, fehwiki.IconWeapon, p.title)

	info := infobox(p.doc)
	if v := info["Might"]; v != "" {
		r.Set("Might", v, true)
	}
	if v := info["Range"]; v != "" {
		r.Set("Range", v, true)
	}
	if v := info["SP"]; v != "" {
		r.Set("SP Cost", v, false)
	}
	if v := info["Exclusive?"]; v != "" {
		r.Set("Exclusive?", v, true)
	}
	if v, ok := info["Description"]; ok {
		r.Set("Description", strings.TrimSpace(strings.ReplaceAll(v, "  ", " ")), false)
	}

	p.doc.Find("p").EachWithBreak(func(_ int, para *goquery.Selection) bool {
		if !strings.Contains(para.Text(), "can be evolved from") {
			return true
		}
		if origin := strings.TrimSpace(para.Find("a").First().Text()); origin != "" {
			r.Set("Evolves from", origin, false)
		}
		return false
	})

	if learners := weaponLearners(p.doc.Find("table.sortable").First()); learners != "" {
		r.Set("Heroes with "+p.title, learners, false)
	}

	p.doc.Find("table.wikitable.default").Each(func(_ int, t *goquery.Selection) {
		if strings.HasPrefix(strings.TrimSpace(t.Text()), "Language") {
			return
		}
		rows := ExtractTable(t, TableOptions{Links: true})
		if len(rows) == 0 {
			return
		}
		if _, ok := rows[0]["Image"]; ok {
			evolution, _, _ := strings.Cut(rows[0]["Name"], "|")
			r.Set("Evolution", evolution, false)
			r.Set("Evolution Cost", ParseCost(rows[0]["Cost"], "\n"), false)
			return
		}
		if _, ok := rows[0]["Type"]; ok {
			a.setRefines(ctx, r, rows)
		}
	})

	return p.assembly(r), nil
}

// setRefines adds the refine icon, taken from the first path without a
// generic stat icon, followed by one field per refine path. Repeated kinds
// are numbered from the second path on, e.g. "Refine: Unknown (2)".
func (a *Assembler) setRefines(ctx context.Context, r *fehwiki.Record, rows []Row) {
	kinds := make([]string, len(rows))
	for i, row := range rows {
		kinds[i] = "Unknown"
		if parts := strings.Split(row["Type"], "|"); len(parts) > 1 {
			if t := strings.TrimRight(parts[1], " W"); t != "" {
				kinds[i] = t
			}
		}
	}

	for _, kind := range kinds {
		if kind == "Unknown" || hasAnyPrefix(kind, offensiveRefines) {
			continue
		}
		if u := a.icon(ctx, fehwiki.IconSkill, kind); u != "" {
			r.Set("Refine Icon", u, false)
		}
		break
	}

	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		key := "Refine: " + kinds[i]
		if seen[kinds[i]]++; seen[kinds[i]] > 1 {
			key = fmt.Sprintf("%s (%d)", key, seen[kinds[i]])
		}
		stats, _, _ := strings.Cut(row["Stats"], "|")
		if stats == "" {
			stats = "No Stat Changes"
		}
		effect, _, _ := strings.Cut(row["Description"], "|")
		effect = strings.ReplaceAll(effect, "  ", " ")
		if effect == "" {
			effect = "No Effect"
		}
		cost := ParseCost(row["Cost"], ", ")
		r.Set(key, stats+"\n"+effect+"\nCost: "+cost, false)
	}
}

// weaponColor picks the accent color from the weapon categories. Bows and
// breaths come in every color.
func weaponColor(c fehwiki.Categories) fehwiki.Color {
	switch {
	case c.HasAny(fehwiki.CategorySwords, fehwiki.CategoryRedTomes):
		return fehwiki.ColorRed
	case c.HasAny(fehwiki.CategoryLances, fehwiki.CategoryBlueTomes):
		return fehwiki.ColorBlue
	case c.HasAny(fehwiki.CategoryAxes, fehwiki.CategoryGreenTomes):
		return fehwiki.ColorGreen
	case c.HasAny(fehwiki.CategoryStaves, fehwiki.CategoryDaggers):
		return fehwiki.ColorColorless
	}
	return fehwiki.ColorNull
}

// weaponLearners lists the shortened names of the heroes in a learners
// table, skipping the header row.
func weaponLearners(table *goquery.Selection) string {
	var names []string
	bodyRows(table).Each(func(_ int, tr *goquery.Selection) {
		a := tr.Find("td").First().Find("a").Eq(1)
		if a.Length() == 0 {
			return
		}
		name := strings.TrimSpace(strings.ReplaceAll(a.Text(), "\n", " "))
		names = append(names, fehwiki.ShortenName(name))
	})
	return strings.Join(names, ", ")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
