package goquery

import (
	"context"
	"slices"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// assembleUnit builds the record of a hero or enemy unit page.
func (a *Assembler) assembleUnit(ctx context.Context, p *page) (*fehwiki.Assembly, error) {
	info := heroInfobox(p.doc)
	weaponType := info["weapon type"]

	r := p.record(unitColor(weaponType))
	r.Header.IconURL = a.icon(ctx, fehwiki.IconHero, heroIconName(p.title))

	if msg := unitNotice(p); msg != "" {
		r.Set("Message", msg, false)
	}

	if rarities, ok := info["rarities"]; ok {
		var stars []string
		for _, c := range rarities {
			if unicode.IsDigit(c) {
				stars = append(stars, string(c)+"★")
			}
		}
		value := strings.Join(stars, "-")
		if value == "" {
			value = "N/A"
		}
		r.Set("Rarities", value, true)
	}

	base, maxLevel := unitStatTables(p.doc)
	if total, ok := BaseStatTotal(maxLevel); ok {
		r.Set("BST", total, true)
	}
	if p.categories.Has(fehwiki.CategoryLegendaryHeroes) {
		r.Set("Element", strings.TrimSpace(info["effect"])+" ("+info["ally boost"]+")", false)
	}
	r.Set("Weapon Type", weaponType, true)
	r.Set("Move Type", info["move type"], true)
	if s, ok := FormatStatTable(base); ok {
		r.Set("Base Stats", s, false)
	}
	if s, ok := FormatStatTable(maxLevel); ok {
		r.Set("Max Level Stats", s, false)
	}
	if skills := learnableSkills(p); skills != "" {
		r.Set("Learnable Skills", skills, false)
	}

	return p.assembly(r), nil
}

// unitColor picks the accent color from the weapon type. Later matches win.
func unitColor(weaponType string) fehwiki.Color {
	color := fehwiki.ColorColorless
	if strings.Contains(weaponType, "Red") || strings.Contains(weaponType, "Sword") {
		color = fehwiki.ColorRed
	}
	if strings.Contains(weaponType, "Blue") || strings.Contains(weaponType, "Lance") {
		color = fehwiki.ColorBlue
	}
	if strings.Contains(weaponType, "Green") || strings.Contains(weaponType, "Axe") {
		color = fehwiki.ColorGreen
	}
	return color
}

// heroIconName keeps the letters, spaces and hyphens of a hero title.
func heroIconName(title string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || r == ' ' || r == '-' {
			return r
		}
		return -1
	}, title)
}

// unitNotice returns the "you may be looking for" or "this page is about"
// hatnote of a unit page. Suggested pages are added to the referenced list.
func unitNotice(p *page) string {
	first := p.doc.Find("table.wikitable").First()
	if strings.HasPrefix(strings.TrimSpace(first.Text()), "You may") && first.Find("td").Length() > 0 {
		var alts []string
		seen := make(map[string]struct{})
		first.Find("td").First().Find("div.tooltiptext").Each(func(_ int, div *goquery.Selection) {
			alt := strings.TrimSpace(div.Text())
			if alt == "" {
				return
			}
			alts = append(alts, alt)
			if _, ok := seen[alt]; !ok {
				seen[alt] = struct{}{}
				p.referenced = append(p.referenced, alt)
			}
		})
		return "**You may be looking for:** " + strings.Join(alts, ", ")
	}

	var notice string
	p.doc.Find("i").EachWithBreak(func(_ int, i *goquery.Selection) bool {
		if strings.Contains(i.Text(), "This page is about") {
			notice = "*" + strings.TrimSpace(i.Text()) + "*"
			return false
		}
		return true
	})
	return notice
}

// unitStatTables extracts the base and max level stat tables, the first
// two tables mentioning rarity. Both are nil unless both exist.
func unitStatTables(doc *goquery.Selection) (base, maxLevel []Row) {
	var tables []*goquery.Selection
	doc.Find("table.wikitable").Each(func(_ int, t *goquery.Selection) {
		if strings.Contains(t.Text(), "Rarity") {
			tables = append(tables, t)
		}
	})
	if len(tables) < 2 {
		return nil, nil
	}
	opts := TableOptions{UpperKeys: true}
	return ExtractTable(tables[0], opts), ExtractTable(tables[1], opts)
}

// learnableSkills lists the skills of every skill table on a unit page, one
// line per weapon, assist or special table and one per passive slot, each
// followed by the rarity the last skill is learned at.
func learnableSkills(p *page) string {
	var b strings.Builder
	p.doc.Find("table.skills-table").Each(func(_ int, table *goquery.Selection) {
		rows := bodyRows(table)
		if rows.Length() == 0 {
			return
		}
		var headings []string
		table.Find("th").Each(func(_ int, th *goquery.Selection) {
			headings = append(headings, strings.TrimSpace(th.Text()))
		})
		switch {
		case slices.Contains(headings, "Might"):
			b.WriteString("**Weapons:** ")
		case slices.Contains(headings, "Range"):
			b.WriteString("**Assists:** ")
		case slices.Contains(headings, "Cooldown"):
			b.WriteString("**Specials:** ")
		}

		var (
			names      []string
			learned    string
			inPassives bool
		)
		flush := func() {
			b.WriteString(strings.Join(names, ", "))
			b.WriteString(learned)
			names = nil
		}
		rows.Each(func(_ int, tr *goquery.Selection) {
			tds := tr.Find("td")
			if tds.Length() == 0 {
				return
			}
			slot := tds.FilterFunction(func(_ int, td *goquery.Selection) bool {
				_, ok := td.Attr("rowspan")
				return ok
			}).First()
			if slot.Length() > 0 {
				inPassives = true
				flush()
				b.WriteString("\n**" + slot.Text() + ":** ")
			}

			idx := 0
			if inPassives {
				idx = 1
			}
			skill := tds.Eq(idx)
			names = append(names, strings.TrimSpace(skill.Text()))
			if href, ok := skill.Find("a").Attr("href"); ok {
				p.referenced = append(p.referenced, hrefTitle(href))
			}

			rarityCell := tds.Last()
			if slot.Length() > 0 {
				rarityCell = tds.Eq(tds.Length() - 2)
			}
			learned = " (" + strings.TrimSpace(rarityCell.Text()) + "★)"
		})
		if len(names) > 0 {
			flush()
			b.WriteString("\n")
		}
	})
	return strings.TrimSpace(b.String())
}
