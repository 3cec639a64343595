package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// assembleSkill builds the record of a special or assist page.
func (a *Assembler) assembleSkill(ctx context.Context, p *page) (*fehwiki.Assembly, error) {
	special := p.categories.Has(fehwiki.CategorySpecials)
	color, rangeKey := fehwiki.ColorAssist, "Range"
	if special {
		color, rangeKey = fehwiki.ColorSpecial, "Cooldown"
	}
	r := p.record(color)
	if p.categories.Has(fehwiki.CategoryStaffAssist) {
		r.Header.IconURL = a.icon(ctx, fehwiki.IconWeapon, p.title)
	}

	statsTable := p.doc.Find("table.skills-table").First()
	trs := statsTable.Find("tr")
	cells := cellTexts(trs.Eq(1))

	if len(cells) > 0 {
		r.Set(rangeKey, at(cells, 1), true)
		r.Set("SP Cost", at(cells, 3), true)
		r.Set("Effect", at(cells, 2), false)
	}
	if special && p.categories.Has(fehwiki.CategoryAoESpecials) {
		if grid := areaOfEffect(p.doc.Find("table.wikitable").Eq(1)); grid != "" {
			r.Set("Area of Effect", grid, false)
		}
	}
	if len(cells) > 0 {
		r.Set("Prerequisite", strings.ReplaceAll(at(cells, -1), "\n", ", "), false)
	}
	if trs.Length() > 1 {
		r.Set("Inherit Restrictions", ParseInheritRestriction(trs.Last()), true)
	}

	if t := learnerTable(p.doc); t.Length() > 0 {
		if learners := FindLearners(t, at(cells, 0)); learners != "" {
			r.Set("Heroes with "+p.title, learners, false)
		}
	}

	return p.assembly(r), nil
}

// areaOfEffect renders a range table as a monospace map: "X" marks the
// target, "O" every other affected cell.
func areaOfEffect(table *goquery.Selection) string {
	if table.Length() == 0 {
		return ""
	}
	var b strings.Builder
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			img := td.Find("img").First()
			switch {
			case img.Length() == 0:
				b.WriteByte(' ')
			case strings.Contains(img.AttrOr("alt", ""), "Special"):
				b.WriteByte('X')
			default:
				b.WriteByte('O')
			}
		})
		b.WriteByte('\n')
	})
	return "```" + b.String() + "```"
}
