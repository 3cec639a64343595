package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// sharedRestrictionPrefixes start a final table row that holds the inherit
// restriction of every tier.
var sharedRestrictionPrefixes = []string{"Cannot use:", "No restrictions.", "This skill can only", "Unknown"}

// assemblePassive builds one record per tier of a passive skill page.
func (a *Assembler) assemblePassive(ctx context.Context, p *page) (*fehwiki.Assembly, error) {
	statsTable := p.doc.Find("table.skills-table").First()
	var rows []*goquery.Selection
	bodyRows(statsTable).Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, tr)
	})
	if len(rows) == 0 {
		return p.assembly(p.record(fehwiki.ColorSingleTier)), nil
	}

	var shared string
	if last := rows[len(rows)-1]; hasAnyPrefix(strings.TrimSpace(last.Text()), sharedRestrictionPrefixes) {
		rows = rows[:len(rows)-1]
		shared = ParseInheritRestriction(last)
	}

	var learnersFrom *goquery.Selection
	if !p.categories.Has(fehwiki.CategorySealExclusiveSkill) {
		if t := learnerTable(p.doc); t.Length() > 0 && !t.IsSelection(statsTable) {
			learnersFrom = t
		}
	}
	sacredSeal := p.categories.Has(fehwiki.CategorySacredSeals)

	tier := 0
	if len(rows) == 2 {
		tier = 1
	}
	slot := "N/A"
	records := make([]*fehwiki.Record, 0, len(rows))
	for _, tr := range rows {
		cells := cellTexts(tr)
		if len(cells) > 5 && cells[0] != "N/A" {
			slot, cells = cells[0], cells[1:]
		}

		color := fehwiki.ColorSingleTier
		if len(rows) > 1 {
			color = fehwiki.TierColors[min(tier, len(fehwiki.TierColors)-1)]
		}
		tier++

		name := at(cells, 1)
		r := fehwiki.NewRecord(name)
		r.Header.Color = color
		r.Header.SourceURL = p.url
		r.Header.IconURL = a.icon(ctx, fehwiki.IconSkill, name)

		slotLabel := slot
		if sacredSeal && slot != "S" {
			slotLabel += "/S"
		}
		r.Set("Slot", slotLabel, true)
		r.Set("SP Cost", strings.TrimPrefix(at(cells, 2), "30px"), true)
		r.Set("Effect", strings.ReplaceAll(at(cells, 4), "\n", " "), false)

		restriction := shared
		if len(cells) > 5 {
			restriction = ParseInheritRestriction(tr.Find("td").Last())
			if !strings.HasPrefix(restriction, "No restrictions") && !strings.HasPrefix(restriction, "Cannot use") {
				restriction = "Cannot use: " + restriction
			}
		}
		if restriction != "" {
			r.Set("Inherit Restrictions", restriction, true)
		}

		if learnersFrom != nil {
			if learners := FindLearners(learnersFrom, name); learners != "" {
				if sacredSeal {
					learners = "Available as Sacred Seal\n" + learners
				}
				r.Set("Heroes with "+p.title, learners, false)
			}
		}
		records = append(records, r)
	}

	return p.assembly(records...), nil
}
