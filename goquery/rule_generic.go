package goquery

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// assembleGeneric builds the record of any other page. Disambiguation,
// person and soft redirect pages resolve to the page they point to.
func (a *Assembler) assembleGeneric(ctx context.Context, p *page, res *resolution) (*fehwiki.Assembly, error) {
	r := p.record(fehwiki.ColorNull)
	if p.categories.Len() > 0 {
		r.Set("Categories", p.categories.String(), false)
	}

	switch {
	case p.categories.Has(fehwiki.CategoryDisambiguation):
		var options []string
		p.doc.Find("li").Each(func(_ int, li *goquery.Selection) {
			if title, ok := li.Find("a").First().Attr("title"); ok && strings.TrimSpace(title) != "" {
				options = append(options, strings.TrimSpace(title))
			}
		})
		if slices.Contains(a.AmbiguousNames, p.title) {
			r.Set("Could refer to:", strings.Join(options, "\n"), false)
			return p.assembly(r), nil
		}
		if len(options) == 0 {
			return p.assembly(r), nil
		}
		return a.assemble(ctx, options[0], res)

	case p.categories.Has(fehwiki.CategoryPersons):
		var target string
		p.doc.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			title, ok := link.Attr("title")
			if ok && strings.Contains(link.Text(), p.title) {
				target = strings.TrimSpace(title)
				return false
			}
			return true
		})
		if target == "" {
			return p.assembly(r), nil
		}
		resolved, err := a.assemble(ctx, target, res)
		if fehwiki.ErrorCode(err) == fehwiki.EUNAVAILABLE {
			return p.assembly(r), nil
		}
		return resolved, err

	case strings.Contains(strings.ToLower(p.doc.Text()), "redirect"):
		target := strings.TrimSpace(p.doc.Find("a").First().Text())
		if target == "" {
			return p.assembly(r), nil
		}
		return a.assemble(ctx, target, res)

	case strings.HasPrefix(p.title, fehwiki.CategoryPrefix):
		if err := a.setCategoryMembers(ctx, r, p.title); err != nil {
			return nil, err
		}
		return p.assembly(r), nil
	}

	if summary := a.summary(p.doc); summary != "" {
		r.Set("Summary", summary, false)
	}
	return p.assembly(r), nil
}

// setCategoryMembers pages through the members of a category and records
// their count and the first few titles.
func (a *Assembler) setCategoryMembers(ctx context.Context, r *fehwiki.Record, category string) error {
	if a.Categories == nil {
		return nil
	}
	var members []string
	continuation := ""
	for {
		page, next, err := a.Categories.ListCategoryMembers(ctx, category, continuation)
		if err != nil {
			return err
		}
		members = append(members, page...)
		if next == "" {
			break
		}
		continuation = next
	}

	preview := a.CategoryPreview
	if preview <= 0 {
		preview = DefaultCategoryPreview
	}
	r.Set("Total Pages", strconv.Itoa(len(members)), false)
	r.Set("First "+strconv.Itoa(preview)+" Pages", strings.Join(members[:min(preview, len(members))], "\n"), true)
	return nil
}

// summary returns the first paragraph of an article with emphasis markers,
// cut to SummaryLimit runes. On stub pages the paragraphs inside the first
// two table bodies are skipped.
func (a *Assembler) summary(doc *goquery.Selection) string {
	var skip []*goquery.Selection
	if tbodies := doc.Find("tbody"); a.StubMarker != "" && tbodies.Length() > 0 && strings.Contains(doc.Text(), a.StubMarker) {
		first := tbodies.First()
		second := tbodies.FilterFunction(func(_ int, tb *goquery.Selection) bool {
			n := tb.Get(0)
			return n != first.Get(0) && !first.Contains(n)
		}).First()
		skip = append(skip, first, second)
	}

	para := doc.Find("p").FilterFunction(func(_ int, p *goquery.Selection) bool {
		for _, s := range skip {
			if s.Contains(p.Get(0)) {
				return false
			}
		}
		return true
	}).First()
	if para.Length() == 0 {
		return ""
	}

	var text string
	if a.Converter != nil {
		if h, err := goquery.OuterHtml(para); err == nil {
			if md, err := a.Converter.Convert(h); err == nil {
				text = md
			}
		}
	}
	if text == "" {
		text = emphasisText(para)
	}
	return truncate(strings.TrimSpace(text), SummaryLimit)
}
