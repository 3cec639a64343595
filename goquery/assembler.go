package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// Defaults for Assembler.
const (
	DefaultBaseURL         = "https://feheroes.fandom.com/wiki"
	DefaultMaxHops         = 5
	DefaultStubMarker      = "A new challenger approaches!"
	DefaultCategoryPreview = 20
	SummaryLimit           = 1000
)

// DefaultAmbiguousNames lists disambiguation titles that are listed rather
// than resolved to their first option.
var DefaultAmbiguousNames = []string{"Robin", "Corrin", "Tiki", "Morgan", "Grima", "Falchion", "Kana", "Byleth"}

// Ensure Assembler implements fehwiki.Assembler at compile time.
var _ fehwiki.Assembler = (*Assembler)(nil)

// Assembler builds display records from wiki pages, choosing an extraction
// rule by the page's categories. Redirects, disambiguation pages and person
// pages are resolved by assembling the page they point to.
type Assembler struct {
	Documents  fehwiki.DocumentFetcher
	Icons      fehwiki.IconFinder     // optional
	Categories fehwiki.CategoryLister // optional
	Converter  fehwiki.Converter      // optional, renders summaries

	// BaseURL prefixes page titles in record source URLs.
	BaseURL string
	// MaxHops bounds how many pages one lookup may be redirected through.
	MaxHops int
	// StubMarker identifies stub pages whose leading tables are skipped
	// when summarizing.
	StubMarker string
	// AmbiguousNames are disambiguation titles listed rather than resolved.
	AmbiguousNames []string
	// CategoryPreview is the number of member titles shown for a category.
	CategoryPreview int
}

// NewAssembler returns an Assembler with default settings.
func NewAssembler(documents fehwiki.DocumentFetcher, icons fehwiki.IconFinder, categories fehwiki.CategoryLister) *Assembler {
	return &Assembler{
		Documents:       documents,
		Icons:           icons,
		Categories:      categories,
		BaseURL:         DefaultBaseURL,
		MaxHops:         DefaultMaxHops,
		StubMarker:      DefaultStubMarker,
		AmbiguousNames:  DefaultAmbiguousNames,
		CategoryPreview: DefaultCategoryPreview,
	}
}

// Assemble fetches the page with the given title and builds its records.
func (a *Assembler) Assemble(ctx context.Context, title string) (*fehwiki.Assembly, error) {
	return a.assemble(ctx, title, &resolution{visited: make(map[string]struct{})})
}

// resolution tracks the pages visited while resolving one lookup.
type resolution struct {
	visited map[string]struct{}
}

func (a *Assembler) assemble(ctx context.Context, title string, res *resolution) (*fehwiki.Assembly, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := strings.ToLower(fehwiki.NormalizeCategory(title))
	if _, ok := res.visited[key]; ok {
		return nil, fehwiki.Errorf(fehwiki.EUNAVAILABLE, "redirect loop at %q", title)
	}
	if len(res.visited) > a.maxHops() {
		return nil, fehwiki.Errorf(fehwiki.EUNAVAILABLE, "too many redirects resolving %q", title)
	}
	res.visited[key] = struct{}{}

	doc, err := a.Documents.FetchDocument(ctx, title)
	if err != nil {
		return nil, err
	}

	tree, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return nil, fehwiki.Errorf(fehwiki.EUNAVAILABLE, "failed to parse %q: %v", title, err)
	}
	replaceBreaks(tree.Selection)

	p := &page{
		title:      title,
		url:        a.pageURL(title),
		categories: doc.Categories,
		doc:        tree.Selection,
	}

	switch classify(doc.Categories) {
	case ruleUnit:
		return a.assembleUnit(ctx, p)
	case ruleWeapon:
		return a.assembleWeapon(ctx, p)
	case rulePassive:
		return a.assemblePassive(ctx, p)
	case ruleSkill:
		return a.assembleSkill(ctx, p)
	default:
		return a.assembleGeneric(ctx, p, res)
	}
}

// page is one fetched page being assembled.
type page struct {
	title      string
	url        string
	categories fehwiki.Categories
	doc        *goquery.Selection
	referenced []string
}

func (p *page) record(color fehwiki.Color) *fehwiki.Record {
	r := fehwiki.NewRecord(p.title)
	r.Header.Color = color
	r.Header.SourceURL = p.url
	return r
}

func (p *page) assembly(records ...*fehwiki.Record) *fehwiki.Assembly {
	return &fehwiki.Assembly{
		Title:      p.title,
		Categories: p.categories,
		Records:    records,
		Referenced: p.referenced,
	}
}

// rule is an extraction rule. Rules are listed in dispatch priority order.
type rule int

const (
	ruleUnit rule = iota
	ruleWeapon
	rulePassive
	ruleSkill
	ruleGeneric
)

// String returns the rule name.
func (r rule) String() string {
	switch r {
	case ruleUnit:
		return "unit"
	case ruleWeapon:
		return "weapon"
	case rulePassive:
		return "passive"
	case ruleSkill:
		return "skill"
	}
	return "generic"
}

// classify picks the first rule whose categories the page belongs to.
// Pages often carry categories of several rules, so order matters.
func classify(c fehwiki.Categories) rule {
	switch {
	case c.HasAny(fehwiki.CategoryHeroes, fehwiki.CategoryEnemyUnits):
		return ruleUnit
	case c.Has(fehwiki.CategoryWeapons):
		return ruleWeapon
	case c.Has(fehwiki.CategoryPassives):
		return rulePassive
	case c.HasAny(fehwiki.CategorySpecials, fehwiki.CategoryAssists):
		return ruleSkill
	}
	return ruleGeneric
}

func (a *Assembler) maxHops() int {
	if a.MaxHops <= 0 {
		return DefaultMaxHops
	}
	return a.MaxHops
}

func (a *Assembler) pageURL(title string) string {
	base := a.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

// icon looks up an icon URL. Lookups are best effort; failures yield "".
func (a *Assembler) icon(ctx context.Context, kind fehwiki.IconKind, name string) string {
	if a.Icons == nil || name == "" {
		return ""
	}
	u, err := a.Icons.FindIcon(ctx, kind, name)
	if err != nil {
		return ""
	}
	return u
}

// learnerTable returns the last sortable table on the page.
func learnerTable(doc *goquery.Selection) *goquery.Selection {
	return doc.Find("table.sortable").Last()
}

// cellTexts returns the trimmed text of every data cell, with "N/A" for
// empty cells.
func cellTexts(tr *goquery.Selection) []string {
	var out []string
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		s := strings.TrimSpace(td.Text())
		if s == "" {
			s = "N/A"
		}
		out = append(out, s)
	})
	return out
}

// at returns s[i], or "N/A" when i is out of range. Negative indexes count
// from the end.
func at(s []string, i int) string {
	if i < 0 {
		i += len(s)
	}
	if i < 0 || i >= len(s) {
		return "N/A"
	}
	return s[i]
}
