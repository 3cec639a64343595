package goquery

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// RosterPage is the wiki page listing every hero's level 40 stats.
const RosterPage = "Level 40 stats table"

// Ensure RosterService implements fehwiki.RosterSource at compile time.
var _ fehwiki.RosterSource = (*RosterService)(nil)

// RosterService loads the hero roster from the wiki.
type RosterService struct {
	Documents fehwiki.DocumentFetcher
}

// NewRosterService returns a RosterService reading pages from documents.
func NewRosterService(documents fehwiki.DocumentFetcher) *RosterService {
	return &RosterService{Documents: documents}
}

// FetchRoster fetches and parses the roster page.
func (s *RosterService) FetchRoster(ctx context.Context) (fehwiki.Roster, error) {
	doc, err := s.Documents.FetchDocument(ctx, RosterPage)
	if err != nil {
		return nil, err
	}
	return ParseRoster(doc.HTML)
}

// ParseRoster reads roster entries from the last table of the stats page.
// Rows without weapon and movement attributes or enough cells are skipped,
// non-numeric stats count as 0, and entries without a total are dropped.
func ParseRoster(html string) (fehwiki.Roster, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fehwiki.Errorf(fehwiki.EINVALID, "failed to parse HTML: %v", err)
	}

	var entries []*fehwiki.RosterEntry
	doc.Find("table").Last().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if e, ok := rosterEntry(tr); ok {
			entries = append(entries, e)
		}
	})
	return fehwiki.NewRoster(entries), nil
}

func rosterEntry(tr *goquery.Selection) (*fehwiki.RosterEntry, bool) {
	weaponType, ok := tr.Attr("data-weapon-type")
	if !ok {
		return nil, false
	}
	colorWeapon := strings.Fields(weaponType)
	if len(colorWeapon) != 2 {
		return nil, false
	}
	movement, ok := tr.Attr("data-move-type")
	if !ok {
		return nil, false
	}
	tds := tr.Find("td")
	if tds.Length() < 10 {
		return nil, false
	}

	stat := func(i int) int {
		n, err := strconv.Atoi(tds.Eq(i).Text())
		if err != nil || !isDigits(tds.Eq(i).Text()) {
			return 0
		}
		return n
	}
	return &fehwiki.RosterEntry{
		Name:     tds.Eq(1).Text(),
		Color:    colorWeapon[0],
		Weapon:   colorWeapon[1],
		Movement: movement,
		HP:       stat(4),
		ATK:      stat(5),
		SPD:      stat(6),
		DEF:      stat(7),
		RES:      stat(8),
		Total:    stat(9),
	}, true
}
