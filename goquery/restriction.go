package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RestrictionFallback replaces inherit restrictions that cannot be parsed.
const RestrictionFallback = "*Inherit restrictions could not be parsed at this time. Please refer to the source page.*"

// ParseInheritRestriction renders an inherit-restriction cell as its text
// followed by the comma-joined titles of the pages it links to. A link
// without a title makes the cell unreadable; the cell's text is then parsed
// again as a fresh fragment, and RestrictionFallback is returned if that
// fails too.
func ParseInheritRestriction(cell *goquery.Selection) string {
	if s, ok := restrictionText(cell); ok {
		return s
	}
	frag, err := parseFragment(strings.TrimSpace(cell.Text()))
	if err != nil {
		return RestrictionFallback
	}
	if s, ok := restrictionText(frag); ok {
		return s
	}
	return RestrictionFallback
}

func restrictionText(sel *goquery.Selection) (string, bool) {
	text := strings.TrimSpace(sel.Text())
	anchors := sel.Find("a")
	if anchors.Length() == 0 {
		return text, true
	}
	titles := make([]string, 0, anchors.Length())
	ok := true
	anchors.EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title, exists := a.Attr("title")
		if !exists {
			ok = false
			return false
		}
		titles = append(titles, title)
		return true
	})
	if !ok {
		return "", false
	}
	return strings.TrimSpace(text + " " + strings.TrimSpace(strings.Join(titles, ", "))), true
}

// parseFragment parses s as HTML body content and wraps the result in a
// detached div.
func parseFragment(s string) (*goquery.Selection, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(s), root)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root).Selection, nil
}
