package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// replaceBreaks turns every <br> below sel into a newline.
func replaceBreaks(sel *goquery.Selection) {
	sel.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(textNode("\n"))
	})
}

// emphasisText returns the text of sel with bold and italic markup rendered
// as ** and * markers. sel itself is left untouched.
func emphasisText(sel *goquery.Selection) string {
	c := sel.Clone()
	c.Find("b").Each(func(_ int, b *goquery.Selection) {
		b.ReplaceWithNodes(textNode("**" + b.Text() + "**"))
	})
	c.Find("i").Each(func(_ int, i *goquery.Selection) {
		i.ReplaceWithNodes(textNode("*" + i.Text() + "*"))
	})
	return c.Text()
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// hrefTitle turns an internal link such as "/Fury_1" into a page title.
func hrefTitle(href string) string {
	t := strings.TrimLeft(href, "/")
	if u, err := url.PathUnescape(t); err == nil {
		t = u
	}
	return strings.ReplaceAll(t, "_", " ")
}
