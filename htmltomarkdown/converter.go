// Package htmltomarkdown renders wiki summary paragraphs as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fehwiki"
)

// Ensure Converter implements fehwiki.Converter at compile time.
var _ fehwiki.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert wiki HTML to Markdown.
// Links are reduced to their text and images are dropped, so only
// emphasis survives as markup.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithStrongDelimiter("**"),
				commonmark.WithEmDelimiter("*"),
			),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", fehwiki.Errorf(fehwiki.EINVALID, "empty HTML input")
	}

	plain, err := stripLinks(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(plain)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// stripLinks replaces anchors with their contents and removes images.
func stripLinks(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fehwiki.Errorf(fehwiki.EINVALID, "invalid HTML: %v", err)
	}

	doc.Find("img, sup.reference").Remove()
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		a.ReplaceWithSelection(a.Contents())
	})

	return doc.Find("body").Html()
}
