package fehwiki

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// Bold and italic markup become ** and * emphasis markers.
	Convert(html string) (string, error)
}
