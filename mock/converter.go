package mock

import "github.com/fwojciec/fehwiki"

var _ fehwiki.Converter = (*Converter)(nil)

// Converter is a mock implementation of fehwiki.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
