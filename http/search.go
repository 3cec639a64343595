package http

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/fwojciec/fehwiki"
)

// Ensure SearchService implements fehwiki.Searcher at compile time.
var _ fehwiki.Searcher = (*SearchService)(nil)

// SearchService searches page titles with the opensearch API.
type SearchService struct {
	client *Client
}

// NewSearchService creates a new SearchService.
func NewSearchService(client *Client) *SearchService {
	return &SearchService{client: client}
}

// Search returns the titles matching query, with redirects resolved.
func (s *SearchService) Search(ctx context.Context, query string) ([]string, error) {
	// The response is [query, [titles], [descriptions], [urls]].
	var resp []json.RawMessage
	params := url.Values{
		"action":    {"opensearch"},
		"search":    {query},
		"redirects": {"resolve"},
	}
	if err := s.client.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if len(resp) < 2 {
		return nil, nil
	}

	var titles []string
	if err := json.Unmarshal(resp[1], &titles); err != nil {
		return nil, fehwiki.Errorf(fehwiki.EUNAVAILABLE, "invalid search response: %v", err)
	}
	return titles, nil
}
