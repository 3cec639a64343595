package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/fehwiki"
)

// Ensure DocumentService implements fehwiki.DocumentFetcher at compile time.
var _ fehwiki.DocumentFetcher = (*DocumentService)(nil)

// DocumentService fetches rendered wiki pages with their categories.
type DocumentService struct {
	client *Client

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(client *Client) *DocumentService {
	return &DocumentService{client: client, Now: time.Now}
}

type parseResponse struct {
	Error *apiError `json:"error"`
	Parse struct {
		Title string `json:"title"`
		Text  struct {
			HTML string `json:"*"`
		} `json:"text"`
		Categories []struct {
			Name string `json:"*"`
		} `json:"categories"`
	} `json:"parse"`
}

// FetchDocument returns the rendered page with the given title.
func (s *DocumentService) FetchDocument(ctx context.Context, title string) (*fehwiki.Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fehwiki.Errorf(fehwiki.EINVALID, "page title required")
	}

	var resp parseResponse
	params := url.Values{
		"action": {"parse"},
		"page":   {title},
		"prop":   {"text|categories"},
	}
	if err := s.client.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fehwiki.Errorf(fehwiki.EUNAVAILABLE, "page %q unavailable: %s", title, resp.Error.Info)
	}
	if strings.TrimSpace(resp.Parse.Text.HTML) == "" {
		return nil, fehwiki.Errorf(fehwiki.EUNAVAILABLE, "page %q has no content", title)
	}

	labels := make([]string, 0, len(resp.Parse.Categories))
	for _, c := range resp.Parse.Categories {
		labels = append(labels, c.Name)
	}

	docTitle := resp.Parse.Title
	if docTitle == "" {
		docTitle = title
	}
	html := resp.Parse.Text.HTML
	return &fehwiki.Document{
		Title:       docTitle,
		HTML:        html,
		Categories:  fehwiki.NewCategories(labels...),
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(html)),
		FetchedAt:   s.Now().UTC(),
	}, nil
}
