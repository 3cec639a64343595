package http

import (
	"context"
	"net/url"

	"github.com/fwojciec/fehwiki"
)

// CategoryPageSize is the number of members requested per page.
const CategoryPageSize = "500"

// Ensure CategoryService implements fehwiki.CategoryLister at compile time.
var _ fehwiki.CategoryLister = (*CategoryService)(nil)

// CategoryService lists category members.
type CategoryService struct {
	client *Client
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(client *Client) *CategoryService {
	return &CategoryService{client: client}
}

type categoryMembersResponse struct {
	Error    *apiError `json:"error"`
	Continue struct {
		CMContinue string `json:"cmcontinue"`
	} `json:"continue"`
	Query struct {
		CategoryMembers []struct {
			Title string `json:"title"`
		} `json:"categorymembers"`
	} `json:"query"`
}

// ListCategoryMembers returns one page of the category's member pages.
func (s *CategoryService) ListCategoryMembers(ctx context.Context, category, continuation string) ([]string, string, error) {
	var resp categoryMembersResponse
	params := url.Values{
		"action":  {"query"},
		"list":    {"categorymembers"},
		"cmtitle": {category},
		"cmlimit": {CategoryPageSize},
		"cmtype":  {"page"},
	}
	if continuation != "" {
		params.Set("cmcontinue", continuation)
	}
	if err := s.client.get(ctx, params, &resp); err != nil {
		return nil, "", err
	}
	if resp.Error != nil {
		return nil, "", fehwiki.Errorf(fehwiki.EUNAVAILABLE, "category %q unavailable: %s", category, resp.Error.Info)
	}

	members := make([]string, 0, len(resp.Query.CategoryMembers))
	for _, m := range resp.Query.CategoryMembers {
		members = append(members, m.Title)
	}
	return members, resp.Continue.CMContinue, nil
}
