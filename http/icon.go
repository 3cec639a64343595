package http

import (
	"context"
	"net/url"
	"strings"
	"unicode"

	"github.com/fwojciec/fehwiki"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ensure IconService implements fehwiki.IconFinder at compile time.
var _ fehwiki.IconFinder = (*IconService)(nil)

// IconService looks up icon image URLs by file naming convention.
type IconService struct {
	client *Client
}

// NewIconService creates a new IconService.
func NewIconService(client *Client) *IconService {
	return &IconService{client: client}
}

type imageInfoResponse struct {
	Query struct {
		Pages map[string]struct {
			ImageInfo []struct {
				URL string `json:"url"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

// FindIcon returns the URL of the icon file for name. Names with
// apostrophes are retried without them, as the wiki drops them from file
// names.
func (s *IconService) FindIcon(ctx context.Context, kind fehwiki.IconKind, name string) (string, error) {
	u, err := s.findIcon(ctx, IconFile(kind, name))
	if fehwiki.ErrorCode(err) == fehwiki.ENOTFOUND && strings.Contains(name, "'") {
		return s.FindIcon(ctx, kind, strings.ReplaceAll(name, "'", ""))
	}
	return u, err
}

func (s *IconService) findIcon(ctx context.Context, file string) (string, error) {
	var resp imageInfoResponse
	params := url.Values{
		"action": {"query"},
		"titles": {file},
		"prop":   {"imageinfo"},
		"iiprop": {"url"},
	}
	if err := s.client.get(ctx, params, &resp); err != nil {
		return "", err
	}
	if _, missing := resp.Query.Pages["-1"]; missing {
		return "", fehwiki.Errorf(fehwiki.ENOTFOUND, "icon %q not found", file)
	}
	for _, p := range resp.Query.Pages {
		if len(p.ImageInfo) > 0 && p.ImageInfo[0].URL != "" {
			return p.ImageInfo[0].URL, nil
		}
	}
	return "", fehwiki.Errorf(fehwiki.ENOTFOUND, "icon %q not found", file)
}

// IconFile returns the wiki file name of the icon for name, e.g.
// "File:Weapon_Falchion.png" or "File:Marth_Altean_Prince_Face_FC.png".
func IconFile(kind fehwiki.IconKind, name string) string {
	prefix, suffix, plus := "", "", "_Plus_"
	switch kind {
	case fehwiki.IconHero:
		suffix = "_Face_FC"
	case fehwiki.IconWeapon:
		prefix, plus = "Weapon_", "_Plus"
	}
	return "File:" + prefix + stripDiacritics(strings.ReplaceAll(name, "+", plus)) + suffix + ".png"
}

// stripDiacritics removes combining marks, so "Líf" becomes "Lif".
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
