package fehwiki

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Wiki category labels that drive record assembly.
const (
	CategoryHeroes          = "Heroes"
	CategoryEnemyUnits      = "Enemy units"
	CategoryLegendaryHeroes = "Legendary Heroes"

	CategoryWeapons    = "Weapons"
	CategorySwords     = "Swords"
	CategoryRedTomes   = "Red Tomes"
	CategoryLances     = "Lances"
	CategoryBlueTomes  = "Blue Tomes"
	CategoryAxes       = "Axes"
	CategoryGreenTomes = "Green Tomes"
	CategoryStaves     = "Staves"
	CategoryDaggers    = "Daggers"

	CategoryPassives           = "Passives"
	CategorySealExclusiveSkill = "Seal Exclusive Skills"
	CategorySacredSeals        = "Sacred Seals"

	CategorySpecials    = "Specials"
	CategoryAssists     = "Assists"
	CategoryStaffAssist = "Staff Assists"
	CategoryAoESpecials = "Area of Effect Specials"

	CategoryDisambiguation = "Disambiguation pages"
	CategoryPersons        = "Persons"
)

// CategoryPrefix marks category-listing page titles.
const CategoryPrefix = "Category:"

// Document represents a parsed wiki page.
type Document struct {
	Title       string     `json:"title"`
	HTML        string     `json:"html"`
	Categories  Categories `json:"categories"`
	ContentHash string     `json:"contentHash"`
	FetchedAt   time.Time  `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	return nil
}

// Categories is an ordered set of category labels. Labels are stored with
// underscores replaced by spaces; lookups ignore case.
type Categories struct {
	labels []string
	index  map[string]struct{}
}

// NewCategories builds a category set from raw labels, dropping blanks and
// duplicates while keeping first-seen order.
func NewCategories(labels ...string) Categories {
	var c Categories
	for _, l := range labels {
		c.Add(l)
	}
	return c
}

// NormalizeCategory converts a raw category label into its display form.
func NormalizeCategory(label string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(label, "_", " ")), " ")
}

// Add inserts a label if it is not already present.
func (c *Categories) Add(label string) {
	label = NormalizeCategory(label)
	if label == "" {
		return
	}
	key := strings.ToLower(label)
	if c.index == nil {
		c.index = make(map[string]struct{})
	}
	if _, ok := c.index[key]; ok {
		return
	}
	c.index[key] = struct{}{}
	c.labels = append(c.labels, label)
}

// Has reports whether the label is in the set.
func (c Categories) Has(label string) bool {
	_, ok := c.index[strings.ToLower(NormalizeCategory(label))]
	return ok
}

// HasAny reports whether any of the labels is in the set.
func (c Categories) HasAny(labels ...string) bool {
	for _, l := range labels {
		if c.Has(l) {
			return true
		}
	}
	return false
}

// Labels returns the labels in insertion order.
func (c Categories) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Len returns the number of labels.
func (c Categories) Len() int {
	return len(c.labels)
}

// String joins the labels with ", ".
func (c Categories) String() string {
	return strings.Join(c.labels, ", ")
}

// MarshalJSON encodes the labels as a JSON array.
func (c Categories) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Labels())
}

// UnmarshalJSON decodes a JSON array of labels.
func (c *Categories) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*c = NewCategories(labels...)
	return nil
}

// DocumentFetcher retrieves parsed wiki pages by title.
type DocumentFetcher interface {
	// FetchDocument returns the page with the given title.
	// Returns EUNAVAILABLE if the page cannot be fetched or has no content.
	FetchDocument(ctx context.Context, title string) (*Document, error)
}

// CategoryLister pages through the members of a category.
type CategoryLister interface {
	// ListCategoryMembers returns one page of member titles and the
	// continuation token for the next page. An empty token means the
	// listing is exhausted.
	ListCategoryMembers(ctx context.Context, category, continuation string) (members []string, next string, err error)
}

// IconKind selects the file naming convention used for an icon lookup.
type IconKind int

// Icon kinds.
const (
	IconSkill IconKind = iota
	IconHero
	IconWeapon
)

// IconFinder looks up image URLs for wiki entities.
type IconFinder interface {
	// FindIcon returns the URL of the icon for name.
	// Returns ENOTFOUND if no icon exists.
	FindIcon(ctx context.Context, kind IconKind, name string) (string, error)
}
