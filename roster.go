package fehwiki

import (
	"cmp"
	"context"
	"slices"
)

// RosterEntry is one hero's level 40 neutral stat line.
type RosterEntry struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Weapon   string `json:"weapon"`
	Movement string `json:"movement"`
	HP       int    `json:"hp"`
	ATK      int    `json:"atk"`
	SPD      int    `json:"spd"`
	DEF      int    `json:"def"`
	RES      int    `json:"res"`
	Total    int    `json:"total"`
}

// Stat returns the value of a stat identifier, or 0 for unknown names.
func (e *RosterEntry) Stat(name string) int {
	switch name {
	case StatHP:
		return e.HP
	case StatATK:
		return e.ATK
	case StatSPD:
		return e.SPD
	case StatDEF:
		return e.DEF
	case StatRES:
		return e.RES
	case StatBST:
		return e.Total
	}
	return 0
}

// Sum returns the sum of the stats named by the key.
func (e *RosterEntry) Sum(key SortKey) int {
	var n int
	for _, f := range key.Fields {
		n += e.Stat(f)
	}
	return n
}

// Roster is the list of heroes with complete stat data.
type Roster []*RosterEntry

// NewRoster returns a roster of entries, excluding incomplete entries
// whose total is zero.
func NewRoster(entries []*RosterEntry) Roster {
	roster := make(Roster, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Total == 0 {
			continue
		}
		roster = append(roster, e)
	}
	return roster
}

// Filter returns the entries matching every bucket of the criteria.
// Within a bucket any listed value matches; an empty bucket matches all.
func (r Roster) Filter(c *FilterCriteria) Roster {
	if c == nil {
		return r
	}
	var out Roster
	for _, e := range r {
		if c.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Match reports whether the entry satisfies the criteria.
func (c *FilterCriteria) Match(e *RosterEntry) bool {
	if len(c.Colour) > 0 && !slices.Contains(c.Colour, e.Color) {
		return false
	}
	if len(c.Weapon) > 0 && !slices.Contains(c.Weapon, e.Weapon) {
		return false
	}
	if len(c.Movement) > 0 && !slices.Contains(c.Movement, e.Movement) {
		return false
	}
	for _, t := range c.Threshold {
		if !t.Comparator.Compare(e.Sum(t.Field), t.Value) {
			return false
		}
	}
	return true
}

// Sort returns a copy of the roster ordered by the keys in turn. Stat keys
// sort highest first, names alphabetically, and colour, weapon and movement
// in the order of Colours, Weapons and Movements. Ties keep roster order.
func (r Roster) Sort(keys []SortKey) Roster {
	out := slices.Clone(r)
	slices.SortStableFunc(out, func(a, b *RosterEntry) int {
		for _, k := range keys {
			if c := compareBy(a, b, k); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

func compareBy(a, b *RosterEntry, k SortKey) int {
	if len(k.Fields) == 1 {
		switch k.Fields[0] {
		case FieldName:
			return cmp.Compare(a.Name, b.Name)
		case FieldColour:
			return cmp.Compare(slices.Index(Colours, a.Color), slices.Index(Colours, b.Color))
		case FieldWeapon:
			return cmp.Compare(slices.Index(Weapons, a.Weapon), slices.Index(Weapons, b.Weapon))
		case FieldMovement:
			return cmp.Compare(slices.Index(Movements, a.Movement), slices.Index(Movements, b.Movement))
		}
	}
	return cmp.Compare(b.Sum(k), a.Sum(k))
}

// RosterSource loads the hero roster.
type RosterSource interface {
	// FetchRoster returns the current roster.
	// Returns EUNAVAILABLE if the source page cannot be fetched.
	FetchRoster(ctx context.Context) (Roster, error)
}
