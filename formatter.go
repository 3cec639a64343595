package fehwiki

import (
	"fmt"
	"strings"
)

// FormatRecords formats records as plain text for terminal display.
// Inline fields print on one line; other fields print their value below
// the key. Records are separated by blank lines.
func FormatRecords(records []*Record) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		var b strings.Builder
		b.WriteString("## " + r.Header.Title)
		if r.Header.SourceURL != "" {
			b.WriteString("\n" + r.Header.SourceURL)
		}
		for _, f := range r.fields {
			if f.Inline {
				fmt.Fprintf(&b, "\n%s: %s", f.Key, f.Value)
			} else {
				fmt.Fprintf(&b, "\n%s:\n%s", f.Key, f.Value)
			}
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatRoster formats roster entries one per line.
func FormatRoster(roster Roster) string {
	if len(roster) == 0 {
		return ""
	}

	lines := make([]string, 0, len(roster))
	for _, e := range roster {
		lines = append(lines, fmt.Sprintf("%s (%s %s, %s) HP %d / ATK %d / SPD %d / DEF %d / RES %d / BST %d",
			e.Name, e.Color, e.Weapon, e.Movement, e.HP, e.ATK, e.SPD, e.DEF, e.RES, e.Total))
	}
	return strings.Join(lines, "\n")
}
