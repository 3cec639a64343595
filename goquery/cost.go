package goquery

import "strings"

// ParseCost renders a refinery cost cell extracted with TableOptions.Links,
// such as "300 SP\n200\n20|Arena Medal|Refining Stone|", as
// "300 SP, 200 Arena Medals, 20 Refining Stones". sep separates the amounts
// in the cell text. A cell with no text and no links yields "Unknown"; a
// cell that does not hold three amounts and two materials yields its text.
func ParseCost(cell, sep string) string {
	parts := strings.Split(cell, "|")
	if allEmpty(parts) {
		return "Unknown"
	}

	materials := parts[1:]
	amounts := strings.Split(parts[0], sep)
	if len(amounts) < 3 || len(materials) < 2 {
		return strings.TrimSpace(parts[0])
	}
	amounts[0] = strings.TrimSpace(amounts[0])
	amounts[1] = strings.TrimLeft(strings.TrimSpace(amounts[1]), "SP") + " " + strings.TrimSpace(materials[0]) + "s"
	amounts[2] = strings.TrimSpace(amounts[2]) + " " + strings.TrimSpace(materials[1]) + "s"
	return strings.Join(amounts, ", ")
}

func allEmpty(parts []string) bool {
	for _, p := range parts {
		if p != "" {
			return false
		}
	}
	return true
}
