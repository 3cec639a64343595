package goquery

import (
	"fmt"
	"strconv"
	"strings"
)

var statColumns = []string{"HP", "ATK", "SPD", "DEF", "RES"}

const statCaption = "_Neutral stats.\n+4 boons are indicated by +, -4 banes are indicated by -._"

// FormatStatTable renders rows extracted with UpperKeys into a fixed-width
// grid of neutral stats, one line per rarity. Stats whose "low/neutral/high"
// variants differ by 4 are marked in the header: "+" for a boon, "-" for a
// bane and "±" for both. It reports false for an empty table.
func FormatStatTable(rows []Row) (string, bool) {
	if len(rows) == 0 {
		return "", false
	}

	markers := make(map[string]string)
	var body strings.Builder
	for _, row := range rows {
		body.WriteString("\n|" + row["RARITY"] + "★|")
		for _, stat := range statColumns {
			parts := strings.Split(row[stat], "/")
			neutral := parts[0]
			if len(parts) == 3 {
				neutral = parts[1]
				if lo, mid, hi, ok := variants(parts); ok {
					if hi-mid == 4 {
						markers[stat] = "+"
					}
					if mid-lo == 4 {
						if markers[stat] == "+" {
							markers[stat] = "±"
						} else {
							markers[stat] = "-"
						}
					}
				}
			}
			fmt.Fprintf(&body, "%4s|", neutral)
		}
	}

	var b strings.Builder
	b.WriteString("```| ★|")
	for _, stat := range statColumns {
		fmt.Fprintf(&b, "%4s|", markers[stat]+stat)
	}
	b.WriteString(body.String())
	b.WriteString("```")
	if len(markers) > 0 {
		b.WriteString(statCaption)
	}
	return b.String(), true
}

// BaseStatTotal returns the TOTAL column of the last row.
func BaseStatTotal(rows []Row) (string, bool) {
	if len(rows) == 0 {
		return "", false
	}
	total, ok := rows[len(rows)-1]["TOTAL"]
	return total, ok
}

func variants(parts []string) (lo, mid, hi int, ok bool) {
	var n [3]int
	for i, p := range parts {
		if !isDigits(p) {
			return 0, 0, 0, false
		}
		n[i], _ = strconv.Atoi(p)
	}
	return n[0], n[1], n[2], true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
