// Package timeutil parses history windows such as "52w" or "1y2w" into a
// day count.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DaysPerYear is the length of a "y" unit; calendar years are not used
	// so a window means the same thing on every date.
	DaysPerYear = 365
	daysPerWeek = 7
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitDays       = map[string]int{
		"":      1,
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     daysPerWeek,
		"wk":    daysPerWeek,
		"wks":   daysPerWeek,
		"week":  daysPerWeek,
		"weeks": daysPerWeek,
		"y":     DaysPerYear,
		"yr":    DaysPerYear,
		"yrs":   DaysPerYear,
		"year":  DaysPerYear,
		"years": DaysPerYear,
	}
)

// ParseWindow turns "90", "90d", "52w" or "1y2w" into a day count and a
// canonical label. A bare number is a count of days.
func ParseWindow(input string) (int, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, "", fmt.Errorf("empty window")
	}

	total := 0
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		per, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * per
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be at least one day")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders days using y/w/d tokens, largest first.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	units := []struct {
		label string
		days  int
	}{
		{"y", DaysPerYear},
		{"w", daysPerWeek},
		{"d", 1},
	}
	var parts []string
	for _, u := range units {
		if days < u.days {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", days/u.days, u.label))
		days %= u.days
	}
	return strings.Join(parts, "")
}
