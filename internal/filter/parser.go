package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
)

// ParseMonth parses a month given as a number ("8", "08") or an English
// name ("aug", "August"). An empty string yields 0.
func ParseMonth(input string) (time.Month, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month out of range: %d", n)
		}
		return time.Month(n), nil
	}

	if m := parseMonth(input); m != 0 {
		return m, nil
	}

	return 0, fmt.Errorf("invalid month: %s", input)
}

// ParseBound parses an ISO date range bound. An empty string yields nil.
func ParseBound(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	t, ok := holiday.ParseISO(input)
	if !ok {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", input)
	}
	return &t, nil
}

// parseMonth converts a month name to time.Month
func parseMonth(name string) time.Month {
	name = strings.ToLower(strings.TrimSpace(name))

	months := map[string]time.Month{
		"jan": time.January, "january": time.January,
		"feb": time.February, "february": time.February,
		"mar": time.March, "march": time.March,
		"apr": time.April, "april": time.April,
		"may": time.May,
		"jun": time.June, "june": time.June,
		"jul": time.July, "july": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "sept": time.September, "september": time.September,
		"oct": time.October, "october": time.October,
		"nov": time.November, "november": time.November,
		"dec": time.December, "december": time.December,
	}

	return months[name]
}
