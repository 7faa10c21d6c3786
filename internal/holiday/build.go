package holiday

import (
	"sort"
	"strings"
)

// Row is one raw (name, date text, weekday text) triple taken from a holiday table.
// WeekdayText is empty when the table has no weekday column.
type Row struct {
	Name        string
	DateText    string
	WeekdayText string
}

// Build turns raw rows into the holiday set for year.
//
// Rows with an empty name or date, an unresolvable date, or a date outside year
// are dropped. The result is deduplicated by (date, lowercased name), keeping the
// first occurrence, and sorted by date with ties kept in input order.
func Build(rows []Row, year int, sourceURL string) []Holiday {
	holidays := make([]Holiday, 0, len(rows))

	for _, row := range rows {
		name := CleanName(row.Name)
		if name == "" || strings.TrimSpace(row.DateText) == "" {
			continue
		}

		iso, ok := Normalize(row.DateText, year)
		if !ok {
			continue
		}

		// Text carrying its own year may belong to another calendar year on the page
		if d, _ := ParseISO(iso); d.Year() != year {
			continue
		}

		weekday := strings.TrimSpace(row.WeekdayText)
		if weekday == "" {
			weekday = WeekdayName(iso)
		}

		holidays = append(holidays, New(name, iso, weekday, sourceURL))
	}

	return SortByDate(Dedupe(holidays))
}

// Dedupe removes holidays sharing a Key, keeping the first one seen
func Dedupe(holidays []Holiday) []Holiday {
	seen := make(map[string]bool, len(holidays))
	unique := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		key := h.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, h)
	}
	return unique
}

// SortByDate sorts holidays by date in place, keeping the relative order of equal dates
func SortByDate(holidays []Holiday) []Holiday {
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date < holidays[j].Date
	})
	return holidays
}
