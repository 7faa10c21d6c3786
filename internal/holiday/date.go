package holiday

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the canonical date layout
const ISOLayout = "2006-01-02"

// Layouts tried verbatim against the date text, in order
var explicitLayouts = []string{
	"2 Jan 2006",      // 15 Aug 2024
	"2 January 2006",  // 15 August 2024
	"2-1-2006",        // 15-08-2024
	"2/1/2006",        // 15/08/2024
	"2006-1-2",        // 2024-08-15
	"January 2, 2006", // August 15, 2024
	"Jan 2, 2006",     // Aug 15, 2024
	"2.1.2006",        // 15.08.2024
}

var (
	dayMonthNamePattern    = regexp.MustCompile(`^\d{1,2} [A-Za-z]{3,}$`)
	dayMonthNumericPattern = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}$`)
	embeddedDatePattern    = regexp.MustCompile(`\d{1,2} [A-Za-z]{3,} \d{4}`)
)

type candidate struct {
	layout string
	value  string
}

// Normalize resolves free-text date into a canonical YYYY-MM-DD date.
// yearHint is appended to year-less text ("15 Aug", "15/08"); pass 0 for no hint.
// The second return value is false when no format matches.
func Normalize(text string, yearHint int) (string, bool) {
	t := strings.Join(strings.Fields(text), " ")
	if t == "" {
		return "", false
	}

	candidates := make([]candidate, 0, len(explicitLayouts)+4)
	for _, layout := range explicitLayouts {
		candidates = append(candidates, candidate{layout, t})
	}

	if yearHint > 0 {
		year := strconv.Itoa(yearHint)
		if dayMonthNamePattern.MatchString(t) {
			candidates = append(candidates,
				candidate{"2 Jan 2006", t + " " + year},
				candidate{"2 January 2006", t + " " + year},
			)
		}
		if dayMonthNumericPattern.MatchString(t) {
			candidates = append(candidates,
				candidate{"2-1-2006", t + "-" + year},
				candidate{"2/1/2006", t + "/" + year},
			)
		}
	}

	for _, c := range candidates {
		if d, err := time.Parse(c.layout, c.value); err == nil {
			return d.Format(ISOLayout), true
		}
	}

	// Last resort: a "15 August 2024" fragment somewhere inside the text
	if m := embeddedDatePattern.FindString(t); m != "" {
		for _, layout := range []string{"2 January 2006", "2 Jan 2006"} {
			if d, err := time.Parse(layout, m); err == nil {
				return d.Format(ISOLayout), true
			}
		}
	}

	return "", false
}

// ParseISO parses a strict YYYY-MM-DD date
func ParseISO(s string) (time.Time, bool) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WeekdayName returns the English weekday name for a canonical date,
// or an empty string if the date is not canonical.
func WeekdayName(isoDate string) string {
	t, ok := ParseISO(isoDate)
	if !ok {
		return ""
	}
	return t.Weekday().String()
}
