// Package filter narrows a holiday set by name, month, and date range.
//
// All criteria are optional and combine conjunctively:
//   - Query (case-insensitive substring of the holiday name)
//   - Month (1-12, matched against the holiday date)
//   - From/To (inclusive calendar-date bounds)
//
// Example usage:
//
//	f := filter.NewFilter()
//	f.Query = "diwali"
//	f.Month = 11
//
//	matched := f.Apply(entry.Holidays)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
)

// Filter represents holiday filtering criteria
type Filter struct {
	// Case-insensitive substring match on the name
	Query string `json:"query,omitempty"`

	// Month of the date, 0 when unset
	Month time.Month `json:"month,omitempty"`

	// Inclusive date range, compared as calendar dates
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
func NewFilter() *Filter {
	return &Filter{}
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Query) == "" &&
		f.Month == 0 &&
		f.From == nil &&
		f.To == nil
}

// Matches checks if a holiday matches all active filter criteria.
// A holiday whose date cannot be parsed never matches a month or range
// criterion.
func (f *Filter) Matches(h holiday.Holiday) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(h.Name), q) {
			return false
		}
	}

	if f.Month == 0 && f.From == nil && f.To == nil {
		return true
	}

	date, ok := holiday.ParseISO(h.Date)
	if !ok {
		return false
	}

	if f.Month != 0 && date.Month() != f.Month {
		return false
	}

	if f.From != nil && date.Before(dayOf(*f.From)) {
		return false
	}

	if f.To != nil && date.After(dayOf(*f.To)) {
		return false
	}

	return true
}

// Apply returns the holidays matching the filter, preserving order.
// The result is never nil.
func (f *Filter) Apply(holidays []holiday.Holiday) []holiday.Holiday {
	filtered := make([]holiday.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if f.Matches(h) {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "Query: diwali | Month: November | From: 2024-01-01 | To: 2024-12-31"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if q := strings.TrimSpace(f.Query); q != "" {
		parts = append(parts, fmt.Sprintf("Query: %s", q))
	}

	if f.Month != 0 {
		parts = append(parts, fmt.Sprintf("Month: %s", f.Month))
	}

	if f.From != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.From.Format(holiday.ISOLayout)))
	}

	if f.To != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.To.Format(holiday.ISOLayout)))
	}

	return strings.Join(parts, " | ")
}

// dayOf truncates t to midnight UTC of its calendar date
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
