package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate SortOrder = "date"
	SortByName SortOrder = "name"
)

// sortHolidays sorts holidays in place based on the specified sort order
func sortHolidays(hols []holiday.Holiday, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.SliceStable(hols, func(i, j int) bool {
			return hols[i].Date < hols[j].Date
		})
	case SortByName:
		sort.SliceStable(hols, func(i, j int) bool {
			ni, nj := strings.ToLower(hols[i].Name), strings.ToLower(hols[j].Name)
			if ni != nj {
				return ni < nj
			}
			// If names are equal, sort by date
			return hols[i].Date < hols[j].Date
		})
	}
}
