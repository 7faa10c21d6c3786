package scraper

import (
	"strings"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/logger"
)

var (
	// A holiday table needs one header from each of these groups
	qualifyingNameKeywords = []string{"holiday", "occasion"}
	qualifyingDateKeywords = []string{"date"}

	nameKeywords    = []string{"holiday", "occasion", "festival"}
	dateKeywords    = []string{"date"}
	weekdayKeywords = []string{"day", "weekday"}
)

// Positional fallbacks for roles no header matched
const (
	fallbackNameColumn    = 0
	fallbackDateColumn    = 1
	fallbackWeekdayColumn = 2
)

// columnRoles holds the column index of each role, -1 when the table has no such column
type columnRoles struct {
	name    int
	date    int
	weekday int
}

// ExtractRows scans every table in the document and returns the raw holiday
// rows of the tables that qualify as holiday tables, in document order.
func ExtractRows(doc Node) []holiday.Row {
	rows := make([]holiday.Row, 0)

	for i, table := range doc.FindAll("table") {
		trs := table.FindAll("tr")
		headers, headerIdx := tableHeaders(trs)
		if !isHolidayTable(headers) {
			logger.Debug("Skipping table without holiday headers", logger.Fields{
				"table":   i,
				"headers": headers,
			})
			continue
		}

		roles := resolveColumns(headers)
		found := 0

		for j, tr := range trs {
			if j == headerIdx {
				continue
			}
			cells := tr.FindAll("td, th")
			if len(cells) == 0 || hasHeaderCell(cells) {
				continue
			}
			if len(cells) < 2 {
				continue
			}

			texts := make([]string, len(cells))
			for k, c := range cells {
				texts[k] = c.Text()
			}

			row := roles.row(texts)
			if row.Name == "" || row.DateText == "" {
				continue
			}
			rows = append(rows, row)
			found++
		}

		logger.Debug("Extracted holiday table", logger.Fields{
			"table":   i,
			"headers": headers,
			"rows":    found,
		})
	}

	return rows
}

// tableHeaders returns the lowercased header labels of a table and the index of
// the row they came from: the first row holding <th> cells, or else the first row.
func tableHeaders(trs []Node) ([]string, int) {
	if len(trs) == 0 {
		return nil, -1
	}

	headerIdx := 0
	for i, tr := range trs {
		if len(tr.FindAll("th")) > 0 {
			headerIdx = i
			break
		}
	}

	cells := trs[headerIdx].FindAll("td, th")
	headers := make([]string, len(cells))
	for i, c := range cells {
		headers[i] = strings.ToLower(c.Text())
	}
	return headers, headerIdx
}

// isHolidayTable reports whether headers name both a holiday and a date column
func isHolidayTable(headers []string) bool {
	return indexOf(headers, qualifyingNameKeywords, nil) >= 0 &&
		indexOf(headers, qualifyingDateKeywords, nil) >= 0
}

// resolveColumns maps header labels to column roles.
// Roles claim columns in the order date, name, weekday so that a "Holiday"
// header is never taken for the weekday column through its "day" suffix.
func resolveColumns(headers []string) columnRoles {
	claimed := make(map[int]bool)

	date := indexOf(headers, dateKeywords, claimed)
	if date >= 0 {
		claimed[date] = true
	}
	name := indexOf(headers, nameKeywords, claimed)
	if name >= 0 {
		claimed[name] = true
	}
	weekday := indexOf(headers, weekdayKeywords, claimed)
	if weekday >= 0 {
		claimed[weekday] = true
	}

	// Fall back to position for unmatched roles, without stealing a claimed column
	if name < 0 && !claimed[fallbackNameColumn] {
		name = fallbackNameColumn
		claimed[name] = true
	}
	if date < 0 && !claimed[fallbackDateColumn] {
		date = fallbackDateColumn
		claimed[date] = true
	}
	if weekday < 0 && !claimed[fallbackWeekdayColumn] {
		weekday = fallbackWeekdayColumn
	}

	return columnRoles{name: name, date: date, weekday: weekday}
}

// row picks the role cells out of a row's cell texts
func (r columnRoles) row(texts []string) holiday.Row {
	return holiday.Row{
		Name:        holiday.CleanName(cellAt(texts, r.name)),
		DateText:    cellAt(texts, r.date),
		WeekdayText: cellAt(texts, r.weekday),
	}
}

func cellAt(texts []string, idx int) string {
	if idx < 0 || idx >= len(texts) {
		return ""
	}
	return texts[idx]
}

// hasHeaderCell reports whether a row repeats the header
func hasHeaderCell(cells []Node) bool {
	for _, c := range cells {
		if c.Tag() == "th" {
			return true
		}
	}
	return false
}

// indexOf returns the first unclaimed header containing any keyword, or -1
func indexOf(headers []string, keywords []string, claimed map[int]bool) int {
	for i, h := range headers {
		if claimed[i] {
			continue
		}
		for _, k := range keywords {
			if strings.Contains(h, k) {
				return i
			}
		}
	}
	return -1
}
