package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/service"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result interface{}, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result interface{}) error {
	if hols, ok := result.([]holiday.Holiday); ok && hols == nil {
		result = []holiday.Holiday{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result interface{}, verbose bool) error {
	switch r := result.(type) {
	case *service.FetchResult:
		writeFetchText(w, r, verbose)
	case *service.CheckResult:
		writeCheckText(w, r, verbose)
	case []holiday.Holiday:
		writeHolidaysText(w, r, verbose)
	case *service.ExportResult:
		fmt.Fprint(w, r.Content)
		if r.Format == service.FormatJSON {
			fmt.Fprintln(w)
		}
	default:
		return fmt.Errorf("no text rendering for %T", result)
	}
	return nil
}

func writeFetchText(w io.Writer, r *service.FetchResult, verbose bool) {
	fmt.Fprintf(w, "Year:       %d\n", r.Year)
	fmt.Fprintf(w, "Holidays:   %d\n", r.Count)
	fmt.Fprintf(w, "Last fetch: %s\n", r.LastFetch.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Checksum:   %s\n", r.Checksum)

	if !r.Changed {
		fmt.Fprintln(w, "No changes since last fetch.")
		return
	}
	if len(r.Added) > 0 || len(r.Removed) > 0 {
		fmt.Fprintf(w, "Changes:    +%d -%d\n", len(r.Added), len(r.Removed))
	}
	if verbose {
		for _, h := range r.Added {
			fmt.Fprintf(w, "  ADDED:   %s  %s\n", h.Date, h.Name)
		}
		for _, h := range r.Removed {
			fmt.Fprintf(w, "  REMOVED: %s  %s\n", h.Date, h.Name)
		}
	}
}

func writeCheckText(w io.Writer, r *service.CheckResult, verbose bool) {
	if !r.IsHoliday || r.Holiday == nil {
		fmt.Fprintln(w, "Not a holiday.")
		return
	}
	fmt.Fprintf(w, "Holiday: %s (%s)\n", r.Holiday.Name, r.Holiday.Weekday)
	if verbose {
		writeHolidayDetails(w, *r.Holiday, "  ")
	}
}

func writeHolidaysText(w io.Writer, hols []holiday.Holiday, verbose bool) {
	if len(hols) == 0 {
		fmt.Fprintln(w, "No holidays found.")
		return
	}

	for _, h := range hols {
		fmt.Fprintf(w, "%s  %-9s  %s\n", h.Date, h.Weekday, h.Name)
		if verbose {
			writeHolidayDetails(w, h, "     ")
		}
	}
	fmt.Fprintf(w, "\nTotal: %d holidays\n", len(hols))
}

func writeHolidayDetails(w io.Writer, h holiday.Holiday, indent string) {
	fmt.Fprintf(w, "%sID: %s\n", indent, h.SourceHash)
	if h.SourceURL != "" {
		fmt.Fprintf(w, "%sSource: %s\n", indent, h.SourceURL)
	}
}
