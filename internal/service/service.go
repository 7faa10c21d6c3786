// Package service exposes the holiday operations used by the MCP server
// and the command line: fetch, date check, search, and export.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/mmrda-holidays/internal/cache"
	"github.com/pfrederiksen/mmrda-holidays/internal/calendar"
	"github.com/pfrederiksen/mmrda-holidays/internal/filter"
	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/logger"
)

// Export formats
const (
	FormatICS  = "ics"
	FormatJSON = "json"
)

const (
	minYear = 1
	maxYear = 9999
)

// FetchResult summarizes the cache entry for a year
type FetchResult struct {
	Year      int               `json:"year"`
	Count     int               `json:"count"`
	LastFetch time.Time         `json:"last_fetch"`
	Checksum  string            `json:"checksum"`
	Changed   bool              `json:"changed"`
	Added     []holiday.Holiday `json:"added,omitempty"`
	Removed   []holiday.Holiday `json:"removed,omitempty"`
}

// CheckResult is the answer to IsHoliday
type CheckResult struct {
	IsHoliday bool             `json:"is_holiday"`
	Holiday   *holiday.Holiday `json:"holiday,omitempty"`
}

// FindParams are the optional criteria for Find. Month 0 means any month.
type FindParams struct {
	Query      string
	Month      int
	RangeStart string
	RangeEnd   string
	Year       *int
}

// ExportParams select the year and format for Export
type ExportParams struct {
	Format       string
	Year         *int
	CalendarName string
}

// ExportResult carries serialized holidays
type ExportResult struct {
	Format  string `json:"format"`
	Year    int    `json:"year"`
	Content string `json:"content"`
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the clock used to pick the default year
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service runs holiday operations against a year cache
type Service struct {
	cache *cache.YearCache
	now   func() time.Time
}

// New creates a service backed by c
func New(c *cache.YearCache, opts ...Option) *Service {
	s := &Service{
		cache: c,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch loads the year (current year when nil), refreshing when force is set
func (s *Service) Fetch(ctx context.Context, year *int, force bool) (*FetchResult, error) {
	y, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}

	res, err := s.load(ctx, y, force)
	if err != nil {
		return nil, err
	}

	out := &FetchResult{
		Year:      y,
		Count:     len(res.Entry.Holidays),
		LastFetch: res.Entry.LastFetch,
		Checksum:  res.Entry.Checksum,
		Changed:   res.Changed,
	}
	if res.Diff != nil {
		out.Added = res.Diff.Added
		out.Removed = res.Diff.Removed
	}
	return out, nil
}

// Holidays returns the cached entry for year, loading it if needed
func (s *Service) Holidays(ctx context.Context, year int) (*cache.Entry, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	res, err := s.load(ctx, year, false)
	if err != nil {
		return nil, err
	}
	return res.Entry, nil
}

// IsHoliday reports whether the ISO date is a holiday
func (s *Service) IsHoliday(ctx context.Context, date string) (*CheckResult, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	res, err := s.load(ctx, d.Year(), false)
	if err != nil {
		return nil, err
	}

	iso := d.Format(holiday.ISOLayout)
	for _, h := range res.Entry.Holidays {
		if h.Date == iso {
			found := h
			return &CheckResult{IsHoliday: true, Holiday: &found}, nil
		}
	}
	return &CheckResult{IsHoliday: false}, nil
}

// Find filters a year's holidays. Without an explicit year, the year is
// taken from the range bounds when they agree, else the current year.
func (s *Service) Find(ctx context.Context, p FindParams) ([]holiday.Holiday, error) {
	f := filter.NewFilter()
	f.Query = p.Query

	if p.Month < 0 || p.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidArgument, p.Month)
	}
	f.Month = time.Month(p.Month)

	var err error
	if f.From, err = parseBound(p.RangeStart); err != nil {
		return nil, err
	}
	if f.To, err = parseBound(p.RangeEnd); err != nil {
		return nil, err
	}

	year, err := s.findYear(p.Year, f.From, f.To)
	if err != nil {
		return nil, err
	}

	res, err := s.load(ctx, year, false)
	if err != nil {
		return nil, err
	}

	return f.Apply(res.Entry.Holidays), nil
}

// Export serializes a year's holidays as ics or json
func (s *Service) Export(ctx context.Context, p ExportParams) (*ExportResult, error) {
	format := strings.ToLower(strings.TrimSpace(p.Format))
	if format == "" {
		format = FormatICS
	}
	if format != FormatICS && format != FormatJSON {
		return nil, fmt.Errorf("%w: %q (use %q or %q)", ErrUnsupportedFormat, p.Format, FormatICS, FormatJSON)
	}

	year, err := s.resolveYear(p.Year)
	if err != nil {
		return nil, err
	}

	res, err := s.load(ctx, year, false)
	if err != nil {
		return nil, err
	}

	var content string
	switch format {
	case FormatICS:
		content = calendar.GenerateICS(res.Entry.Holidays, res.Entry.LastFetch, p.CalendarName)
	case FormatJSON:
		content, err = MarshalHolidays(res.Entry.Holidays)
		if err != nil {
			return nil, err
		}
	}

	return &ExportResult{Format: format, Year: year, Content: content}, nil
}

// MarshalHolidays renders holidays as two-space indented JSON with
// non-ASCII text left unescaped and no trailing newline
func MarshalHolidays(holidays []holiday.Holiday) (string, error) {
	if holidays == nil {
		holidays = []holiday.Holiday{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(holidays); err != nil {
		return "", fmt.Errorf("encoding holidays: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// load wraps the cache and logs fetch failures
func (s *Service) load(ctx context.Context, year int, force bool) (*cache.Result, error) {
	res, err := s.cache.EnsureLoaded(ctx, year, force)
	if err != nil {
		logger.Error("Holiday fetch failed", logger.Fields{
			"year":  year,
			"force": force,
		}, err)
		return nil, err
	}
	return res, nil
}

func (s *Service) currentYear() int {
	return s.now().Year()
}

func (s *Service) resolveYear(year *int) (int, error) {
	if year == nil {
		return s.currentYear(), nil
	}
	if err := validateYear(*year); err != nil {
		return 0, err
	}
	return *year, nil
}

func (s *Service) findYear(year *int, from, to *time.Time) (int, error) {
	if year != nil {
		return s.resolveYear(year)
	}

	switch {
	case from != nil && to != nil && from.Year() == to.Year():
		return from.Year(), nil
	case from != nil && to == nil:
		return from.Year(), nil
	case to != nil && from == nil:
		return to.Year(), nil
	default:
		return s.currentYear(), nil
	}
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d, got %d", ErrInvalidArgument, minYear, maxYear, year)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	d, ok := holiday.ParseISO(strings.TrimSpace(s))
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return d, nil
}

func parseBound(s string) (*time.Time, error) {
	d, err := filter.ParseBound(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return d, nil
}
