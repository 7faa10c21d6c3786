package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/logger"
)

const (
	SourceURL        = "https://mmrda.maharashtra.gov.in/public-holidays"
	UserAgent        = "HolidayMCP/1.0"
	Timeout          = 20 * time.Second
	MinFetchInterval = 2 * time.Second
)

// ErrUnexpectedStatus is wrapped by StatusError
var ErrUnexpectedStatus = errors.New("unexpected status code")

// StatusError reports a non-success HTTP response from the source page
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d from %s", ErrUnexpectedStatus, e.StatusCode, e.URL)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Scraper handles fetching and parsing the public holidays page
type Scraper struct {
	client    *http.Client
	url       string
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Scraper
type Option func(*Scraper)

// WithURL overrides the source page URL
func WithURL(url string) Option {
	return func(s *Scraper) {
		s.url = url
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		s.userAgent = ua
	}
}

// WithTimeout overrides the upper bound on a single fetch
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.client.Timeout = d
	}
}

// WithMinInterval sets the minimum spacing between upstream requests.
// Zero or negative disables the limit.
func WithMinInterval(d time.Duration) Option {
	return func(s *Scraper) {
		s.limiter = newLimiter(d)
	}
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:       SourceURL,
		userAgent: UserAgent,
		limiter:   newLimiter(MinFetchInterval),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// URL returns the source page URL
func (s *Scraper) URL() string {
	return s.url
}

// FetchPage fetches and parses the source page
func (s *Scraper) FetchPage(ctx context.Context) (Node, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for fetch slot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	logger.IncrCounter("fetch.requests")
	start := time.Now()
	defer func() {
		logger.RecordTiming("fetch.duration", time.Since(start))
	}()

	resp, err := s.client.Do(req)
	if err != nil {
		logger.IncrCounter("fetch.errors")
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.IncrCounter("fetch.errors")
		return nil, &StatusError{URL: s.url, StatusCode: resp.StatusCode}
	}

	doc, err := ParseHTML(resp.Body)
	if err != nil {
		logger.IncrCounter("fetch.errors")
		return nil, err
	}
	return doc, nil
}

// FetchRows fetches the source page and extracts its raw holiday rows
func (s *Scraper) FetchRows(ctx context.Context) ([]holiday.Row, error) {
	doc, err := s.FetchPage(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractRows(doc), nil
}

// Load fetches the source page and builds the holiday set for year
func (s *Scraper) Load(ctx context.Context, year int) ([]holiday.Holiday, error) {
	rows, err := s.FetchRows(ctx)
	if err != nil {
		return nil, err
	}

	holidays := holiday.Build(rows, year, s.url)
	logger.Debug("Built holiday set", logger.Fields{
		"year":     year,
		"rows":     len(rows),
		"holidays": len(holidays),
	})
	return holidays, nil
}
