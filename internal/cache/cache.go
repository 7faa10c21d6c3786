package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/logger"
)

// Loader builds the holiday set for a year
type Loader interface {
	Load(ctx context.Context, year int) ([]holiday.Holiday, error)
}

// LoaderFunc adapts a function to the Loader interface
type LoaderFunc func(ctx context.Context, year int) ([]holiday.Holiday, error)

// Load calls f(ctx, year)
func (f LoaderFunc) Load(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return f(ctx, year)
}

// Entry is one cached build. Entries are replaced whole on refresh and must
// not be mutated by callers.
type Entry struct {
	Year      int               `json:"year"`
	Holidays  []holiday.Holiday `json:"holidays"`
	LastFetch time.Time         `json:"last_fetch"`
	Checksum  string            `json:"checksum"`
}

// Result describes the outcome of EnsureLoaded
type Result struct {
	Entry *Entry
	// Refreshed is true when the loader ran for this call.
	Refreshed bool
	// Changed is true when the stored checksum differs from the previous
	// entry, or no previous entry existed.
	Changed bool
	// Diff is nil unless Refreshed.
	Diff *holiday.DiffResult
}

// Option configures a YearCache
type Option func(*YearCache)

// WithClock overrides the clock used to stamp LastFetch
func WithClock(now func() time.Time) Option {
	return func(c *YearCache) {
		c.now = now
	}
}

// YearCache maps a year to its last built holiday set
type YearCache struct {
	loader Loader
	now    func() time.Time

	mu      sync.RWMutex
	entries map[int]*Entry

	locksMu sync.Mutex
	locks   map[int]*sync.Mutex
}

// New creates an empty cache backed by loader
func New(loader Loader, opts ...Option) *YearCache {
	c := &YearCache{
		loader:  loader,
		now:     time.Now,
		entries: make(map[int]*Entry),
		locks:   make(map[int]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached entry for year without loading
func (c *YearCache) Get(year int) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[year]
	return e, ok
}

// Years returns the cached years in ascending order
func (c *YearCache) Years() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	years := make([]int, 0, len(c.entries))
	for y := range c.entries {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// yearLock returns the mutex serializing loads of year
func (c *YearCache) yearLock(year int) *sync.Mutex {
	c.locksMu.Lock()
	defer c.locksMu.Unlock()

	l, ok := c.locks[year]
	if !ok {
		l = &sync.Mutex{}
		c.locks[year] = l
	}
	return l
}

// EnsureLoaded returns the entry for year, building it when absent or when
// force is set. Loads of the same year are serialized. A failed load leaves
// any previous entry in place.
func (c *YearCache) EnsureLoaded(ctx context.Context, year int, force bool) (*Result, error) {
	if !force {
		if e, ok := c.Get(year); ok {
			logger.IncrCounter("cache.hits")
			return &Result{Entry: e}, nil
		}
	}

	lock := c.yearLock(year)
	lock.Lock()
	defer lock.Unlock()

	previous, hadPrevious := c.Get(year)
	if !force && hadPrevious {
		// Another caller loaded it while we waited.
		logger.IncrCounter("cache.hits")
		return &Result{Entry: previous}, nil
	}

	if hadPrevious {
		logger.IncrCounter("cache.refreshes")
	} else {
		logger.IncrCounter("cache.misses")
	}

	holidays, err := c.loader.Load(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("loading holidays for %d: %w", year, err)
	}
	if holidays == nil {
		holidays = []holiday.Holiday{}
	}

	sum, err := Checksum(holidays)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		Year:      year,
		Holidays:  holidays,
		LastFetch: c.now().UTC(),
		Checksum:  sum,
	}

	var prevHolidays []holiday.Holiday
	if hadPrevious {
		prevHolidays = previous.Holidays
	}
	diff := holiday.Diff(prevHolidays, holidays)
	changed := !hadPrevious || previous.Checksum != sum

	c.mu.Lock()
	c.entries[year] = entry
	size := len(c.entries)
	c.mu.Unlock()

	logger.SetGauge("cache.years", float64(size))
	logger.Info("Holidays loaded", logger.Fields{
		"year":     year,
		"count":    len(holidays),
		"checksum": sum,
		"changed":  changed,
		"added":    len(diff.Added),
		"removed":  len(diff.Removed),
	})

	return &Result{
		Entry:     entry,
		Refreshed: true,
		Changed:   changed,
		Diff:      diff,
	}, nil
}

// Checksum returns the SHA-256 hex digest of the JSON encoding of holidays.
// Field order follows the Holiday struct, so equal sets give equal digests.
func Checksum(holidays []holiday.Holiday) (string, error) {
	if holidays == nil {
		holidays = []holiday.Holiday{}
	}
	data, err := json.Marshal(holidays)
	if err != nil {
		return "", fmt.Errorf("encoding holidays: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
