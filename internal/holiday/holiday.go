package holiday

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Holiday represents a single public holiday
type Holiday struct {
	Name       string `json:"name"`
	Date       string `json:"date"` // YYYY-MM-DD
	Weekday    string `json:"weekday"`
	SourceURL  string `json:"source_url"`
	SourceHash string `json:"source_hash"`
}

// Fingerprint creates a deterministic 16 hex character identifier for a holiday.
// Only the trimmed, lowercased name and the date take part in it.
func Fingerprint(name, isoDate string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(name)) + "|" + isoDate))
	return hex.EncodeToString(sum[:])[:16]
}

// CleanName collapses runs of whitespace into single spaces and trims the ends
func CleanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// New creates a Holiday with its fingerprint populated
func New(name, isoDate, weekday, sourceURL string) Holiday {
	name = CleanName(name)
	return Holiday{
		Name:       name,
		Date:       isoDate,
		Weekday:    weekday,
		SourceURL:  sourceURL,
		SourceHash: Fingerprint(name, isoDate),
	}
}

// Key returns the deduplication key: two holidays with equal keys are the same holiday
func (h Holiday) Key() string {
	return h.Date + "|" + strings.ToLower(h.Name)
}

// Year returns the year component of the holiday date
func (h Holiday) Year() int {
	t, ok := ParseISO(h.Date)
	if !ok {
		return 0
	}
	return t.Year()
}
