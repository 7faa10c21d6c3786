package holiday

import (
	"testing"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name    string
		holiday string
		date    string
		want    string
	}{
		{
			name:    "known value",
			holiday: "Independence Day",
			date:    "2024-08-15",
			want:    "6a21d6a376c8ac7c",
		},
		{
			name:    "case and surrounding whitespace ignored",
			holiday: "  DIWALI ",
			date:    "2024-11-01",
			want:    "b96967086c035a62",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fingerprint(tt.holiday, tt.date)
			if got != tt.want {
				t.Errorf("Fingerprint(%q, %q) = %q, want %q", tt.holiday, tt.date, got, tt.want)
			}
		})
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("Republic Day", "2024-01-26")
	b := Fingerprint("republic day", "2024-01-26")
	c := Fingerprint(" Republic Day\t", "2024-01-26")

	if a != b || a != c {
		t.Errorf("Fingerprint should ignore case and surrounding whitespace: %s %s %s", a, b, c)
	}

	if len(a) != 16 {
		t.Errorf("expected fingerprint length of 16, got %d", len(a))
	}

	if Fingerprint("Republic Day", "2025-01-26") == a {
		t.Error("Fingerprint should depend on the date")
	}
}

func TestNew(t *testing.T) {
	h := New("  Independence \n Day ", "2024-08-15", "Thursday", "https://example.com")

	if h.Name != "Independence Day" {
		t.Errorf("expected name 'Independence Day', got %q", h.Name)
	}

	if h.SourceHash != Fingerprint("Independence Day", "2024-08-15") {
		t.Errorf("unexpected source hash %q", h.SourceHash)
	}

	if h.SourceURL != "https://example.com" {
		t.Errorf("expected source URL to be set, got %q", h.SourceURL)
	}

	if h.Year() != 2024 {
		t.Errorf("Year() = %d, want 2024", h.Year())
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Diwali", "Diwali"},
		{"  Diwali  ", "Diwali"},
		{"Maha\n\t Shivratri", "Maha Shivratri"},
		{"Id-E-Milad (Milad-un-Nabi)", "Id-E-Milad (Milad-un-Nabi)"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := CleanName(tt.in); got != tt.want {
			t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
