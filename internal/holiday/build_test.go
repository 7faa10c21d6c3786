package holiday

import (
	"testing"
)

const testURL = "https://test.example.com/public-holidays"

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		rows      []Row
		year      int
		wantDates []string
		wantNames []string
	}{
		{
			name: "year-less date with derived weekday",
			rows: []Row{
				{Name: "Independence Day", DateText: "15 Aug"},
			},
			year:      2024,
			wantDates: []string{"2024-08-15"},
			wantNames: []string{"Independence Day"},
		},
		{
			name: "sorted by date",
			rows: []Row{
				{Name: "Christmas", DateText: "25 Dec 2024"},
				{Name: "Republic Day", DateText: "26-01-2024"},
				{Name: "Diwali", DateText: "November 1, 2024"},
			},
			year:      2024,
			wantDates: []string{"2024-01-26", "2024-11-01", "2024-12-25"},
			wantNames: []string{"Republic Day", "Diwali", "Christmas"},
		},
		{
			name: "duplicates differing in case collapse to first",
			rows: []Row{
				{Name: "Diwali", DateText: "1 Nov 2024"},
				{Name: "DIWALI", DateText: "01/11/2024"},
				{Name: "diwali ", DateText: "2024-11-01"},
			},
			year:      2024,
			wantDates: []string{"2024-11-01"},
			wantNames: []string{"Diwali"},
		},
		{
			name: "same name on different dates kept",
			rows: []Row{
				{Name: "Bank Holiday", DateText: "1 Apr 2024"},
				{Name: "Bank Holiday", DateText: "30 Sep 2024"},
			},
			year:      2024,
			wantDates: []string{"2024-04-01", "2024-09-30"},
			wantNames: []string{"Bank Holiday", "Bank Holiday"},
		},
		{
			name: "other years dropped",
			rows: []Row{
				{Name: "New Year", DateText: "1 Jan 2025"},
				{Name: "Christmas", DateText: "25 Dec 2024"},
				{Name: "Christmas", DateText: "25 Dec 2023"},
			},
			year:      2024,
			wantDates: []string{"2024-12-25"},
			wantNames: []string{"Christmas"},
		},
		{
			name: "unparseable and empty rows skipped",
			rows: []Row{
				{Name: "", DateText: "1 May 2024"},
				{Name: "Maharashtra Day", DateText: ""},
				{Name: "Eid", DateText: "subject to moon sighting"},
				{Name: "Maharashtra Day", DateText: "1 May 2024"},
			},
			year:      2024,
			wantDates: []string{"2024-05-01"},
			wantNames: []string{"Maharashtra Day"},
		},
		{
			name: "equal dates keep input order",
			rows: []Row{
				{Name: "Gudhi Padwa", DateText: "9 Apr 2024"},
				{Name: "Holi", DateText: "25 Mar 2024"},
				{Name: "Ugadi", DateText: "9 Apr 2024"},
			},
			year:      2024,
			wantDates: []string{"2024-03-25", "2024-04-09", "2024-04-09"},
			wantNames: []string{"Holi", "Gudhi Padwa", "Ugadi"},
		},
		{
			name:      "no rows",
			rows:      nil,
			year:      2024,
			wantDates: []string{},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.rows, tt.year, testURL)

			if len(got) != len(tt.wantDates) {
				t.Fatalf("Build() returned %d holidays, want %d: %+v", len(got), len(tt.wantDates), got)
			}

			for i, h := range got {
				if h.Date != tt.wantDates[i] {
					t.Errorf("Build()[%d].Date = %q, want %q", i, h.Date, tt.wantDates[i])
				}
				if h.Name != tt.wantNames[i] {
					t.Errorf("Build()[%d].Name = %q, want %q", i, h.Name, tt.wantNames[i])
				}
				if h.SourceURL != testURL {
					t.Errorf("Build()[%d].SourceURL = %q, want %q", i, h.SourceURL, testURL)
				}
				if h.SourceHash != Fingerprint(h.Name, h.Date) {
					t.Errorf("Build()[%d].SourceHash = %q, does not match fingerprint", i, h.SourceHash)
				}
				if h.Year() != tt.year {
					t.Errorf("Build()[%d] year = %d, want %d", i, h.Year(), tt.year)
				}
			}
		})
	}
}

func TestBuild_Weekday(t *testing.T) {
	rows := []Row{
		{Name: "Independence Day", DateText: "15 Aug"},
		{Name: "Republic Day", DateText: "26 Jan", WeekdayText: "  Friday "},
	}

	got := Build(rows, 2024, testURL)
	if len(got) != 2 {
		t.Fatalf("Build() returned %d holidays, want 2", len(got))
	}

	if got[0].Weekday != "Friday" {
		t.Errorf("supplied weekday = %q, want Friday", got[0].Weekday)
	}
	if got[1].Weekday != "Thursday" {
		t.Errorf("derived weekday = %q, want Thursday", got[1].Weekday)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	rows := []Row{
		{Name: "Christmas", DateText: "25 Dec 2024"},
		{Name: "Diwali", DateText: "1 Nov 2024"},
	}

	a := Build(rows, 2024, testURL)
	b := Build(rows, 2024, testURL)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Build() not deterministic at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
