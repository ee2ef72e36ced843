package dialogue

import (
	"testing"
	"time"
)

// Fixed "now" used across the date tests: Wednesday, 2026-06-10.
var dateNow = time.Date(2026, time.June, 10, 15, 30, 0, 0, time.UTC)

func TestExtractDate(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"iso date", "book a flight on 2026-08-15 please", "2026-08-15"},
		{"month day", "flight from mumbai to dubai on august 15", "2026-08-15"},
		{"month day ordinal", "fly out on august 15th", "2026-08-15"},
		{"month day with year", "travelling december 3, 2027", "2027-12-03"},
		{"day month", "leaving on 15 august", "2026-08-15"},
		{"day of month", "leaving on the 3rd of july", "2026-07-03"},
		{"abbreviated month", "fly on aug 15", "2026-08-15"},
		{"today", "i need a hotel today", "2026-06-10"},
		{"tomorrow", "hotel in paris tomorrow", "2026-06-11"},
		{"next week", "a flight next week", "2026-06-17"},
		{"next month", "travelling next month", "2026-07-10"},
		{"next friday", "fly out next friday", "2026-06-12"},
		{"next wednesday rolls a full week", "leave next wednesday", "2026-06-17"},
		{"bare ordinal day", "book it for the 25th", "2026-06-25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractDate(tc.text, dateNow)
			if !ok {
				t.Fatalf("no date found in %q", tc.text)
			}
			if got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestExtractDateRollsPastDatesToNextYear(t *testing.T) {
	// January 5 already passed in June 2026, so a year-less mention means
	// next January.
	got, ok := ExtractDate("fly on january 5", dateNow)
	if !ok || got != "2027-01-05" {
		t.Fatalf("got %q ok=%v, want 2027-01-05", got, ok)
	}
}

func TestExtractDateNoMatch(t *testing.T) {
	for _, text := range []string{
		"book a flight from mumbai to dubai",
		"i would like a hotel",
		"",
	} {
		if got, ok := ExtractDate(text, dateNow); ok {
			t.Fatalf("unexpected date %q extracted from %q", got, text)
		}
	}
}

func TestExtractDateRejectsImpossibleDay(t *testing.T) {
	if got, ok := ExtractDate("flight on february 30", dateNow); ok {
		t.Fatalf("expected no date for february 30, got %q", got)
	}
}

func TestFuzzyDateBumpsPastDayByOne(t *testing.T) {
	// The fuzzy path leaves a past same-year date alone except for a
	// one-day bump. "june 1" with a stray word between month and day
	// skips the strict patterns and exercises the fuzzy scan.
	got, ok := ExtractDate("around june maybe the 1", dateNow)
	if !ok || got != "2026-06-02" {
		t.Fatalf("got %q ok=%v, want 2026-06-02", got, ok)
	}
}
