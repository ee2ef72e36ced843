package dialogue

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date extraction runs specific formats in priority order and falls back to a
// permissive fuzzy scan of the whole utterance.
//
// Known limitation, kept from the original system: a fuzzily parsed date that
// lands strictly in the past is advanced by one day. That conflates "wrong
// year" with "time of day already passed" (voice transcripts like "at 3pm"
// can be misread as a past instant); it is a recovery heuristic, not a
// calendar-correct disambiguation.

const dateLayout = "2006-01-02"

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

const monthPattern = `(january|february|march|april|may|june|july|august|september|sept|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)`

var (
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	monthDayRe  = regexp.MustCompile(`\b` + monthPattern + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	dayMonthRe  = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthPattern + `(?:,?\s+(\d{4}))?\b`)
	nextPhraseRe = regexp.MustCompile(`\bnext\s+(week|month|sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	bareDayRe   = regexp.MustCompile(`\b(?:on\s+)?the\s+(\d{1,2})(?:st|nd|rd|th)\b`)
	numberRe    = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\b`)
	monthNameRe = regexp.MustCompile(`\b` + monthPattern + `\b`)
)

// ExtractDate pulls a travel date out of lowercased utterance text.
// Returns the date formatted YYYY-MM-DD, or false when nothing date-like
// was found.
func ExtractDate(text string, now time.Time) (string, bool) {
	today := truncateToDay(now)

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		if d, err := time.Parse(dateLayout, m[0]); err == nil {
			return d.Format(dateLayout), true
		}
	}

	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		if d, ok := composeDate(m[3], monthsByName[m[1]], m[2], today); ok {
			return d.Format(dateLayout), true
		}
	}

	if m := dayMonthRe.FindStringSubmatch(text); m != nil {
		if d, ok := composeDate(m[3], monthsByName[m[2]], m[1], today); ok {
			return d.Format(dateLayout), true
		}
	}

	if strings.Contains(text, "today") {
		return today.Format(dateLayout), true
	}
	if strings.Contains(text, "tomorrow") {
		return today.AddDate(0, 0, 1).Format(dateLayout), true
	}

	if m := nextPhraseRe.FindStringSubmatch(text); m != nil {
		return nextPeriod(m[1], today).Format(dateLayout), true
	}

	return fuzzyDate(text, today)
}

// composeDate builds a date from month/day and an optional year capture.
// Year-less dates roll forward to the next future occurrence.
func composeDate(yearStr string, month time.Month, dayStr string, today time.Time) (time.Time, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil || month == 0 {
		return time.Time{}, false
	}

	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return time.Time{}, false
		}
		return validDate(year, month, day)
	}

	d, ok := validDate(today.Year(), month, day)
	if !ok {
		return time.Time{}, false
	}
	if d.Before(today) {
		d, ok = validDate(today.Year()+1, month, day)
	}
	return d, ok
}

// validDate rejects normalized overflow like February 30.
func validDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func nextPeriod(period string, today time.Time) time.Time {
	switch period {
	case "week":
		return today.AddDate(0, 0, 7)
	case "month":
		return today.AddDate(0, 1, 0)
	}
	target := weekdaysByName[period]
	days := int(target-today.Weekday()+7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDate(0, 0, days)
}

// fuzzyDate scans for a month name and a plausible day number anywhere in the
// utterance, or a bare ordinal day. Past results get the one-day bump
// described at the top of this file.
func fuzzyDate(text string, today time.Time) (string, bool) {
	var month time.Month
	if m := monthNameRe.FindStringSubmatch(text); m != nil {
		month = monthsByName[m[1]]
	}

	day := 0
	for _, m := range numberRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 && n <= 31 {
			day = n
			break
		}
	}

	switch {
	case month != 0 && day != 0:
		d, ok := validDate(today.Year(), month, day)
		if !ok {
			return "", false
		}
		if d.Before(today) {
			d = d.AddDate(0, 0, 1)
		}
		return d.Format(dateLayout), true
	case month == 0:
		if m := bareDayRe.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			d, ok := validDate(today.Year(), today.Month(), n)
			if !ok {
				return "", false
			}
			if d.Before(today) {
				d = d.AddDate(0, 0, 1)
			}
			return d.Format(dateLayout), true
		}
	}
	return "", false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
