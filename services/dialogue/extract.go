package dialogue

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"maxxtravel/models"
)

// Pattern extraction runs ordered rules against the lowercased utterance;
// the first rule that matches wins. Flight rules are tried before hotel rules,
// so flight intent always takes priority when both could match.

type flightRule struct {
	name string
	re   *regexp.Regexp // two captures: origin, destination
}

type hotelRule struct {
	name string
	re   *regexp.Regexp // one capture: city
}

var flightRules = []flightRule{
	{"flight-from-to", regexp.MustCompile(`\bflights?\s+from\s+([a-z\s]+?)\s+to\s+([a-z\s]+)`)},
	{"fly-from-to", regexp.MustCompile(`\bfly(?:ing)?\s+from\s+([a-z\s]+?)\s+to\s+([a-z\s]+)`)},
	{"from-to", regexp.MustCompile(`\bfrom\s+([a-z\s]+?)\s+to\s+([a-z\s]+)`)},
}

var hotelRules = []hotelRule{
	{"hotel-in", regexp.MustCompile(`\b(?:hotels?|room)\s+in\s+([a-z\s]+)`)},
	{"stay-in", regexp.MustCompile(`\bstay(?:ing)?\s+in\s+([a-z\s]+)`)},
	{"book-in", regexp.MustCompile(`\bbook\s+(?:a\s+)?(?:\w+\s+)?in\s+([a-z\s]+)`)},
}

// trailingStopWords cut a captured place at the start of a date phrase or a
// trailing clause.
var trailingStopWords = map[string]bool{
	"on": true, "at": true, "for": true, "this": true, "next": true,
	"today": true, "tomorrow": true, "tonight": true, "the": true,
	"and": true, "please": true,
}

// Extract pulls a typed travel query out of one voice turn. When upstream
// metadata already carries the entities they are used verbatim and pattern
// extraction is skipped for those fields. Absence is the failure signal;
// Extract never errors.
func Extract(req models.VoiceRequest, now time.Time) models.ExtractedIntent {
	if intent, ok := fromMetadata(req.Metadata); ok {
		return intent
	}

	text := strings.ToLower(req.Utterance())
	var intent models.ExtractedIntent

	for _, rule := range flightRules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			intent.Origin = cleanPlace(m[1])
			intent.Destination = cleanPlace(m[2])
			break
		}
	}

	if !intent.HasFlight() {
		intent.Origin, intent.Destination = "", ""
		for _, rule := range hotelRules {
			if m := rule.re.FindStringSubmatch(text); m != nil {
				intent.City = cleanPlace(m[1])
				break
			}
		}
	}

	// Date extraction is independent of intent.
	if date, ok := ExtractDate(text, now); ok {
		intent.Date = date
	}

	return intent
}

// fromMetadata is the fast path for platforms that pre-extract entities.
// Only complete queries (origin+destination+date or city+date) are trusted;
// partial metadata falls through to pattern extraction.
func fromMetadata(md *models.VoiceMetadata) (models.ExtractedIntent, bool) {
	if md == nil {
		return models.ExtractedIntent{}, false
	}
	if md.Origin != "" && md.Destination != "" && md.Date != "" {
		return models.ExtractedIntent{
			Origin:      strings.ToLower(strings.TrimSpace(md.Origin)),
			Destination: strings.ToLower(strings.TrimSpace(md.Destination)),
			Date:        strings.TrimSpace(md.Date),
		}, true
	}
	if md.City != "" && md.Date != "" {
		return models.ExtractedIntent{
			City: strings.ToLower(strings.TrimSpace(md.City)),
			Date: strings.TrimSpace(md.Date),
		}, true
	}
	return models.ExtractedIntent{}, false
}

// cleanPlace trims a greedy place capture back to the place name itself,
// cutting at the first date-ish word or digit.
func cleanPlace(raw string) string {
	words := strings.Fields(raw)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if trailingStopWords[w] || startsWithDigit(w) {
			break
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

func startsWithDigit(s string) bool {
	return s != "" && unicode.IsDigit(rune(s[0]))
}
