package dialogue

import (
	"testing"
	"time"

	"maxxtravel/models"
)

var extractNow = time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

func TestExtractFlightQuery(t *testing.T) {
	req := models.VoiceRequest{Text: "Book flight from Mumbai to Dubai on August 15"}

	intent := Extract(req, extractNow)
	if intent.Origin != "mumbai" || intent.Destination != "dubai" {
		t.Fatalf("got origin=%q destination=%q", intent.Origin, intent.Destination)
	}
	if intent.Date != "2026-08-15" {
		t.Fatalf("got date %q, want 2026-08-15", intent.Date)
	}
	if intent.City != "" {
		t.Fatalf("unexpected city %q on flight query", intent.City)
	}
}

func TestExtractFlightQueryWithoutDate(t *testing.T) {
	req := models.VoiceRequest{Text: "I want to fly from New York to London"}

	intent := Extract(req, extractNow)
	if intent.Origin != "new york" || intent.Destination != "london" {
		t.Fatalf("got origin=%q destination=%q", intent.Origin, intent.Destination)
	}
	if intent.Date != "" {
		t.Fatalf("unexpected date %q", intent.Date)
	}
}

func TestExtractHotelQuery(t *testing.T) {
	req := models.VoiceRequest{Text: "I need a hotel in Paris tomorrow"}

	intent := Extract(req, extractNow)
	if intent.City != "paris" {
		t.Fatalf("got city %q, want paris", intent.City)
	}
	if intent.Date != "2026-06-11" {
		t.Fatalf("got date %q, want 2026-06-11", intent.Date)
	}
	if intent.HasFlight() {
		t.Fatalf("hotel query classified as flight: %+v", intent)
	}
}

func TestExtractStayPhrasing(t *testing.T) {
	req := models.VoiceRequest{Text: "staying in singapore on the 20th"}

	intent := Extract(req, extractNow)
	if intent.City != "singapore" {
		t.Fatalf("got city %q, want singapore", intent.City)
	}
	if intent.Date != "2026-06-20" {
		t.Fatalf("got date %q, want 2026-06-20", intent.Date)
	}
}

func TestExtractFlightTakesPriorityOverHotel(t *testing.T) {
	req := models.VoiceRequest{Text: "book a flight from delhi to tokyo and a hotel in tokyo"}

	intent := Extract(req, extractNow)
	if intent.Origin != "delhi" || intent.Destination != "tokyo" {
		t.Fatalf("got origin=%q destination=%q", intent.Origin, intent.Destination)
	}
	if intent.City != "" {
		t.Fatalf("city should stay empty when flight matched, got %q", intent.City)
	}
}

func TestExtractCutsPlaceAtDatePhrase(t *testing.T) {
	cases := []struct {
		text string
		want models.ExtractedIntent
	}{
		{"flight from chicago to sydney on 2026-09-01", models.ExtractedIntent{Origin: "chicago", Destination: "sydney", Date: "2026-09-01"}},
		{"flight from chicago to sydney next friday", models.ExtractedIntent{Origin: "chicago", Destination: "sydney", Date: "2026-06-12"}},
		{"hotel in london for tomorrow", models.ExtractedIntent{City: "london", Date: "2026-06-11"}},
	}
	for _, tc := range cases {
		got := Extract(models.VoiceRequest{Text: tc.text}, extractNow)
		if got != tc.want {
			t.Fatalf("Extract(%q) = %+v, want %+v", tc.text, got, tc.want)
		}
	}
}

func TestExtractNoIntent(t *testing.T) {
	req := models.VoiceRequest{Text: "hello there"}

	intent := Extract(req, extractNow)
	if intent.HasFlight() || intent.HasHotel() || intent.Date != "" {
		t.Fatalf("expected empty intent, got %+v", intent)
	}
}

func TestExtractMetadataFastPath(t *testing.T) {
	req := models.VoiceRequest{
		Text: "this text would not parse",
		Metadata: &models.VoiceMetadata{
			Origin:      " Mumbai ",
			Destination: "Dubai",
			Date:        "2026-08-15",
		},
	}

	intent := Extract(req, extractNow)
	if intent.Origin != "mumbai" || intent.Destination != "dubai" || intent.Date != "2026-08-15" {
		t.Fatalf("metadata not used verbatim: %+v", intent)
	}
}

func TestExtractPartialMetadataFallsThrough(t *testing.T) {
	req := models.VoiceRequest{
		Text:     "flight from mumbai to dubai on august 15",
		Metadata: &models.VoiceMetadata{Origin: "Mumbai"},
	}

	intent := Extract(req, extractNow)
	if intent.Origin != "mumbai" || intent.Destination != "dubai" || intent.Date != "2026-08-15" {
		t.Fatalf("partial metadata should defer to pattern extraction: %+v", intent)
	}
}

func TestExtractUsesVoiceTextFallback(t *testing.T) {
	req := models.VoiceRequest{VoiceText: "hotel in frankfurt today"}

	intent := Extract(req, extractNow)
	if intent.City != "frankfurt" || intent.Date != "2026-06-10" {
		t.Fatalf("got %+v", intent)
	}
}
