package amadeus

import (
	"context"
	"net/http"
	"testing"

	"go.uber.org/zap"
)

const flightOffersFixture = `{
  "data": [
    {
      "id": "1",
      "price": {"grandTotal": "245.50", "total": "230.00", "currency": "USD"},
      "itineraries": [
        {
          "duration": "PT3H15M",
          "segments": [
            {
              "departure": {"iataCode": "BOM", "at": "2026-08-15T04:30:00"},
              "arrival": {"iataCode": "DXB", "at": "2026-08-15T06:15:00"},
              "carrierCode": "EK",
              "number": "501"
            }
          ]
        }
      ],
      "validatingAirlineCodes": ["EK"]
    },
    {
      "id": "2",
      "price": {"total": "310.00", "currency": "USD"},
      "itineraries": [
        {
          "duration": "PT7H40M",
          "segments": [
            {
              "departure": {"iataCode": "BOM", "at": "2026-08-15T02:00:00"},
              "arrival": {"iataCode": "DOH", "at": "2026-08-15T03:30:00"},
              "carrierCode": "QR",
              "number": "557"
            },
            {
              "departure": {"iataCode": "DOH", "at": "2026-08-15T07:00:00"},
              "arrival": {"iataCode": "DXB", "at": "2026-08-15T08:10:00"},
              "carrierCode": "QR",
              "number": "1002"
            }
          ]
        }
      ]
    },
    {
      "id": "3",
      "price": {"total": "not-a-number", "currency": "USD"},
      "itineraries": [{"duration": "PT2H", "segments": []}]
    },
    {
      "id": "4",
      "price": {"total": "99.00", "currency": "USD"},
      "itineraries": []
    }
  ]
}`

func TestParseFlightOffers(t *testing.T) {
	offers, err := parseFlightOffers([]byte(flightOffersFixture))
	if err != nil {
		t.Fatal(err)
	}
	// Offers 3 and 4 are skipped: unparsable price, no itineraries.
	if len(offers) != 2 {
		t.Fatalf("got %d offers, want 2", len(offers))
	}

	direct := offers[0]
	if direct.Origin != "BOM" || direct.Destination != "DXB" {
		t.Fatalf("route %s-%s", direct.Origin, direct.Destination)
	}
	if direct.Price.Total != 245.50 {
		t.Fatalf("grandTotal should win over total, got %v", direct.Price.Total)
	}
	if direct.CarrierCode != "EK" || direct.FlightNumber != "EK501" || direct.Stops != 0 {
		t.Fatalf("got %+v", direct)
	}
	if direct.DepartureAt != "2026-08-15T04:30:00" || direct.Duration != "PT3H15M" {
		t.Fatalf("got %+v", direct)
	}

	connecting := offers[1]
	if connecting.Stops != 1 {
		t.Fatalf("stops = %d, want 1", connecting.Stops)
	}
	if connecting.Origin != "BOM" || connecting.Destination != "DXB" {
		t.Fatalf("multi-segment route should span first departure to last arrival, got %s-%s",
			connecting.Origin, connecting.Destination)
	}
	if connecting.ArrivalAt != "2026-08-15T08:10:00" {
		t.Fatalf("got arrival %q", connecting.ArrivalAt)
	}
}

func TestParseFlightOffersBadJSON(t *testing.T) {
	if _, err := parseFlightOffers([]byte("not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSearchFlightsNormalizesMetropolitanCodes(t *testing.T) {
	mux := http.NewServeMux()
	var gotOrigin, gotDestination string
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		gotOrigin = r.URL.Query().Get("originLocationCode")
		gotDestination = r.URL.Query().Get("destinationLocationCode")
		w.Write([]byte(`{"data":[]}`))
	})
	client, _ := newTestClient(t, mux)

	if _, err := client.SearchFlights(context.Background(), "LON", "nyc", "2026-08-15", 1, 0); err != nil {
		t.Fatal(err)
	}
	if gotOrigin != "LHR" || gotDestination != "JFK" {
		t.Fatalf("searched %s-%s, want LHR-JFK", gotOrigin, gotDestination)
	}
}

func TestSearchFlightsMockToggle(t *testing.T) {
	client := NewClient(Options{UseMockFlightSearch: true, Logger: zap.NewNop()})

	offers, err := client.SearchFlights(context.Background(), "BOM", "DXB", "2026-08-15", 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(offers) != 1 {
		t.Fatalf("got %d offers", len(offers))
	}
	offer := offers[0]
	if offer.Origin != "BOM" || offer.Destination != "DXB" || offer.FlightNumber != "MO123" {
		t.Fatalf("got %+v", offer)
	}
	if offer.DepartureAt != "2026-08-15T09:00:00Z" {
		t.Fatalf("got departure %q", offer.DepartureAt)
	}
}

func TestSearchFlightsMockRejectsBadDate(t *testing.T) {
	client := NewClient(Options{UseMockFlightSearch: true, Logger: zap.NewNop()})

	if _, err := client.SearchFlights(context.Background(), "BOM", "DXB", "15 August", 1, 0); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestNormalizeCityCode(t *testing.T) {
	cases := map[string]string{
		"LON":  "LHR",
		"lon":  "LHR",
		"NYC":  "JFK",
		"PAR":  "CDG",
		"BOM":  "BOM",
		" syd": "SYD",
	}
	for in, want := range cases {
		if got := NormalizeCityCode(in); got != want {
			t.Errorf("NormalizeCityCode(%q) = %q, want %q", in, got, want)
		}
	}
}
