package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"maxxtravel/models"

	"go.uber.org/zap"
)

type flightOffersResponse struct {
	Data []struct {
		ID    string `json:"id"`
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Total      string `json:"total"`
			Currency   string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				Departure struct {
					IataCode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					IataCode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"arrival"`
				CarrierCode string `json:"carrierCode"`
				Number      string `json:"number"`
			} `json:"segments"`
		} `json:"itineraries"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	} `json:"data"`
}

// SearchFlights queries the flight offers API for one-way itineraries.
// Metropolitan codes are normalized to searchable airport codes first.
func (c *Client) SearchFlights(ctx context.Context, origin, destination, date string, adults, children int) ([]models.FlightOffer, error) {
	origin = NormalizeCityCode(origin)
	destination = NormalizeCityCode(destination)
	if adults <= 0 {
		adults = 1
	}

	if c.mockFlights {
		c.logger.Debug("using mock flight search data",
			zap.String("origin", origin), zap.String("destination", destination))
		return mockFlightOffers(origin, destination, date)
	}

	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s&departureDate=%s&adults=%d&max=5&currencyCode=USD",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
		url.QueryEscape(date),
		adults,
	)
	if children > 0 {
		path += "&children=" + strconv.Itoa(children)
	}

	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	return parseFlightOffers(body)
}

func parseFlightOffers(data []byte) ([]models.FlightOffer, error) {
	var resp flightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("amadeus: failed to parse flight offers: %w", err)
	}

	offers := make([]models.FlightOffer, 0, len(resp.Data))
	for _, item := range resp.Data {
		if len(item.Itineraries) == 0 {
			continue
		}

		total := item.Price.GrandTotal
		if total == "" {
			total = item.Price.Total
		}
		price := parsePrice(total)
		if price <= 0 {
			continue
		}

		outbound := item.Itineraries[0]
		carrier := ""
		if len(outbound.Segments) > 0 {
			carrier = outbound.Segments[0].CarrierCode
		} else if len(item.ValidatingAirlineCodes) > 0 {
			carrier = item.ValidatingAirlineCodes[0]
		}

		offer := models.FlightOffer{
			ID:          item.ID,
			CarrierCode: carrier,
			Duration:    outbound.Duration,
			Stops:       len(outbound.Segments) - 1,
			Price:       models.Price{Total: price, Currency: item.Price.Currency},
		}
		if offer.Stops < 0 {
			offer.Stops = 0
		}
		if len(outbound.Segments) > 0 {
			first := outbound.Segments[0]
			last := outbound.Segments[len(outbound.Segments)-1]
			offer.Origin = first.Departure.IataCode
			offer.Destination = last.Arrival.IataCode
			offer.DepartureAt = first.Departure.At
			offer.ArrivalAt = last.Arrival.At
			offer.FlightNumber = carrier + first.Number
		}

		offers = append(offers, offer)
	}
	return offers, nil
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
