package dialogue

import (
	"context"

	"maxxtravel/models"
)

// FlightSearcher finds priced flight offers for a route and date.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, origin, destination, date string, adults, children int) ([]models.FlightOffer, error)
}

// HotelSearcher finds priced hotel offers for a city and stay window.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, cityCode, checkIn, checkOut string, adults int) ([]models.HotelOffer, error)
}

// CheckoutCreator opens a hosted payment session and returns its URL.
type CheckoutCreator interface {
	CreateCheckoutSession(ctx context.Context, amount float64, currency, description string) (string, error)
}

// PlaceResolver maps a free-text place name to an IATA code.
type PlaceResolver interface {
	Resolve(ctx context.Context, place string) (string, bool)
}
