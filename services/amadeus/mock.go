package amadeus

import (
	"fmt"
	"time"

	"maxxtravel/models"
)

// Deterministic offers used when the mock toggles are on (sandbox plans have
// patchy inventory) and by the endpoint tests.

func mockFlightOffers(origin, destination, date string) ([]models.FlightOffer, error) {
	departure, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %q, use YYYY-MM-DD", date)
	}
	departsAt := time.Date(departure.Year(), departure.Month(), departure.Day(), 9, 0, 0, 0, time.UTC)
	arrivesAt := departsAt.Add(2 * time.Hour)

	return []models.FlightOffer{
		{
			ID:           "mock1",
			Origin:       origin,
			Destination:  destination,
			DepartureAt:  departsAt.Format(time.RFC3339),
			ArrivalAt:    arrivesAt.Format(time.RFC3339),
			CarrierCode:  "MO",
			FlightNumber: "MO123",
			Duration:     "PT2H",
			Stops:        0,
			Price:        models.Price{Total: 100.00, Currency: "USD"},
		},
	}, nil
}

func mockHotelOffers(cityCode, checkIn, checkOut string, adults int) []models.HotelOffer {
	return []models.HotelOffer{
		{
			HotelID:  "MOCKHTL1",
			Name:     "Mock Hotel 1",
			CityCode: cityCode,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Adults:   adults,
			Price:    models.Price{Total: 100.00, Currency: "USD"},
		},
		{
			HotelID:  "MOCKHTL2",
			Name:     "Mock Hotel 2",
			CityCode: cityCode,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Adults:   adults,
			Price:    models.Price{Total: 150.00, Currency: "USD"},
		},
	}
}
