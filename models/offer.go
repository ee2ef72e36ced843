package models

// Price is a provider-quoted amount.
type Price struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// FlightOffer is one priced flight itinerary returned by the search gateway.
type FlightOffer struct {
	ID            string `json:"id"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureAt   string `json:"departureAt"`
	ArrivalAt     string `json:"arrivalAt"`
	CarrierCode   string `json:"carrierCode"`
	FlightNumber  string `json:"flightNumber"`
	Duration      string `json:"duration"`
	Stops         int    `json:"stops"`
	Price         Price  `json:"price"`
}

// HotelOffer is one priced hotel option returned by the search gateway.
type HotelOffer struct {
	HotelID  string `json:"hotelId,omitempty"`
	Name     string `json:"name"`
	CityCode string `json:"cityCode"`
	CheckIn  string `json:"checkInDate"`
	CheckOut string `json:"checkOutDate"`
	Adults   int    `json:"adults"`
	Price    Price  `json:"price"`
}

// Location is one entry from the reference-data location lookup.
type Location struct {
	Code    string `json:"iataCode"`
	SubType string `json:"subType"`
	Name    string `json:"name"`
}
