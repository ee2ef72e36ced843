package amadeus

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlightOrder is the (simulated) confirmation for a flight booking.
type FlightOrder struct {
	Type         string                   `json:"type"`
	ID           string                   `json:"id"`
	Status       string                   `json:"status"`
	FlightOffers []interface{}            `json:"flightOffers"`
	Travelers    []map[string]interface{} `json:"travelers"`
}

// HotelBooking is the (simulated) confirmation for a hotel booking.
type HotelBooking struct {
	Type        string                   `json:"type"`
	ID          string                   `json:"id"`
	Status      string                   `json:"status"`
	BookingData map[string]interface{}   `json:"bookingData"`
	Guests      []map[string]interface{} `json:"guests"`
	Payments    []map[string]interface{} `json:"payments,omitempty"`
}

// CreateFlightOrder simulates a flight order in the sandbox environment.
// The real flight-orders API requires an enterprise plan.
func (c *Client) CreateFlightOrder(ctx context.Context, orderData map[string]interface{}, travelers []map[string]interface{}) (*FlightOrder, error) {
	c.logger.Info("simulating flight order in sandbox environment")

	offers, _ := orderData["flightOffers"].([]interface{})
	return &FlightOrder{
		Type:         "flight-order",
		ID:           "simulated_order_" + uuid.New().String(),
		Status:       "CONFIRMED",
		FlightOffers: offers,
		Travelers:    travelers,
	}, nil
}

// CreateHotelBooking simulates a hotel booking in the sandbox environment.
func (c *Client) CreateHotelBooking(ctx context.Context, bookingData map[string]interface{}, guests []map[string]interface{}, payments []map[string]interface{}) (*HotelBooking, error) {
	c.logger.Info("simulating hotel booking in sandbox environment",
		zap.Int("guests", len(guests)))

	return &HotelBooking{
		Type:        "hotel-booking",
		ID:          "simulated_booking_" + uuid.New().String(),
		Status:      "CONFIRMED",
		BookingData: bookingData,
		Guests:      guests,
		Payments:    payments,
	}, nil
}
